package main

import "github.com/spf13/cobra"

func (a *app) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [manifestPath]",
		Short: "Remove every developer setting of the add-in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.addinID(args)
			if err != nil {
				return err
			}
			if err := a.client.ClearDevSettings(id); err != nil {
				return err
			}
			a.done("Developer settings have been cleared.")
			return nil
		},
	}
}
