package main

import (
	"github.com/spf13/cobra"

	"office-addin-dev-settings/pkg/devsettings"
)

func (a *app) enableDebuggingCmd() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "enable-debugging [manifestPath]",
		Short: "Enable debugging for the add-in",
		Long: `Enables debugging for the add-in.

Without --debug-method the method used last time is kept (web if none).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := devsettings.ParseDebuggingMethod(method)
			if err != nil {
				return err
			}
			id, err := a.addinID(args)
			if err != nil {
				return err
			}
			if err := a.client.EnableDebugging(id, true, m); err != nil {
				return err
			}
			a.done("Debugging has been enabled.")
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "debug-method", "", "specify the debug method: 'direct' or 'web'")
	return cmd
}

func (a *app) disableDebuggingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable-debugging [manifestPath]",
		Short: "Disable debugging for the add-in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.addinID(args)
			if err != nil {
				return err
			}
			if err := a.client.DisableDebugging(id); err != nil {
				return err
			}
			a.done("Debugging has been disabled.")
			return nil
		},
	}
}
