package main

import "github.com/spf13/cobra"

func (a *app) enableLiveReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable-live-reload [manifestPath]",
		Short: "Enable live reload for the add-in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.setLiveReload(args, true)
		},
	}
}

func (a *app) disableLiveReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable-live-reload [manifestPath]",
		Short: "Disable live reload for the add-in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.setLiveReload(args, false)
		},
	}
}

func (a *app) setLiveReload(args []string, enable bool) error {
	id, err := a.addinID(args)
	if err != nil {
		return err
	}
	if err := a.client.EnableLiveReload(id, enable); err != nil {
		return err
	}
	if enable {
		a.done("Live reload has been enabled.")
	} else {
		a.done("Live reload has been disabled.")
	}
	return nil
}
