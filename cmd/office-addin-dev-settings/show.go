package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"office-addin-dev-settings/pkg/devsettings"
)

func (a *app) showCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [manifestPath]",
		Short: "Display the developer settings of the add-in",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := a.addinID(args)
			if err != nil {
				return err
			}
			s, err := a.client.GetDevSettings(id)
			if err != nil {
				return err
			}
			if asJSON {
				return a.showJSON(id, s)
			}
			a.showText(id, s)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

type showOutput struct {
	AddinID string `json:"addinId"`
	devsettings.DevSettings
	URL string `json:"url"`
}

func (a *app) showJSON(id string, s devsettings.DevSettings) error {
	b, err := json.MarshalIndent(showOutput{AddinID: id, DevSettings: s, URL: s.SourceBundleURL.String()}, "", "  ")
	if err != nil {
		return a.log.ErrorfAndReturn("Failed to marshal settings to JSON: %v", err)
	}
	fmt.Fprintln(a.out, string(b))
	return nil
}

func (a *app) showText(id string, s devsettings.DevSettings) {
	onOff := func(b bool) string {
		if b {
			return color.GreenString("enabled")
		}
		return color.YellowString("disabled")
	}

	fmt.Fprintln(a.out, color.CyanString("Developer settings")+" for "+id+":")
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "  %-18s %s (method: %s)\n", "Debugging:", onOff(s.DebuggingEnabled), s.DebuggingMethod)
	fmt.Fprintf(a.out, "  %-18s %s\n", "Live reload:", onOff(s.LiveReloadEnabled))
	fmt.Fprintf(a.out, "  %-18s %s\n", "Source bundle url:", color.GreenString(s.SourceBundleURL.String()))
}

func (a *app) done(msg string) {
	fmt.Fprintln(a.out, color.GreenString("✓")+" "+msg)
}
