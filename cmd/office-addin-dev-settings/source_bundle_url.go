package main

import (
	"github.com/spf13/cobra"

	"office-addin-dev-settings/pkg/devsettings"
)

func (a *app) sourceBundleURLCmd() *cobra.Command {
	var host, port, path, extension, rawURL string

	cmd := &cobra.Command{
		Use:   "source-bundle-url <manifestPath>",
		Short: "Specify values for components of the url used to obtain the source bundle",
		Long: `Specifies values for components of the url used to obtain the source bundle.

A flag that is not given leaves the stored value untouched. A flag given with
an empty value resets that component to its default.

Examples:
  office-addin-dev-settings source-bundle-url manifest.xml --host devbox --port 8081
  office-addin-dev-settings source-bundle-url manifest.xml --port ""
  office-addin-dev-settings source-bundle-url manifest.xml --url http://devbox:8081/index.bundle`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := func(name, v string) devsettings.Field {
				if !cmd.Flags().Changed(name) {
					return devsettings.Omit()
				}
				return devsettings.Set(v)
			}
			update := devsettings.SourceBundleUpdate{
				Host:      field("host", host),
				Port:      field("port", port),
				Path:      field("path", path),
				Extension: field("extension", extension),
			}
			if cmd.Flags().Changed("url") {
				parts, err := devsettings.DecomposeURL(rawURL)
				if err != nil {
					return err
				}
				update = devsettings.UpdateFromParts(parts)
			}

			id, err := a.addinID(args)
			if err != nil {
				return err
			}
			if update.Empty() {
				a.log.Warnf("no url component given; nothing changed")
				return nil
			}
			if err := a.client.ConfigureSourceBundleURL(id, update); err != nil {
				return err
			}
			a.done("Source bundle url has been configured.")
			return nil
		},
	}

	// -h belongs to --host here, so help gets no shorthand.
	cmd.Flags().Bool("help", false, "help for source-bundle-url")
	cmd.Flags().StringVarP(&host, "host", "h", "", "specify the host name to use (instead of 'localhost')")
	cmd.Flags().StringVarP(&port, "port", "p", "", "specify the port number to use (instead of 9229)")
	cmd.Flags().StringVar(&path, "path", "", "specify the path to use")
	cmd.Flags().StringVarP(&extension, "extension", "e", "", "specify the extension to use (instead of '.bundle')")
	cmd.Flags().StringVar(&rawURL, "url", "", "specify the whole url; sets every component")
	for _, name := range []string{"host", "port", "path", "extension"} {
		cmd.MarkFlagsMutuallyExclusive("url", name)
	}
	return cmd
}
