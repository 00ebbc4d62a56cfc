package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portcullis/internal/app"
)

type catalogOptions struct {
	Registries string
	Overlays   []string
	Workers    int
	Debug      bool
}

func newCatalogCommand() *cobra.Command {
	opts := catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Load every port the configured registries and overlays supply",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Registries, "registries", "registries.yaml", "Registry config path")
	cmd.Flags().StringSliceVar(&opts.Overlays, "overlay", nil, "Overlay port directories")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Parallel port loads (0 = number of CPUs)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Emit full parse diagnostics")
	_ = viper.BindPFlag("registries", cmd.Flags().Lookup("registries"))
	_ = viper.BindPFlag("overlays", cmd.Flags().Lookup("overlay"))
	_ = viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("debug", cmd.Flags().Lookup("debug"))
	return cmd
}

func runCatalog(cmd *cobra.Command, opts catalogOptions) error {
	service := newAppService()
	result, err := service.BuildCatalog(cmd.Context(), app.BuildCatalogRequest{
		ConfigPath: resolveString(cmd, opts.Registries, "registries", "registries"),
		Overlays:   resolveStrings(cmd, opts.Overlays, "overlays", "overlay"),
		Workers:    resolveInt(cmd, opts.Workers, "workers", "workers"),
		Debug:      resolveBool(cmd, opts.Debug, "debug", "debug"),
	})
	if err != nil {
		return err
	}

	for _, port := range result.Results.Ports {
		fmt.Printf("%s %s (%s)\n", port.SourceControlFile.Core.Name, port.SourceControlFile.Core.Version, port.Location)
	}
	fmt.Printf("loaded: %d, failed: %d, load operations: %d\n",
		len(result.Results.Ports), len(result.Results.Errors), result.PortsLoaded)
	return nil
}
