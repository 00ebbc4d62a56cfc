package cli

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portcullis/internal/app"
)

type checkOptions struct {
	Registries string
	Overlays   []string
	Workers    int
	Debug      bool
}

func newCheckCommand() *cobra.Command {
	opts := checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build the catalog and fail when any port cannot be parsed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Registries, "registries", "registries.yaml", "Registry config path")
	cmd.Flags().StringSliceVar(&opts.Overlays, "overlay", nil, "Overlay port directories")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Parallel port loads (0 = number of CPUs)")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Emit full parse diagnostics")
	_ = viper.BindPFlag("registries", cmd.Flags().Lookup("registries"))
	_ = viper.BindPFlag("overlays", cmd.Flags().Lookup("overlay"))
	return cmd
}

func runCheck(cmd *cobra.Command, opts checkOptions) error {
	service := newAppService()
	result, err := service.Check(cmd.Context(), app.CheckRequest{
		ConfigPath: resolveString(cmd, opts.Registries, "registries", "registries"),
		Overlays:   resolveStrings(cmd, opts.Overlays, "overlays", "overlay"),
		Workers:    resolveInt(cmd, opts.Workers, "workers", "workers"),
		Debug:      resolveBool(cmd, opts.Debug, "debug", "debug"),
	})
	if err != nil {
		return fmt.Errorf("%s", errorMessage(err))
	}

	fmt.Printf("checked: %d loaded, %d failed\n", result.Loaded, result.Failed)
	if result.Failed > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("ports failed to parse: %s", strings.Join(result.FailedNames, ", ")))
	}
	return nil
}
