package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"portcullis/internal/app"
)

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <port-dir>",
		Short: "Parse a single port directory and print its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0])
		},
	}
	return cmd
}

func runParse(cmd *cobra.Command, dir string) error {
	service := newAppService()
	result, err := service.ParsePort(cmd.Context(), app.ParsePortRequest{Dir: dir})
	if err != nil {
		return err
	}

	core := result.Port.Core
	fmt.Printf("name: %s\nversion: %s\n", core.Name, core.Version)
	if core.Description != "" {
		fmt.Printf("description: %s\n", core.Description)
	}
	if len(core.Dependencies) > 0 {
		var deps []string
		for _, dep := range core.Dependencies {
			deps = append(deps, dep.Name)
		}
		fmt.Printf("dependencies: %s\n", strings.Join(deps, ", "))
	}
	if len(core.DefaultFeatures) > 0 {
		fmt.Printf("default features: %s\n", strings.Join(core.DefaultFeatures, ", "))
	}
	for _, feature := range result.Port.Features {
		fmt.Printf("feature %s: %s\n", feature.Name, feature.Description)
	}
	return nil
}
