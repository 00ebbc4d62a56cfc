package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

// BuildCatalog loads every port the configured registry set and overlay
// directories can supply. Per-port failures land in the result's error
// list; the call itself fails only on hard errors (unreadable config,
// ambiguous port directories, unreadable overlay roots).
func (s Service) BuildCatalog(ctx context.Context, req BuildCatalogRequest) (BuildCatalogResult, error) {
	configPath := strings.TrimSpace(req.ConfigPath)
	if configPath == "" {
		return BuildCatalogResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("registry config path is required")
	}
	cfg, err := s.RegistryConfig.Load(configPath)
	if err != nil {
		return BuildCatalogResult{}, err
	}
	registries, defaultRegistry, err := s.RegistryConfig.Build(cfg)
	if err != nil {
		return BuildCatalogResult{}, err
	}

	builder := CatalogBuilder{
		Loader:     s.Loader,
		FS:         s.FS,
		Registries: NewRegistrySet(registries, defaultRegistry),
		Workers:    req.Workers,
	}
	results, err := builder.TryLoadAllRegistryPorts(ctx)
	if err != nil {
		return BuildCatalogResult{}, err
	}

	overlays := append(append([]string{}, cfg.Overlays...), req.Overlays...)
	for _, overlay := range overlays {
		overlayResults, err := builder.LoadOverlayPorts(ctx, overlay)
		if err != nil {
			return BuildCatalogResult{}, err
		}
		results.Ports = append(results.Ports, overlayResults.Ports...)
		results.Errors = append(results.Errors, overlayResults.Errors...)
	}

	log.Ctx(ctx).Debug().Int("ports", len(results.Ports)).Int("errors", len(results.Errors)).
		Msg("catalog built")
	PrintLoadErrors(ctx, results, req.Debug)
	return BuildCatalogResult{Results: results, PortsLoaded: s.Loader.Loads()}, nil
}
