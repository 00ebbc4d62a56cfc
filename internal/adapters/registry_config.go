package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"portcullis/internal/ports"
)

// RegistryConfig is the registries.yaml document declaring the catalog
// sources and optional overlay directories.
type RegistryConfig struct {
	Registries []RegistryEntry `yaml:"registries"`
	Overlays   []string        `yaml:"overlays,omitempty"`
}

type RegistryEntry struct {
	Name     string            `yaml:"name"`
	Path     string            `yaml:"path"`
	Default  bool              `yaml:"default,omitempty"`
	Packages []string          `yaml:"packages,omitempty"`
	Baseline map[string]string `yaml:"baseline,omitempty"`
}

type RegistryConfigAdapter struct {
	FS ports.Filesystem
}

func NewRegistryConfigAdapter(fs ports.Filesystem) RegistryConfigAdapter {
	return RegistryConfigAdapter{FS: fs}
}

func (a RegistryConfigAdapter) Load(path string) (RegistryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RegistryConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("registry config not found").
			WithCause(err)
	}
	var cfg RegistryConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RegistryConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse registry config yaml").
			WithCause(err)
	}
	return cfg, nil
}

// Build turns the config into registry instances. At most one entry may
// be marked default; the default registry is returned separately.
func (a RegistryConfigAdapter) Build(cfg RegistryConfig) ([]ports.Registry, ports.Registry, error) {
	var registries []ports.Registry
	var defaultRegistry ports.Registry
	for _, entry := range cfg.Registries {
		if entry.Path == "" {
			return nil, nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("registry entry is missing a path")
		}
		registry := NewDirRegistry(entry.Name, entry.Path, entry.Packages, entry.Baseline, a.FS)
		if entry.Default {
			if defaultRegistry != nil {
				return nil, nil, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("more than one registry is marked default")
			}
			defaultRegistry = registry
			continue
		}
		registries = append(registries, registry)
	}
	return registries, defaultRegistry, nil
}
