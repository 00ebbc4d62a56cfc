package app

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"portcullis/internal/ports"
	"portcullis/internal/shared"
	"portcullis/internal/types"
)

// RegistrySet is an ordered collection of registries with an optional
// default registry that owns every name not claimed by another.
type RegistrySet struct {
	registries      []ports.Registry
	defaultRegistry ports.Registry
}

func NewRegistrySet(registries []ports.Registry, defaultRegistry ports.Registry) RegistrySet {
	return RegistrySet{registries: registries, defaultRegistry: defaultRegistry}
}

func (s RegistrySet) Registries() []ports.Registry {
	return s.registries
}

func (s RegistrySet) Default() ports.Registry {
	return s.defaultRegistry
}

// RegistryForPort returns the single registry owning the name: the first
// registry that owns it, else the default registry, else nil.
func (s RegistrySet) RegistryForPort(name string) ports.Registry {
	for _, registry := range s.registries {
		if registry.Owns(name) {
			return registry
		}
	}
	return s.defaultRegistry
}

// CatalogBuilder aggregates port loading across a registry set and
// overlay directories. One malformed port never aborts a catalog-wide
// query: failures accumulate next to successes in the LoadResults.
type CatalogBuilder struct {
	Loader     *PortLoader
	FS         ports.Filesystem
	Registries RegistrySet

	// Workers bounds the parallel per-port loads; <= 0 means NumCPU.
	Workers int
}

// TryLoadAllRegistryPorts loads the baseline version of every port name
// the registry set can supply. Names no registry owns and names whose
// owner cannot resolve a baseline path are skipped without an error.
func (b CatalogBuilder) TryLoadAllRegistryPorts(ctx context.Context) (types.LoadResults, error) {
	var names []string
	for _, registry := range b.Registries.Registries() {
		names = append(names, registry.Packages()...)
	}
	if defaultRegistry := b.Registries.Default(); defaultRegistry != nil {
		all, err := defaultRegistry.AllPortNames()
		if err != nil {
			return types.LoadResults{}, err
		}
		names = append(names, all...)
	}
	names = shared.SortedUnique(names)

	var dirs []string
	for _, name := range names {
		registry := b.Registries.RegistryForPort(name)
		if registry == nil {
			// A registry may reference a name it does not own; without a
			// default registry nobody resolves it.
			log.Ctx(ctx).Debug().Str("port", name).Msg("no registry owns this port name, skipping")
			continue
		}
		path, ok := registry.BaselinePath(name)
		if !ok {
			// The owner does not have the baseline version materialized.
			log.Ctx(ctx).Debug().Str("port", name).Str("registry", registry.Name()).
				Msg("registry owns the port but cannot resolve a baseline path, skipping")
			continue
		}
		dirs = append(dirs, path)
	}

	return b.loadPortDirs(ctx, dirs)
}

// LoadOverlayPorts loads every immediate subdirectory of directory as a
// port, in sorted order, skipping filesystem housekeeping entries.
func (b CatalogBuilder) LoadOverlayPorts(ctx context.Context, directory string) (types.LoadResults, error) {
	portDirs, err := b.FS.ListDirectories(directory)
	if err != nil {
		return types.LoadResults{}, err
	}
	sort.Strings(portDirs)

	dirs := portDirs[:0]
	for _, dir := range portDirs {
		if shared.IsHousekeepingEntry(filepath.Base(dir)) {
			continue
		}
		dirs = append(dirs, dir)
	}

	return b.loadPortDirs(ctx, dirs)
}

// loadPortDirs runs the per-directory loads under a bounded worker pool
// and re-sorts the merged lists by name so output is deterministic
// regardless of completion order.
func (b CatalogBuilder) loadPortDirs(ctx context.Context, dirs []string) (types.LoadResults, error) {
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	var mu sync.Mutex
	var results types.LoadResults
	for _, dir := range dirs {
		group.Go(func() error {
			scf, errInfo, err := b.Loader.TryLoadPort(ctx, dir)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if errInfo != nil {
				results.Errors = append(results.Errors, errInfo)
				return nil
			}
			results.Ports = append(results.Ports, types.SourceControlFileAndLocation{
				SourceControlFile: scf,
				Location:          dir,
			})
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return types.LoadResults{}, err
	}

	sort.Slice(results.Ports, func(i, j int) bool {
		return results.Ports[i].SourceControlFile.Core.Name < results.Ports[j].SourceControlFile.Core.Name
	})
	sort.Slice(results.Errors, func(i, j int) bool {
		return results.Errors[i].Name < results.Errors[j].Name
	})
	return results, nil
}
