package app

import "portcullis/internal/types"

type BuildCatalogRequest struct {
	ConfigPath string
	Overlays   []string
	Workers    int
	Debug      bool
}

type BuildCatalogResult struct {
	Results types.LoadResults
	// PortsLoaded is the count of port-load operations performed.
	PortsLoaded uint64
}

type ParsePortRequest struct {
	Dir string
}

type ParsePortResult struct {
	Port     *types.SourceControlFile
	Location string
}

type CheckRequest struct {
	ConfigPath string
	Overlays   []string
	Workers    int
	Debug      bool
}

type CheckResult struct {
	Loaded      int
	Failed      int
	FailedNames []string
}
