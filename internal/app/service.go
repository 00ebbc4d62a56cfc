package app

import (
	"portcullis/internal/adapters"
	"portcullis/internal/ports"
)

type Service struct {
	FS             ports.Filesystem
	Loader         *PortLoader
	RegistryConfig adapters.RegistryConfigAdapter
}

func NewService() Service {
	fs := adapters.NewFilesystemAdapter()
	return Service{
		FS:             fs,
		Loader:         NewPortLoader(fs),
		RegistryConfig: adapters.NewRegistryConfigAdapter(fs),
	}
}
