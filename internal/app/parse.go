package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ParsePort loads a single port directory. A per-port parse failure is
// promoted to an error here because the caller asked about exactly this
// port.
func (s Service) ParsePort(ctx context.Context, req ParsePortRequest) (ParsePortResult, error) {
	dir := strings.TrimSpace(req.Dir)
	if dir == "" {
		return ParsePortResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("port directory is required")
	}
	scf, errInfo, err := s.Loader.TryLoadPort(ctx, dir)
	if err != nil {
		return ParsePortResult{}, err
	}
	if errInfo != nil {
		return ParsePortResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(errInfo.Format())
	}
	return ParsePortResult{Port: scf, Location: dir}, nil
}
