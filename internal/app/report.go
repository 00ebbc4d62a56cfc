package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"portcullis/internal/types"
)

// PrintLoadErrors summarizes per-port failures. In low verbosity each
// failure is a one-line name-scoped warning plus a hint; with debug on,
// the full structured error is emitted.
func PrintLoadErrors(ctx context.Context, results types.LoadResults, debug bool) {
	if len(results.Errors) == 0 {
		return
	}
	if debug {
		for _, errInfo := range results.Errors {
			log.Ctx(ctx).Error().Msg(errInfo.Format())
		}
		return
	}
	for _, errInfo := range results.Errors {
		log.Ctx(ctx).Warn().Str("port", errInfo.Name).Msg("an error occurred while parsing the port")
	}
	log.Ctx(ctx).Warn().Int("failures", len(results.Errors)).
		Msg("use '--debug' to get more information about the parse failures")
}
