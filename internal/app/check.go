package app

import (
	"context"
)

// Check builds the catalog and condenses the outcome for exit-code
// driven callers.
func (s Service) Check(ctx context.Context, req CheckRequest) (CheckResult, error) {
	built, err := s.BuildCatalog(ctx, BuildCatalogRequest(req))
	if err != nil {
		return CheckResult{}, err
	}
	result := CheckResult{
		Loaded: len(built.Results.Ports),
		Failed: len(built.Results.Errors),
	}
	for _, errInfo := range built.Results.Errors {
		result.FailedNames = append(result.FailedNames, errInfo.Name)
	}
	return result, nil
}
