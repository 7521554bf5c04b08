package partyreport

import (
	internalLoader "github.com/goliatone/go-partyreport/internal/analysis/loader"
	"github.com/goliatone/go-partyreport/pkg/analysis"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...analysis.LoaderOption) analysis.Loader {
	cfg := analysis.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
