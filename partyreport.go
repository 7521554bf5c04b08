package partyreport

import (
	"context"

	"github.com/goliatone/go-partyreport/pkg/config"
	"github.com/goliatone/go-partyreport/pkg/pipeline"
)

// Config aliases config.Config for callers of the top-level module.
type Config = config.Config

// Outcome aliases pipeline.Outcome.
type Outcome = pipeline.Outcome

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return config.Default()
}

// NewPipeline exposes the pipeline constructor from the top-level module.
func NewPipeline(cfg Config, options ...pipeline.Option) *pipeline.Pipeline {
	return pipeline.New(cfg, options...)
}

// Generate validates cfg and runs the report once.
func Generate(ctx context.Context, cfg Config, options ...pipeline.Option) (Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}
	return pipeline.New(cfg, options...).Run(ctx)
}
