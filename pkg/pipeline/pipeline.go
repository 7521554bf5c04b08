package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-partyreport/internal/analysis/loader"
	"github.com/goliatone/go-partyreport/pkg/analysis"
	"github.com/goliatone/go-partyreport/pkg/config"
	"github.com/goliatone/go-partyreport/pkg/convert"
	"github.com/goliatone/go-partyreport/pkg/logging"
	"github.com/goliatone/go-partyreport/pkg/output"
	"github.com/goliatone/go-partyreport/pkg/render/template"
	"github.com/goliatone/go-partyreport/pkg/render/template/gotemplate"
	"github.com/goliatone/go-partyreport/pkg/report"
	"github.com/goliatone/go-partyreport/pkg/splice"
)

// Option customises the pipeline.
type Option func(*Pipeline)

// WithLoader injects a custom analysis loader.
func WithLoader(loader analysis.Loader) Option {
	return func(p *Pipeline) {
		p.loader = loader
	}
}

// WithConverter forces a converter, bypassing the registry lookup.
func WithConverter(converter convert.Converter) Option {
	return func(p *Pipeline) {
		p.converter = converter
	}
}

// WithRegistry injects the converter registry consulted with
// Converter.Name from the configuration.
func WithRegistry(registry *convert.Registry) Option {
	return func(p *Pipeline) {
		p.registry = registry
	}
}

// WithFileSystem sets the filesystem used for templates, the default loader
// and outputs.
func WithFileSystem(fs afero.Fs) Option {
	return func(p *Pipeline) {
		p.files = fs
	}
}

// WithEngine injects the template engine used to expand shells. It is only
// consulted when Templates.Render is set.
func WithEngine(engine template.Renderer) Option {
	return func(p *Pipeline) {
		p.engine = engine
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithClock overrides time.Now, used for the generated_at template value.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// Pipeline coordinates a single report run.
type Pipeline struct {
	cfg           config.Config
	loader        analysis.Loader
	converter     convert.Converter
	registry      *convert.Registry
	files         afero.Fs
	engine        template.Renderer
	writer        *output.Writer
	logger        *zap.Logger
	now           func() time.Time
	initialiseErr error
}

// Outcome describes what a run produced.
type Outcome struct {
	// Written is false when the conversion request failed in transport.
	Written      bool
	OutputPath   string
	MarkdownPath string
	// StatusCode is the status reported by the converter.
	StatusCode   int
	TransportErr error
}

// New constructs a Pipeline for cfg. Missing dependencies are initialised with
// the built-in implementations.
func New(cfg config.Config, options ...Option) *Pipeline {
	p := &Pipeline{cfg: cfg}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	p.applyDefaults()
	return p
}

// Run executes the whole report generation.
func (p *Pipeline) Run(ctx context.Context) (Outcome, error) {
	outcome := Outcome{}
	if ctx == nil {
		return outcome, errors.New("pipeline: context is required")
	}
	if err := ctx.Err(); err != nil {
		return outcome, err
	}
	if p.initialiseErr != nil {
		return outcome, p.initialiseErr
	}

	results, err := p.Results(ctx)
	if err != nil {
		return outcome, err
	}
	data := p.shellData(results)

	markdown, err := p.compose(results, data)
	if err != nil {
		return outcome, err
	}

	shell, err := p.readShell(p.cfg.HTMLTemplate, data)
	if err != nil {
		return outcome, err
	}
	if !strings.Contains(shell, splice.ContentMarker) {
		return outcome, fmt.Errorf("pipeline: html template %s: %w: %q", p.cfg.HTMLTemplate, splice.ErrMarkerNotFound, splice.ContentMarker)
	}

	if path := p.cfg.MarkdownOutput; path != "" {
		if err := p.writer.WriteFile(path, []byte(markdown)); err != nil {
			return outcome, fmt.Errorf("pipeline: %w", err)
		}
		outcome.MarkdownPath = path
		p.logger.Info("markdown written", zap.String("path", path))
	}

	result, err := p.converter.Convert(ctx, markdown)
	if err != nil {
		if !errors.Is(err, convert.ErrTransport) {
			return outcome, fmt.Errorf("pipeline: convert: %w", err)
		}
		p.logger.Error("markdown conversion request failed, no output written",
			zap.String("converter", p.converter.Name()),
			zap.Error(err),
		)
		outcome.TransportErr = err
		if p.cfg.Strict {
			return outcome, fmt.Errorf("pipeline: convert: %w", err)
		}
		return outcome, nil
	}

	outcome.StatusCode = result.StatusCode
	if !result.OK() {
		p.logger.Error("markdown conversion failed",
			zap.String("converter", p.converter.Name()),
			zap.Int("status", result.StatusCode),
			zap.String("body", result.Body),
		)
	}

	if err := p.writer.WriteHTML(p.cfg.Output, shell, result.Body); err != nil {
		return outcome, fmt.Errorf("pipeline: %w", err)
	}
	outcome.Written = true
	outcome.OutputPath = p.cfg.Output

	p.logger.Info("report written",
		zap.String("path", p.cfg.Output),
		zap.Int("groups", len(results)),
		zap.Int("status", result.StatusCode),
	)
	return outcome, nil
}

// Results loads and decodes the configured analysis input.
func (p *Pipeline) Results(ctx context.Context) (analysis.Results, error) {
	src, err := analysis.ParseSource(p.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	doc, err := p.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("pipeline: load analysis: %w", err)
	}
	results, err := doc.Decode()
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	p.logger.Debug("analysis loaded",
		zap.String("source", doc.Location()),
		zap.Int("groups", len(results)),
		zap.Int("members", results.MemberCount()),
	)
	return results, nil
}

// Summary renders only the summary table.
func (p *Pipeline) Summary(ctx context.Context) (string, error) {
	if p.initialiseErr != nil {
		return "", p.initialiseErr
	}
	results, err := p.Results(ctx)
	if err != nil {
		return "", err
	}
	return report.BuildSummary(results), nil
}

func (p *Pipeline) compose(results analysis.Results, data map[string]any) (string, error) {
	tpl, err := p.readShell(p.cfg.MarkdownTemplate, data)
	if err != nil {
		return "", err
	}
	markdown, err := report.Compose(tpl, results)
	if err != nil {
		return "", fmt.Errorf("pipeline: markdown template %s: %w", p.cfg.MarkdownTemplate, err)
	}
	return markdown, nil
}

// readShell loads a template file. Its template tags are expanded only when
// Templates.Render is set; otherwise the file is used verbatim. Markers are
// plain text to the engine and survive either way.
func (p *Pipeline) readShell(path string, data map[string]any) (string, error) {
	raw, err := afero.ReadFile(p.files, path)
	if err != nil {
		return "", fmt.Errorf("pipeline: read template: %w", err)
	}
	if !p.cfg.Templates.Render {
		return string(raw), nil
	}
	rendered, err := p.engine.Render(path, string(raw), data)
	if err != nil {
		return "", fmt.Errorf("pipeline: render template %s: %w", path, err)
	}
	return rendered, nil
}

func (p *Pipeline) applyDefaults() {
	p.logger = logging.OrNop(p.logger)
	if p.now == nil {
		p.now = time.Now
	}
	if p.files == nil {
		p.files = afero.NewOsFs()
	}
	if p.loader == nil {
		p.loader = internalLoader.New(analysis.NewLoaderOptions(
			analysis.WithFiles(p.files),
			analysis.WithHTTPFallback(p.cfg.Converter.Timeout),
		))
	}
	p.writer = output.NewWriter(p.files)

	if p.engine == nil && p.cfg.Templates.Render {
		engine, err := gotemplate.New(
			gotemplate.WithFS(afero.NewIOFS(p.files)),
			gotemplate.WithFilter("percent", filterPercent),
			gotemplate.WithGlobals(map[string]any{
				"title":  p.cfg.Title,
				"source": p.cfg.Input,
			}),
		)
		if err != nil {
			p.initialiseErr = fmt.Errorf("pipeline: template engine: %w", err)
			return
		}
		p.engine = engine
	}

	if p.converter == nil {
		if p.registry == nil {
			p.registry = DefaultRegistry(p.cfg, p.logger)
		}
		converter, err := p.registry.Get(p.cfg.Converter.Name)
		if err != nil {
			p.initialiseErr = fmt.Errorf("pipeline: %w", err)
			return
		}
		p.converter = converter
	}
	if p.cfg.Converter.Sanitize {
		p.converter = convert.Sanitized(p.converter)
	}
}

// DefaultRegistry registers the GitHub and goldmark converters configured
// from cfg. extra is applied to the GitHub converter after the configured
// options.
func DefaultRegistry(cfg config.Config, logger *zap.Logger, extra ...convert.GitHubOption) *convert.Registry {
	options := []convert.GitHubOption{
		convert.WithEndpoint(cfg.Converter.Endpoint),
		convert.WithAPIVersion(cfg.Converter.APIVersion),
		convert.WithUserAgent(cfg.Converter.UserAgent),
		convert.WithTimeout(cfg.Converter.Timeout),
		convert.WithToken(cfg.Token),
		convert.WithLogger(logger),
	}
	registry := convert.NewRegistry()
	registry.MustRegister(convert.NewGitHub(append(options, extra...)...))
	registry.MustRegister(convert.NewGoldmark())
	return registry
}
