// Package gotemplate renders report shells with pongo2 (Django syntax).
package gotemplate

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	jsoniter "github.com/json-iterator/go"

	"github.com/goliatone/go-partyreport/pkg/render/template"
)

var json = jsoniter.Config{
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	files   fs.FS
	filters map[string]pongo2.FilterFunction
	globals map[string]any
}

// WithFS sets the filesystem {% include %} and {% extends %} resolve against.
func WithFS(files fs.FS) Option {
	return func(s *settings) {
		s.files = files
	}
}

// WithFilter registers a pongo2 filter. Filters are process wide; a name that
// is already registered keeps its first implementation.
func WithFilter(name string, fn pongo2.FilterFunction) Option {
	return func(s *settings) {
		if s.filters == nil {
			s.filters = make(map[string]pongo2.FilterFunction)
		}
		s.filters[strings.TrimSpace(name)] = fn
	}
}

// WithGlobals seeds values visible to every render.
func WithGlobals(globals map[string]any) Option {
	return func(s *settings) {
		if s.globals == nil {
			s.globals = make(map[string]any, len(globals))
		}
		for key, value := range globals {
			s.globals[key] = value
		}
	}
}

// Engine renders shells through a pongo2 template set.
type Engine struct {
	set *pongo2.TemplateSet
}

var _ template.Renderer = (*Engine)(nil)

// New builds an Engine. A filesystem is required.
func New(options ...Option) (*Engine, error) {
	s := &settings{}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.files == nil {
		return nil, errors.New("gotemplate: templates fs is required")
	}

	for name, fn := range s.filters {
		if name == "" || fn == nil || pongo2.FilterExists(name) {
			continue
		}
		if err := pongo2.RegisterFilter(name, fn); err != nil {
			return nil, fmt.Errorf("gotemplate: register filter %q: %w", name, err)
		}
	}

	globals, err := toContext(s.globals)
	if err != nil {
		return nil, fmt.Errorf("gotemplate: globals: %w", err)
	}
	set := pongo2.NewSet("partyreport", pongo2.NewFSLoader(s.files))
	if set.Globals == nil {
		set.Globals = make(pongo2.Context)
	}
	set.Globals.Update(globals)

	return &Engine{set: set}, nil
}

// Render implements template.Renderer.
func (e *Engine) Render(name, content string, data map[string]any) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("gotemplate: engine is nil")
	}
	tpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("gotemplate: parse %s: %w", name, err)
	}
	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("gotemplate: data for %s: %w", name, err)
	}
	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("gotemplate: execute %s: %w", name, err)
	}
	return out, nil
}

// toContext round-trips values through JSON so struct tags decide the names
// templates see and every number is an int64 or float64.
func toContext(values map[string]any) (pongo2.Context, error) {
	if len(values) == 0 {
		return pongo2.Context{}, nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	ctx := make(pongo2.Context, len(decoded))
	for key, value := range decoded {
		ctx[key] = normalizeNumbers(value)
	}
	return ctx, nil
}

// number matches both encoding/json.Number and jsoniter.Number.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		f, _ := v.Float64()
		return f
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	default:
		return value
	}
}
