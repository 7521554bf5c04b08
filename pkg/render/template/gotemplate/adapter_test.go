package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-partyreport/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"partials/footer.html": {Data: []byte("<footer>{{ title }}</footer>")},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderGlobalsAndData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobals(map[string]any{
		"title":  "Affiliation report",
		"source": "output/analysis.json",
	}))

	got, err := engine.Render("shell", "{{ title }} from {{ source }}: {{ groups }} groups", map[string]any{"groups": 4})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "Affiliation report from output/analysis.json: 4 groups"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestEngine_RenderKeepsMarkers(t *testing.T) {
	engine := newEngine(t)

	plain := "# Report\n\n<!--summary-auto-gen-->\n\n| a | b |\n<insert-content-here />"
	got, err := engine.Render("plain", plain, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != plain {
		t.Fatalf("expected plain text to pass through\nwant: %q\n got: %q", plain, got)
	}
}

func TestEngine_RenderNestedNumbers(t *testing.T) {
	engine := newEngine(t)

	data := map[string]any{
		"groups": []map[string]any{{"name": "Labour", "total": 12}},
	}
	got, err := engine.Render("loop", "{% for g in groups %}{{ g.name }}={{ g.total }}{% endfor %}", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "Labour=12"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestEngine_RenderInclude(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobals(map[string]any{"title": "Report"}))

	got, err := engine.Render("shell", `<body>{% include "partials/footer.html" %}</body>`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "<body><footer>Report</footer></body>"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestEngine_WithFilter(t *testing.T) {
	shout := func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		return pongo2.AsValue(strings.ToUpper(in.String()) + "!"), nil
	}
	engine := newEngine(t, gotemplate.WithFilter("partyreport_shout", shout))

	got, err := engine.Render("filter", "{{ name|partyreport_shout }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "ADA!"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}

	// a second engine with the same filter name reuses the registration
	newEngine(t, gotemplate.WithFilter("partyreport_shout", shout))
}

func TestEngine_SyntaxErrorNamesShell(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.Render("template.html", "{% if %}", nil)
	if err == nil || !strings.Contains(err.Error(), "template.html") {
		t.Fatalf("expected parse error naming the shell, got %v", err)
	}
}

func TestNew_RequiresFS(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatal("expected error without fs")
	}
}
