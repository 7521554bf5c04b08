package partyreport

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/spf13/afero"

	"github.com/goliatone/go-partyreport/pkg/config"
	"github.com/goliatone/go-partyreport/pkg/output"
)

//go:embed templates/template.markdown templates/template.html
var embedded embed.FS

// EmbeddedTemplates exposes the default Markdown and HTML templates.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// WriteTemplates copies the default templates into dir. Existing files are
// kept unless overwrite is set. It returns the paths it wrote.
func WriteTemplates(files afero.Fs, dir string, overwrite bool) ([]string, error) {
	templates := EmbeddedTemplates()
	entries, err := fs.ReadDir(templates, ".")
	if err != nil {
		return nil, fmt.Errorf("partyreport: list templates: %w", err)
	}

	writer := output.NewWriter(files)
	var written []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		target := path.Join(dir, entry.Name())
		if !overwrite {
			exists, err := afero.Exists(files, target)
			if err != nil {
				return written, fmt.Errorf("partyreport: stat %s: %w", target, err)
			}
			if exists {
				continue
			}
		}
		data, err := fs.ReadFile(templates, entry.Name())
		if err != nil {
			return written, fmt.Errorf("partyreport: read template: %w", err)
		}
		if err := writer.WriteFile(target, data); err != nil {
			return written, fmt.Errorf("partyreport: %w", err)
		}
		written = append(written, target)
	}
	return written, nil
}

// StarterConfig returns settings for templates written to dir by
// WriteTemplates. The embedded templates carry template tags, so rendering is
// switched on.
func StarterConfig(dir string) Config {
	cfg := config.Default()
	cfg.MarkdownTemplate = path.Join(dir, config.DefaultMarkdownTemplate)
	cfg.HTMLTemplate = path.Join(dir, config.DefaultHTMLTemplate)
	cfg.Templates.Render = true
	return cfg
}
