package template

// Renderer expands the template tags of a report shell. name identifies the
// shell in error messages; data is merged over the renderer's globals.
type Renderer interface {
	Render(name, content string, data map[string]any) (string, error)
}
