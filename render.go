package verso

import (
	"fmt"
	"html/template"
	"maps"
	"path/filepath"
	"strings"
	texttemplate "text/template"
)

// TemplateRenderer renders named layout templates and raw template
// strings. Site-wide values are registered once and merged into the
// context of every subsequent call. The concrete implementation is
// selected through the renderer option.
type TemplateRenderer interface {
	Register(globals map[string]any)
	Render(name string, ctx map[string]any) (string, error)
	RenderString(body string, ctx map[string]any) (string, error)
}

var templateRenderers = map[string]func(dir string) TemplateRenderer{
	"gotemplate": newTemplateEngine,
}

func newTemplateRenderer(name, dir string) (TemplateRenderer, error) {
	construct, ok := templateRenderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
	return construct(dir), nil
}

// templateEngine backs layouts with html/template and raw post bodies
// with text/template. Template names are paths relative to the source
// root, parsed once and cached. Registered globals live in a base context
// that is copied for every call, so per-call values never leak back.
type templateEngine struct {
	dir   string
	base  map[string]any
	cache map[string]*template.Template
}

func newTemplateEngine(dir string) TemplateRenderer {
	return &templateEngine{
		dir:   dir,
		base:  make(map[string]any),
		cache: make(map[string]*template.Template),
	}
}

func (te *templateEngine) Register(globals map[string]any) {
	maps.Copy(te.base, globals)
}

func (te *templateEngine) context(ctx map[string]any) map[string]any {
	merged := maps.Clone(te.base)
	maps.Copy(merged, ctx)
	return merged
}

func (te *templateEngine) Render(name string, ctx map[string]any) (string, error) {
	t, ok := te.cache[name]
	if !ok {
		var err error
		t, err = template.ParseFiles(filepath.Join(te.dir, filepath.FromSlash(name)))
		if err != nil {
			return "", err
		}
		te.cache[name] = t
	}

	var b strings.Builder
	if err := t.Execute(&b, te.context(ctx)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderString treats the body itself as a template. Post bodies are not
// HTML yet at this point, so text/template applies, without escaping.
func (te *templateEngine) RenderString(body string, ctx map[string]any) (string, error) {
	t, err := texttemplate.New("body").Parse(body)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := t.Execute(&b, te.context(ctx)); err != nil {
		return "", err
	}
	return b.String(), nil
}
