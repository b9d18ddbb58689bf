// Package render turns ORE roll results into chat markup using the
// templates embedded under templates/. A template's id is its file name
// without the .html extension.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jsamuelsen11/ore-roller/internal/domain"
	"github.com/jsamuelsen11/ore-roller/internal/domain/ore"
	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

// DefaultTemplate is the id used when none is configured.
const DefaultTemplate = "ore-roll"

//go:embed templates/*.html
var templateFS embed.FS

var _ ports.Presenter = (*Renderer)(nil)

// View is the data each template executes against.
type View struct {
	Sets       []ore.DiceSet
	LooseDice  []int
	FlavorText string
	HasFlavor  bool
}

// NewView projects result onto the fields the templates use.
func NewView(result ore.RollResult) View {
	v := View{Sets: result.Sets, LooseDice: result.LooseDice}
	if result.HasFlavor() {
		v.FlavorText = *result.FlavorText
		v.HasFlavor = true
	}
	return v
}

// Renderer holds the parsed templates. It is safe for concurrent use.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	return NewFromFS(templateFS, "templates")
}

// NewFromFS parses every .html file in dir of fsys.
func NewFromFS(fsys fs.FS, dir string) (*Renderer, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(entries))}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".html" {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".html")
		tmpl, err := template.New(e.Name()).ParseFS(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", id, err)
		}
		r.templates[id] = tmpl
	}

	if len(r.templates) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}
	return r, nil
}

// Render executes templateID over result.
func (r *Renderer) Render(_ context.Context, templateID string, result ore.RollResult) (string, error) {
	tmpl, ok := r.templates[templateID]
	if !ok {
		return "", fmt.Errorf("template %q: %w", templateID, domain.ErrNotFound)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, NewView(result)); err != nil {
		return "", fmt.Errorf("rendering template %q: %w", templateID, err)
	}
	return buf.String(), nil
}

// Has reports whether templateID is known.
func (r *Renderer) Has(templateID string) bool {
	_, ok := r.templates[templateID]
	return ok
}

// Templates lists the known template ids in order.
func (r *Renderer) Templates() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
