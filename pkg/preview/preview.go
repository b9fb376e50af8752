// Package preview renders a submission as staff-facing HTML: the ticket
// view a moderator reads before acting on an appeal. Rendering is pure
// templating over the already-assembled submission record; attachment URLs
// are linked, never fetched.
package preview

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-intake/pkg/submission"
)

//go:embed templates/*.tpl
var builtinTemplates embed.FS

const submissionTemplate = "submission.tpl"

// Option configures a Renderer before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	title     string
}

// WithTemplates overrides the embedded template set. The filesystem must
// contain submission.tpl at its root.
func WithTemplates(fsys fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = fsys
	}
}

// WithTitle overrides the heading shown above the submission body.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = strings.TrimSpace(title)
	}
}

// Renderer renders submissions with a pongo2 template set, caching parsed
// templates across calls.
type Renderer struct {
	mu        sync.Mutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	title     string
}

// New constructs a Renderer using the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{title: "Submission"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	templates := cfg.templates
	if templates == nil {
		sub, err := fs.Sub(builtinTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("preview: embedded templates: %w", err)
		}
		templates = sub
	}

	return &Renderer{
		set:       pongo2.NewSet("intake-preview", pongo2.NewFSLoader(templates)),
		templates: make(map[string]*pongo2.Template),
		title:     cfg.title,
	}, nil
}

// Render produces the HTML ticket view for one submission.
func (r *Renderer) Render(sub submission.Submission) ([]byte, error) {
	if r == nil || r.set == nil {
		return nil, errors.New("preview: renderer is nil")
	}

	tmpl, err := r.template(submissionTemplate)
	if err != nil {
		return nil, err
	}

	ctx := pongo2.Context{
		"title":      r.title,
		"submission": sub,
		"narrative":  sub.Narrative,
		"additional": additionalRows(sub),
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return nil, fmt.Errorf("preview: execute %s: %w", submissionTemplate, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("preview: parse %s: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

type row struct {
	Label string
	Value string
}

// additionalRows flattens the residual answers into label/value pairs
// sorted by label, so the template output stays deterministic despite the
// map-shaped input.
func additionalRows(sub submission.Submission) []row {
	rows := make([]row, 0, len(sub.AdditionalData))
	for id, value := range sub.AdditionalData {
		label := sub.FieldLabels[id]
		if label == "" {
			label = id
		}
		rows = append(rows, row{Label: label, Value: valueText(value)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Label < rows[j].Label })
	return rows
}

func valueText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
