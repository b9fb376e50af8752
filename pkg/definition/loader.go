// Package definition parses, normalizes, and encodes persisted form
// definitions. Documents are accepted as JSON or YAML; on the way in,
// builder-authored text is sanitized, loose order integers are repaired,
// and the structural invariants are checked, so the rest of the engine can
// assume a well-formed definition. Persistence itself stays behind the
// Store interface; the remote config store is an external collaborator.
package definition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	internalmodel "github.com/goliatone/go-intake/internal/model"
	"github.com/goliatone/go-intake/pkg/model"
)

// ErrNotFound is returned by stores when no definition exists for a form id.
var ErrNotFound = errors.New("definition: not found")

// Store is the external config-store collaborator. Implementations own
// concurrency control between editors (last-write-wins, optimistic locking);
// the engine serializes nothing.
type Store interface {
	Load(ctx context.Context, formID string) (model.FormDefinition, error)
	Save(ctx context.Context, formID string, def model.FormDefinition) error
}

// Parse decodes a JSON or YAML definition document, then normalizes it:
// ids and options are trimmed, user-authored text is stripped of markup,
// order sequences are renumbered, and the structural invariants are
// verified.
func Parse(data []byte) (model.FormDefinition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return model.FormDefinition{}, errors.New("definition: document is empty")
	}

	var def model.FormDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		def = model.FormDefinition{}
		if yamlErr := yaml.Unmarshal(data, &def); yamlErr != nil {
			return model.FormDefinition{}, errors.New("definition: document is not valid JSON or YAML")
		}
	}

	Normalize(&def)
	if err := def.Check(); err != nil {
		return model.FormDefinition{}, fmt.Errorf("definition: %w", err)
	}
	return def, nil
}

// ParseFS reads and parses a definition document from a filesystem.
func ParseFS(fsys fs.FS, path string) (model.FormDefinition, error) {
	if fsys == nil {
		return model.FormDefinition{}, errors.New("definition: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return model.FormDefinition{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return model.FormDefinition{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return def, nil
}

// Encode renders the canonical persisted JSON form of a definition.
func Encode(def model.FormDefinition) ([]byte, error) {
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("definition: encode: %w", err)
	}
	return append(data, '\n'), nil
}

// Normalize trims identifiers, drops empty options, sanitizes authored
// text, and renumbers every ordering scope. It mutates the definition in
// place and never fails: anything it cannot fix is left for Check.
func Normalize(def *model.FormDefinition) {
	if def == nil {
		return
	}

	for i := range def.Sections {
		section := &def.Sections[i]
		section.ID = strings.TrimSpace(section.ID)
		section.Title = sanitizeText(section.Title)
		section.Description = sanitizeText(section.Description)
		section.ShowIfField = strings.TrimSpace(section.ShowIfField)
	}

	for i := range def.Fields {
		field := &def.Fields[i]
		field.ID = strings.TrimSpace(field.ID)
		field.SectionID = strings.TrimSpace(field.SectionID)
		field.Label = sanitizeText(field.Label)
		field.Description = sanitizeText(field.Description)
		if field.Label == "" {
			field.Label = model.DefaultLabeler(field.ID)
		}

		var options []string
		for _, option := range field.Options {
			if trimmed := strings.TrimSpace(option); trimmed != "" {
				options = append(options, trimmed)
			}
		}
		field.Options = options
	}

	internalmodel.RenumberAll(def)
}
