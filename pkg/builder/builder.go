// Package builder holds the form-builder mutations over a FormDefinition:
// moving, inserting, and deleting fields and sections. These operations are
// the only sanctioned writers of Order and SectionID. Every mutation
// renumbers the scopes it touched to a contiguous 0..n-1 sequence, so the
// total-order invariant downstream sort-by-order logic depends on survives
// any sequence of edits. Bad indexes and unknown ids are programmer errors
// and fail loudly instead of producing a silently corrupt order.
package builder

import (
	"errors"
	"fmt"

	internalmodel "github.com/goliatone/go-intake/internal/model"
	"github.com/goliatone/go-intake/pkg/model"
)

var (
	// ErrIndexOutOfRange signals a move or insert addressing a position the
	// scope does not have.
	ErrIndexOutOfRange = errors.New("builder: index out of range")
	// ErrUnknownSection signals an operation naming a section the
	// definition does not contain.
	ErrUnknownSection = errors.New("builder: unknown section")
	// ErrUnknownField signals an operation naming a field the definition
	// does not contain.
	ErrUnknownField = errors.New("builder: unknown field")
	// ErrDuplicateID signals an insert reusing an existing id.
	ErrDuplicateID = errors.New("builder: duplicate id")
)

// Builder mutates a single FormDefinition in place. It keeps no state of
// its own; construct one per edit operation or hold one per editing session,
// both are fine.
type Builder struct {
	def *model.FormDefinition
}

// New wraps the supplied definition. The definition must outlive the
// builder; all operations mutate it directly.
func New(def *model.FormDefinition) *Builder {
	return &Builder{def: def}
}

// Definition exposes the wrapped definition.
func (b *Builder) Definition() *model.FormDefinition { return b.def }

// MoveSection removes the section at position from (in order-sorted
// positions) and reinserts it at position to, then renumbers every section.
// Renumbering the whole scope, not swapping the endpoints, is what keeps
// the order total when the move is non-adjacent.
func (b *Builder) MoveSection(from, to int) error {
	ordered := b.def.SectionsInOrder()
	if err := checkMove(len(ordered), from, to); err != nil {
		return fmt.Errorf("move section: %w", err)
	}

	reordered := reposition(sectionIDs(ordered), from, to)
	for position, id := range reordered {
		for i := range b.def.Sections {
			if b.def.Sections[i].ID == id {
				b.def.Sections[i].Order = position
			}
		}
	}
	return nil
}

// MoveField reorders a field inside one sibling scope: the named section,
// or the unassigned bucket when sectionID is empty.
func (b *Builder) MoveField(sectionID string, from, to int) error {
	if err := b.checkSection(sectionID); err != nil {
		return fmt.Errorf("move field: %w", err)
	}
	ordered := b.def.FieldsInSection(sectionID)
	if err := checkMove(len(ordered), from, to); err != nil {
		return fmt.Errorf("move field: %w", err)
	}

	reordered := reposition(fieldIDs(ordered), from, to)
	for position, id := range reordered {
		for i := range b.def.Fields {
			if b.def.Fields[i].ID == id {
				b.def.Fields[i].Order = position
			}
		}
	}
	return nil
}

// MoveFieldToSection reassigns a field to another scope. With an explicit
// index the field lands there and later siblings shift down; without one it
// is appended after the scope's last field. Both the vacated and the target
// scope come out contiguously renumbered.
func (b *Builder) MoveFieldToSection(fieldID, toSectionID string, at ...int) error {
	if err := b.checkSection(toSectionID); err != nil {
		return fmt.Errorf("move field to section: %w", err)
	}
	index := -1
	for i := range b.def.Fields {
		if b.def.Fields[i].ID == fieldID {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("move field to section: %q: %w", fieldID, ErrUnknownField)
	}

	fromSectionID := b.def.Fields[index].SectionID
	if fromSectionID == toSectionID {
		return b.moveWithinScope(fieldID, toSectionID, at)
	}

	target := b.def.FieldsInSection(toSectionID)
	position := len(target)
	if len(at) > 0 {
		position = at[0]
		if position < 0 || position > len(target) {
			return fmt.Errorf("move field to section: index %d: %w", position, ErrIndexOutOfRange)
		}
	}

	for i := range b.def.Fields {
		if b.def.Fields[i].SectionID == toSectionID && b.def.Fields[i].ID != fieldID && b.def.Fields[i].Order >= position {
			b.def.Fields[i].Order++
		}
	}
	b.def.Fields[index].SectionID = toSectionID
	b.def.Fields[index].Order = position

	internalmodel.RenumberFields(b.def, fromSectionID)
	internalmodel.RenumberFields(b.def, toSectionID)
	return nil
}

// moveWithinScope handles the degenerate move-to-section where source and
// target scope coincide. The sibling orders must be computed against the
// scope with the field logically removed; shifting against the original
// order values would land every forward move one slot short.
func (b *Builder) moveWithinScope(fieldID, sectionID string, at []int) error {
	ordered := b.def.FieldsInSection(sectionID)
	from := 0
	for i, field := range ordered {
		if field.ID == fieldID {
			from = i
			break
		}
	}

	to := len(ordered) - 1
	if len(at) > 0 {
		to = at[0]
		if to < 0 || to >= len(ordered) {
			return fmt.Errorf("move field to section: index %d: %w", to, ErrIndexOutOfRange)
		}
	}

	reordered := reposition(fieldIDs(ordered), from, to)
	for position, id := range reordered {
		for i := range b.def.Fields {
			if b.def.Fields[i].ID == id {
				b.def.Fields[i].Order = position
			}
		}
	}
	return nil
}

// InsertSection appends a section at the end of the section order. A blank
// title is derived from the id.
func (b *Builder) InsertSection(section model.Section) error {
	if section.ID == "" {
		return errors.New("builder: insert section: id is required")
	}
	if _, exists := b.def.SectionByID(section.ID); exists {
		return fmt.Errorf("insert section: %q: %w", section.ID, ErrDuplicateID)
	}
	if section.Title == "" {
		section.Title = model.DefaultLabeler(section.ID)
	}
	section.Order = len(b.def.Sections)
	b.def.Sections = append(b.def.Sections, section)
	return nil
}

// InsertField appends a field at the end of its sibling scope. A blank
// label is derived from the id.
func (b *Builder) InsertField(field model.Field) error {
	if field.ID == "" {
		return errors.New("builder: insert field: id is required")
	}
	if _, exists := b.def.FieldByID(field.ID); exists {
		return fmt.Errorf("insert field: %q: %w", field.ID, ErrDuplicateID)
	}
	if err := b.checkSection(field.SectionID); err != nil {
		return fmt.Errorf("insert field: %w", err)
	}
	if field.Label == "" {
		field.Label = model.DefaultLabeler(field.ID)
	}
	field.Order = len(b.def.FieldsInSection(field.SectionID))
	b.def.Fields = append(b.def.Fields, field)
	return nil
}

// DeleteField removes the field and renumbers its vacated scope.
func (b *Builder) DeleteField(id string) error {
	field, ok := b.def.FieldByID(id)
	if !ok {
		return fmt.Errorf("delete field: %q: %w", id, ErrUnknownField)
	}
	b.def.Fields = removeField(b.def.Fields, id)
	internalmodel.RenumberFields(b.def, field.SectionID)
	return nil
}

// DeleteSection removes the section and cascades to every field assigned to
// it; fields are never reparented. Remaining sections are renumbered.
func (b *Builder) DeleteSection(id string) error {
	if _, ok := b.def.SectionByID(id); !ok {
		return fmt.Errorf("delete section: %q: %w", id, ErrUnknownSection)
	}

	kept := b.def.Fields[:0]
	for _, field := range b.def.Fields {
		if field.SectionID != id {
			kept = append(kept, field)
		}
	}
	b.def.Fields = kept

	sections := b.def.Sections[:0]
	for _, section := range b.def.Sections {
		if section.ID != id {
			sections = append(sections, section)
		}
	}
	b.def.Sections = sections

	internalmodel.RenumberSections(b.def)
	return nil
}

func (b *Builder) checkSection(sectionID string) error {
	if sectionID == "" {
		return nil // unassigned bucket
	}
	if _, ok := b.def.SectionByID(sectionID); !ok {
		return fmt.Errorf("%q: %w", sectionID, ErrUnknownSection)
	}
	return nil
}

func checkMove(length, from, to int) error {
	if from < 0 || from >= length || to < 0 || to >= length {
		return fmt.Errorf("from %d to %d in scope of %d: %w", from, to, length, ErrIndexOutOfRange)
	}
	return nil
}

// reposition removes the element at from and reinserts it at to. The caller
// assigns positions from the returned slice, which is exactly the
// renumber-the-whole-scope algorithm.
func reposition(ids []string, from, to int) []string {
	moved := ids[from]
	rest := append(append([]string(nil), ids[:from]...), ids[from+1:]...)
	out := append(append(append([]string(nil), rest[:to]...), moved), rest[to:]...)
	return out
}

func sectionIDs(sections []model.Section) []string {
	out := make([]string, len(sections))
	for i, section := range sections {
		out[i] = section.ID
	}
	return out
}

func fieldIDs(fields []model.Field) []string {
	out := make([]string, len(fields))
	for i, field := range fields {
		out[i] = field.ID
	}
	return out
}

func removeField(fields []model.Field, id string) []model.Field {
	out := fields[:0:0]
	for _, field := range fields {
		if field.ID != id {
			out = append(out, field)
		}
	}
	return out
}
