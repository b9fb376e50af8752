package model

import (
	"errors"
	"fmt"
	"sort"
)

// FieldType is the enum of answerable input kinds a form can declare.
type FieldType string

const (
	FieldTypeShortText   FieldType = "short_text"
	FieldTypeLongText    FieldType = "long_text"
	FieldTypeDropdown    FieldType = "dropdown"
	FieldTypeChoice      FieldType = "choice"
	FieldTypeToggle      FieldType = "toggle"
	FieldTypeMultiChoice FieldType = "multi_choice"
	FieldTypeFiles       FieldType = "files"
)

// KnownFieldType reports whether the supplied type is one the engine
// understands. Unknown types are skipped by validation and rendering rather
// than rejected, so persisted definitions from newer builders keep loading.
func KnownFieldType(t FieldType) bool {
	switch t {
	case FieldTypeShortText, FieldTypeLongText, FieldTypeDropdown,
		FieldTypeChoice, FieldTypeToggle, FieldTypeMultiChoice, FieldTypeFiles:
		return true
	default:
		return false
	}
}

// System field ids seeded outside the configurable form body. They survive
// definition reloads and are excluded from the residual submission data.
const (
	FieldIDReporter = "username"
	FieldIDContact  = "email"
)

// IsSystemField reports whether the id belongs to the fixed reporter
// identity fields rather than a builder-authored field.
func IsSystemField(id string) bool {
	return id == FieldIDReporter || id == FieldIDContact
}

// Field models one answerable item inside a form definition. Order positions
// the field among siblings sharing the same SectionID (or among unassigned
// fields when SectionID is empty).
type Field struct {
	ID          string    `json:"id" yaml:"id"`
	Type        FieldType `json:"type" yaml:"type"`
	Label       string    `json:"label" yaml:"label"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Order       int       `json:"order" yaml:"order"`
	SectionID   string    `json:"sectionId,omitempty" yaml:"sectionId,omitempty"`
	// OptionSections maps an option value to the id of a section that is
	// forced visible while that option is the field's answer.
	OptionSections map[string]string `json:"optionSections,omitempty" yaml:"optionSections,omitempty"`
}

// Section is a named, orderable group of fields with conditional display.
// When HideByDefault is set the section stays hidden unless a show-if rule
// matches or a field's OptionSections entry targets it.
type Section struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Order         int      `json:"order" yaml:"order"`
	HideByDefault bool     `json:"hideByDefault,omitempty" yaml:"hideByDefault,omitempty"`
	ShowIfField   string   `json:"showIfField,omitempty" yaml:"showIfField,omitempty"`
	ShowIfValue   string   `json:"showIfValue,omitempty" yaml:"showIfValue,omitempty"`
	ShowIfValues  []string `json:"showIfValues,omitempty" yaml:"showIfValues,omitempty"`
}

// FormDefinition is the persisted pair of fields and sections describing one
// intake form.
type FormDefinition struct {
	Fields   []Field   `json:"fields" yaml:"fields"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// AnswerMap holds the values a respondent has entered, keyed by field id.
// Value shapes depend on the field type: string, bool, []string, or a list
// of attachment descriptors (possibly as decoded JSON maps).
type AnswerMap map[string]any

// Attachment describes an uploaded file. The engine treats it as opaque:
// URLs are never dereferenced or validated for reachability.
type Attachment struct {
	URL      string `json:"url" yaml:"url"`
	FileName string `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	FileType string `json:"fileType,omitempty" yaml:"fileType,omitempty"`
	FileSize int64  `json:"fileSize,omitempty" yaml:"fileSize,omitempty"`
}

// FieldByID returns the field with the given id.
func (d FormDefinition) FieldByID(id string) (Field, bool) {
	for _, field := range d.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// SectionByID returns the section with the given id.
func (d FormDefinition) SectionByID(id string) (Section, bool) {
	for _, section := range d.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}

// SectionsInOrder returns the sections sorted by their order index.
func (d FormDefinition) SectionsInOrder() []Section {
	out := append([]Section(nil), d.Sections...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// FieldsInSection returns the fields belonging to the named section sorted
// by order. An empty section id selects the unassigned bucket.
func (d FormDefinition) FieldsInSection(sectionID string) []Field {
	var out []Field
	for _, field := range d.Fields {
		if field.SectionID == sectionID {
			out = append(out, field)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// FieldsInDocumentOrder returns every field in the order a respondent sees
// them: unassigned fields first, then each section's fields, sections by
// their own order.
func (d FormDefinition) FieldsInDocumentOrder() []Field {
	out := d.FieldsInSection("")
	for _, section := range d.SectionsInOrder() {
		out = append(out, d.FieldsInSection(section.ID)...)
	}
	return out
}

// Clone returns a deep copy safe to mutate independently.
func (d FormDefinition) Clone() FormDefinition {
	out := FormDefinition{
		Fields:   make([]Field, len(d.Fields)),
		Sections: append([]Section(nil), d.Sections...),
	}
	for i, field := range d.Fields {
		clone := field
		clone.Options = append([]string(nil), field.Options...)
		if field.OptionSections != nil {
			clone.OptionSections = make(map[string]string, len(field.OptionSections))
			for option, sectionID := range field.OptionSections {
				clone.OptionSections[option] = sectionID
			}
		}
		out.Fields[i] = clone
	}
	for i, section := range d.Sections {
		out.Sections[i].ShowIfValues = append([]string(nil), section.ShowIfValues...)
	}
	return out
}

var (
	errEmptyFieldID   = errors.New("form model: field id is required")
	errEmptySectionID = errors.New("form model: section id is required")
)

// Check verifies the structural invariants every persisted definition must
// satisfy: unique ids, resolvable section references, and a contiguous
// 0..n-1 order sequence inside every sibling scope.
func (d FormDefinition) Check() error {
	sectionIDs := make(map[string]struct{}, len(d.Sections))
	for _, section := range d.Sections {
		if section.ID == "" {
			return errEmptySectionID
		}
		if _, dup := sectionIDs[section.ID]; dup {
			return fmt.Errorf("form model: duplicate section id %q", section.ID)
		}
		sectionIDs[section.ID] = struct{}{}
	}

	fieldIDs := make(map[string]struct{}, len(d.Fields))
	for _, field := range d.Fields {
		if field.ID == "" {
			return errEmptyFieldID
		}
		if _, dup := fieldIDs[field.ID]; dup {
			return fmt.Errorf("form model: duplicate field id %q", field.ID)
		}
		fieldIDs[field.ID] = struct{}{}

		if field.SectionID != "" {
			if _, ok := sectionIDs[field.SectionID]; !ok {
				return fmt.Errorf("form model: field %q references unknown section %q", field.ID, field.SectionID)
			}
		}
	}

	if err := checkContiguous("sections", sectionOrders(d.Sections)); err != nil {
		return err
	}
	for _, scope := range fieldScopes(d) {
		if err := checkContiguous("fields of "+scopeName(scope.sectionID), fieldOrders(scope.fields)); err != nil {
			return err
		}
	}
	return nil
}

type fieldScope struct {
	sectionID string
	fields    []Field
}

func fieldScopes(d FormDefinition) []fieldScope {
	scopes := []fieldScope{{sectionID: "", fields: d.FieldsInSection("")}}
	for _, section := range d.SectionsInOrder() {
		scopes = append(scopes, fieldScope{sectionID: section.ID, fields: d.FieldsInSection(section.ID)})
	}
	return scopes
}

func scopeName(sectionID string) string {
	if sectionID == "" {
		return "unassigned scope"
	}
	return "section " + sectionID
}

func sectionOrders(sections []Section) []int {
	out := make([]int, len(sections))
	for i, section := range sections {
		out[i] = section.Order
	}
	return out
}

func fieldOrders(fields []Field) []int {
	out := make([]int, len(fields))
	for i, field := range fields {
		out[i] = field.Order
	}
	return out
}

func checkContiguous(scope string, orders []int) error {
	sorted := append([]int(nil), orders...)
	sort.Ints(sorted)
	for i, order := range sorted {
		if order != i {
			return fmt.Errorf("form model: %s: order values are not contiguous from 0 (got %v)", scope, orders)
		}
	}
	return nil
}
