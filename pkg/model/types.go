package model

import internalmodel "github.com/goliatone/go-intake/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeShortText   = internalmodel.FieldTypeShortText
	FieldTypeLongText    = internalmodel.FieldTypeLongText
	FieldTypeDropdown    = internalmodel.FieldTypeDropdown
	FieldTypeChoice      = internalmodel.FieldTypeChoice
	FieldTypeToggle      = internalmodel.FieldTypeToggle
	FieldTypeMultiChoice = internalmodel.FieldTypeMultiChoice
	FieldTypeFiles       = internalmodel.FieldTypeFiles
)

const (
	FieldIDReporter = internalmodel.FieldIDReporter
	FieldIDContact  = internalmodel.FieldIDContact
)

type Field = internalmodel.Field
type Section = internalmodel.Section
type FormDefinition = internalmodel.FormDefinition
type AnswerMap = internalmodel.AnswerMap
type Attachment = internalmodel.Attachment

// KnownFieldType reports whether the engine understands the supplied type.
func KnownFieldType(t FieldType) bool { return internalmodel.KnownFieldType(t) }

// IsSystemField reports whether the id names a fixed reporter identity field.
func IsSystemField(id string) bool { return internalmodel.IsSystemField(id) }

// Defaults seeds the empty answer for every field.
func Defaults(fields []Field) AnswerMap { return internalmodel.Defaults(fields) }

// Reseed merges defaults into an existing answer map, keeping answered and
// system fields.
func Reseed(fields []Field, existing AnswerMap) AnswerMap {
	return internalmodel.Reseed(fields, existing)
}

// DefaultLabeler derives a presentable label from a field id.
func DefaultLabeler(id string) string { return internalmodel.DefaultLabeler(id) }
