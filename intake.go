// Package intake is the engine behind configurable intake forms: appeal and
// support-ticket forms that moderators assemble from sections and typed
// fields, respondents fill out interactively, and a ticket backend receives
// as structured submissions. The root package re-exports the model and
// fronts the engine's entry points; the heavy lifting lives in pkg/builder
// (ordering), pkg/validation (derived rules), pkg/visibility (conditional
// display), pkg/submission (payload assembly), pkg/definition (codec and
// store boundary), and pkg/openapi (definition import).
package intake

import (
	"github.com/goliatone/go-intake/pkg/builder"
	"github.com/goliatone/go-intake/pkg/definition"
	"github.com/goliatone/go-intake/pkg/model"
	"github.com/goliatone/go-intake/pkg/submission"
	"github.com/goliatone/go-intake/pkg/validation"
	"github.com/goliatone/go-intake/pkg/visibility"
)

// Core model types, re-exported for callers that only need the engine's
// surface.
type Field = model.Field
type Section = model.Section
type FormDefinition = model.FormDefinition
type AnswerMap = model.AnswerMap
type Attachment = model.Attachment

// Submission is the transformer output handed to the ticket backend.
type Submission = submission.Submission

// ValidationResult reports the outcome of validating an answer map.
type ValidationResult = validation.Result

// VisibilityResult is the visible section and field set for one answer map.
type VisibilityResult = visibility.Result

// Store is the external config-store collaborator for persisted
// definitions.
type Store = definition.Store

// Defaults seeds the empty answer for every field. Call it once per form
// load; use Reseed when the definition changes mid-session.
func Defaults(fields []Field) AnswerMap { return model.Defaults(fields) }

// Reseed merges defaults into existing answers without clobbering anything
// already answered.
func Reseed(fields []Field, existing AnswerMap) AnswerMap {
	return model.Reseed(fields, existing)
}

// Validate checks answers against the rules derived from the definition's
// fields.
func Validate(def FormDefinition, answers AnswerMap) ValidationResult {
	return validation.Validate(def.Fields, answers)
}

// Resolve computes the visible sections and fields for the current answers.
// Call it after every answer mutation, before the next render.
func Resolve(def FormDefinition, answers AnswerMap) VisibilityResult {
	return visibility.Resolve(def, answers)
}

// Transform assembles the submission payload from the final answers.
func Transform(def FormDefinition, answers AnswerMap) Submission {
	return submission.Transform(def, answers)
}

// ParseDefinition decodes and normalizes a persisted JSON or YAML
// definition document.
func ParseDefinition(data []byte) (FormDefinition, error) {
	return definition.Parse(data)
}

// NewBuilder wraps a definition with the form-builder mutation operations.
func NewBuilder(def *FormDefinition) *builder.Builder {
	return builder.New(def)
}
