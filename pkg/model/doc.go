// Package model re-exports the intake form model: fields, sections, the
// answer map, and attachment descriptors. The concrete types live in
// internal/model; engine packages and callers import this package so the
// internal layout can evolve without breaking the public surface. Everything
// here is plain data: visibility, validation, ordering, and submission
// assembly live in their own packages and take the definition and answers
// as explicit parameters.
package model
