// Package validation derives per-field validation rules from a form
// definition and applies them to an answer map. Failures are per-field and
// recoverable: callers block submission until the issues clear, nothing here
// ever panics or aborts. When a definition carries no fields at all the
// deriver degrades to a minimal built-in schema so submissions stay possible.
package validation

import "github.com/goliatone/go-intake/pkg/model"

// Kind identifies a rule and, symmetrically, the kind of issue the rule
// raises when an answer fails it.
type Kind string

const (
	KindRequired      Kind = "required"
	KindMinLength     Kind = "min_length"
	KindInvalidChoice Kind = "invalid_choice"
)

// Rule is one constraint attached to a field. Min carries the threshold for
// min_length rules and is zero otherwise.
type Rule struct {
	Kind Kind `json:"kind"`
	Min  int  `json:"min,omitempty"`
}

// Long-text answers need a little substance; a bare "unban me" does not
// give staff anything to act on.
const longTextMinLength = 10

// The fallback reason field demands more because it is the only free-text
// field left when a definition fails to load.
const fallbackReasonMinLength = 20

// Derive produces the rule set for each field keyed by field id. Optional
// fields accept their empty default, so they only receive membership rules.
// Fields with an unknown type are skipped, mirroring how rendering treats
// them. A nil or empty field list yields the built-in fallback schema.
func Derive(fields []model.Field) map[string][]Rule {
	if len(fields) == 0 {
		return FallbackRules()
	}

	rules := make(map[string][]Rule, len(fields))
	for _, field := range fields {
		if field.ID == "" || !model.KnownFieldType(field.Type) {
			continue
		}
		rules[field.ID] = fieldRules(field)
	}
	return rules
}

// FallbackRules is the degrade-gracefully schema used when a definition is
// malformed: only the reporter identity fields plus one generic reason
// field, so an appeal can still be filed with reduced structure.
func FallbackRules() map[string][]Rule {
	return map[string][]Rule{
		model.FieldIDReporter: {{Kind: KindRequired}},
		model.FieldIDContact:  {{Kind: KindRequired}},
		"reason":              {{Kind: KindRequired}, {Kind: KindMinLength, Min: fallbackReasonMinLength}},
	}
}

func fieldRules(field model.Field) []Rule {
	var rules []Rule
	if field.Required {
		rules = append(rules, Rule{Kind: KindRequired})
		if field.Type == model.FieldTypeLongText {
			rules = append(rules, Rule{Kind: KindMinLength, Min: longTextMinLength})
		}
	}
	switch field.Type {
	case model.FieldTypeDropdown, model.FieldTypeChoice, model.FieldTypeMultiChoice:
		rules = append(rules, Rule{Kind: KindInvalidChoice})
	}
	return rules
}
