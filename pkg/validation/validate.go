package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-intake/pkg/model"
)

// Issue is one per-field validation failure.
type Issue struct {
	FieldID string `json:"field"`
	Kind    Kind   `json:"kind"`
	Min     int    `json:"min,omitempty"`
	Message string `json:"message"`
}

// Result captures a validation pass over an answer map.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Validate checks answers against the rules derived from fields. Issues are
// reported in field order so callers can surface them deterministically.
// With no fields the fallback schema applies and only the reporter identity
// plus the generic reason answer are checked.
func Validate(fields []model.Field, answers model.AnswerMap) Result {
	if len(fields) == 0 {
		return validateFallback(answers)
	}

	rules := Derive(fields)
	var issues []Issue
	for _, field := range fields {
		for _, rule := range rules[field.ID] {
			if issue, ok := applyRule(field, rule, answers[field.ID]); ok {
				issues = append(issues, issue)
			}
		}
	}
	return Result{Valid: len(issues) == 0, Issues: issues}
}

func validateFallback(answers model.AnswerMap) Result {
	var issues []Issue
	for _, id := range []string{model.FieldIDReporter, model.FieldIDContact, "reason"} {
		field := model.Field{ID: id, Type: model.FieldTypeShortText, Label: model.DefaultLabeler(id), Required: true}
		if id == "reason" {
			field.Type = model.FieldTypeLongText
		}
		for _, rule := range FallbackRules()[id] {
			if issue, ok := applyRule(field, rule, answers[id]); ok {
				issues = append(issues, issue)
			}
		}
	}
	return Result{Valid: len(issues) == 0, Issues: issues}
}

func applyRule(field model.Field, rule Rule, value any) (Issue, bool) {
	label := field.Label
	if label == "" {
		label = field.ID
	}

	switch rule.Kind {
	case KindRequired:
		if emptyValue(value) {
			return Issue{
				FieldID: field.ID,
				Kind:    KindRequired,
				Message: fmt.Sprintf("%s is required", label),
			}, true
		}
	case KindMinLength:
		text, ok := value.(string)
		if !ok {
			return Issue{}, false
		}
		// Optional long-text fields accept emptiness; the required rule
		// already covers the empty case for mandatory ones.
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return Issue{}, false
		}
		if utf8.RuneCountInString(trimmed) < rule.Min {
			return Issue{
				FieldID: field.ID,
				Kind:    KindMinLength,
				Min:     rule.Min,
				Message: fmt.Sprintf("%s must be at least %d characters", label, rule.Min),
			}, true
		}
	case KindInvalidChoice:
		for _, selected := range selectedOptions(value) {
			if !containsOption(field.Options, selected) {
				return Issue{
					FieldID: field.ID,
					Kind:    KindInvalidChoice,
					Message: fmt.Sprintf("%q is not an available option for %s", selected, label),
				}, true
			}
		}
	}
	return Issue{}, false
}

// emptyValue reports whether the answer still holds a type's default. A
// false toggle counts as empty so required toggles must be switched on.
func emptyValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case bool:
		return !v
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case []model.Attachment:
		return len(v) == 0
	default:
		return false
	}
}

func selectedOptions(value any) []string {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func containsOption(options []string, candidate string) bool {
	for _, option := range options {
		if option == candidate {
			return true
		}
	}
	return false
}
