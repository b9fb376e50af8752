// Package submission turns a form definition plus a completed answer map
// into the structured record handed to the ticket backend: a markdown-ish
// narrative, the classified reason and evidence answers, a flattened
// attachment list, the residual additional data, and a field label map.
// Transform is idempotent and performs no I/O; attachment URLs pass through
// opaquely and are never fetched.
package submission

import (
	"strings"

	"github.com/goliatone/go-intake/pkg/model"
)

// Submission is the transformer output. AdditionalData holds the answers
// that were neither system fields nor classified into a role.
type Submission struct {
	Narrative      string             `json:"narrative,omitempty"`
	Reason         string             `json:"reason,omitempty"`
	Evidence       string             `json:"evidence,omitempty"`
	AdditionalData map[string]any     `json:"additionalData,omitempty"`
	FieldLabels    map[string]string  `json:"fieldLabels,omitempty"`
	Attachments    []model.Attachment `json:"attachments,omitempty"`
}

// Transform assembles the submission record. Fields are visited in document
// order (unassigned first, then sections by order) so the narrative and the
// attachment list read the way the respondent saw the form.
func Transform(def model.FormDefinition, answers model.AnswerMap) Submission {
	ordered := def.FieldsInDocumentOrder()

	sub := Submission{
		Narrative:   buildNarrative(ordered, answers),
		FieldLabels: fieldLabels(def.Fields),
		Attachments: collectAttachments(ordered, answers),
	}

	reasonID, evidenceID := Classify(ordered)
	if reasonID != "" {
		sub.Reason = answerText(answers[reasonID])
	}
	if evidenceID != "" {
		sub.Evidence = answerText(answers[evidenceID])
	}

	additional := make(map[string]any)
	for _, field := range def.Fields {
		if field.ID == reasonID || field.ID == evidenceID || model.IsSystemField(field.ID) {
			continue
		}
		if value, answered := answers[field.ID]; answered {
			additional[field.ID] = value
		}
	}
	if len(additional) > 0 {
		sub.AdditionalData = additional
	}
	return sub
}

func fieldLabels(fields []model.Field) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	labels := make(map[string]string, len(fields))
	for _, field := range fields {
		labels[field.ID] = field.Label
	}
	return labels
}

// answerText renders a single answer the way the narrative does, minus the
// label block.
func answerText(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case bool:
		return yesNo(v)
	default:
		if items := stringItems(value); len(items) > 0 {
			return strings.Join(items, ", ")
		}
		return ""
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func stringItems(value any) []string {
	switch v := value.(type) {
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
