// Package testsupport holds fixtures shared by tests across the module.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-intake/pkg/definition"
	"github.com/goliatone/go-intake/pkg/model"
)

// BanAppealDocument is a complete persisted definition in the shape the
// config store serves: a visible details section plus a ban section that
// only appears for ban appeals.
const BanAppealDocument = `{
  "sections": [
    {"id": "details", "title": "Appeal Details", "order": 0},
    {"id": "ban-info", "title": "Ban Information", "order": 1, "hideByDefault": true, "showIfField": "punishment", "showIfValue": "ban"}
  ],
  "fields": [
    {"id": "punishment", "type": "dropdown", "label": "Punishment Type", "required": true, "options": ["ban", "mute", "warning"], "order": 0},
    {"id": "reason", "type": "long_text", "label": "Why should we lift it?", "required": true, "order": 0, "sectionId": "details"},
    {"id": "rules_read", "type": "toggle", "label": "Have you read the rules?", "required": true, "order": 1, "sectionId": "details"},
    {"id": "screenshots", "type": "files", "label": "Screenshots", "order": 2, "sectionId": "details"},
    {"id": "ban_id", "type": "short_text", "label": "Ban ID", "order": 0, "sectionId": "ban-info"}
  ]
}`

// BanAppealDefinition parses BanAppealDocument, failing the test on error.
func BanAppealDefinition(t *testing.T) model.FormDefinition {
	t.Helper()

	def, err := definition.Parse([]byte(BanAppealDocument))
	if err != nil {
		t.Fatalf("testsupport: parse ban appeal fixture: %v", err)
	}
	return def
}

// CompletedBanAppeal returns answers that satisfy every rule of the ban
// appeal fixture.
func CompletedBanAppeal() model.AnswerMap {
	return model.AnswerMap{
		"punishment":  "ban",
		"reason":      "I was banned for griefing but it was my little brother on my account",
		"rules_read":  true,
		"screenshots": []model.Attachment{{URL: "https://cdn.example/uploads/base.png"}},
		"ban_id":      "B-1042",
	}
}
