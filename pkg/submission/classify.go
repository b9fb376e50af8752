package submission

import (
	"strings"

	"github.com/goliatone/go-intake/pkg/model"
)

// Role classification is a fixed heuristic, not configuration: intake forms
// are authored by moderators who name their fields freely, and the ticket
// backend still needs to know which answer is "the reason" and which is
// "the evidence".
var (
	reasonIDs       = []string{"reason", "appeal_reason", "why_appeal", "explanation"}
	evidenceIDs     = []string{"evidence", "proof", "screenshots", "links"}
	reasonMarkers   = []string{"reason", "why"}
	evidenceMarkers = []string{"evidence", "proof"}
)

// Classify picks the reason and evidence fields from the supplied fields,
// which must already be in definition order. Exact id matches
// (case-insensitive) take precedence over label-substring matches; within a
// tier, the first field in definition order wins, and a field can hold at
// most one role.
func Classify(ordered []model.Field) (reasonID, evidenceID string) {
	reasonID = classifyRole(ordered, reasonIDs, reasonMarkers, "")
	evidenceID = classifyRole(ordered, evidenceIDs, evidenceMarkers, reasonID)
	return reasonID, evidenceID
}

func classifyRole(ordered []model.Field, ids, markers []string, taken string) string {
	for _, field := range ordered {
		if field.ID == taken {
			continue
		}
		if matchesAny(strings.ToLower(field.ID), ids) {
			return field.ID
		}
	}
	for _, field := range ordered {
		if field.ID == taken {
			continue
		}
		label := strings.ToLower(field.Label)
		for _, marker := range markers {
			if strings.Contains(label, marker) {
				return field.ID
			}
		}
	}
	return ""
}

func matchesAny(candidate string, ids []string) bool {
	for _, id := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
