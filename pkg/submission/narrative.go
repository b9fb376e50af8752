package submission

import (
	"strings"

	"github.com/goliatone/go-intake/pkg/model"
)

// buildNarrative renders the answers as labelled markdown blocks. Strings
// and lists only appear when non-empty after trimming; toggles always
// appear, rendered Yes/No, so staff see explicit "No" answers. Downstream
// consumers depend on that asymmetry. Unknown field types are skipped.
func buildNarrative(ordered []model.Field, answers model.AnswerMap) string {
	var out strings.Builder
	for _, field := range ordered {
		if !model.KnownFieldType(field.Type) {
			continue
		}
		value, answered := answers[field.ID]
		if !answered {
			continue
		}

		if field.Type == model.FieldTypeFiles {
			names := attachmentNames(value)
			if len(names) == 0 {
				continue
			}
			writeBlock(&out, field.Label, bulletList(names))
			continue
		}

		switch v := value.(type) {
		case bool:
			writeBlock(&out, field.Label, yesNo(v))
		case string:
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				writeBlock(&out, field.Label, trimmed)
			}
		default:
			if items := stringItems(value); len(items) > 0 {
				writeBlock(&out, field.Label, bulletList(items))
			}
		}
	}
	return out.String()
}

func writeBlock(out *strings.Builder, label, body string) {
	out.WriteString("**")
	out.WriteString(label)
	out.WriteString(":**\n")
	out.WriteString(body)
	out.WriteString("\n\n")
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}

// attachmentNames lists the display name of each uploaded file: the
// descriptor's fileName, else the last path segment of its URL, else the
// raw string itself.
func attachmentNames(value any) []string {
	attachments := normalizeAttachments(value)
	names := make([]string, 0, len(attachments))
	for _, attachment := range attachments {
		switch {
		case attachment.FileName != "":
			names = append(names, attachment.FileName)
		case attachment.URL != "":
			names = append(names, lastPathSegment(attachment.URL))
		}
	}
	return names
}
