package submission

import (
	"strings"

	"github.com/goliatone/go-intake/pkg/model"
)

const defaultFileType = "application/octet-stream"

// collectAttachments flattens every files field into one ordered list,
// preserving field document order and the per-field upload order.
func collectAttachments(ordered []model.Field, answers model.AnswerMap) []model.Attachment {
	var out []model.Attachment
	for _, field := range ordered {
		if field.Type != model.FieldTypeFiles {
			continue
		}
		for _, attachment := range normalizeAttachments(answers[field.ID]) {
			if attachment.URL == "" {
				continue
			}
			if attachment.FileName == "" {
				attachment.FileName = lastPathSegment(attachment.URL)
			}
			if attachment.FileType == "" {
				attachment.FileType = defaultFileType
			}
			out = append(out, attachment)
		}
	}
	return out
}

// normalizeAttachments accepts the shapes a files answer can arrive in:
// typed descriptors, decoded-JSON maps, bare URL strings, or a single
// string (the legacy single-upload form).
func normalizeAttachments(value any) []model.Attachment {
	switch v := value.(type) {
	case nil:
		return nil
	case []model.Attachment:
		return v
	case model.Attachment:
		return []model.Attachment{v}
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []model.Attachment{{URL: v}}
	case []string:
		out := make([]model.Attachment, 0, len(v))
		for _, url := range v {
			if strings.TrimSpace(url) == "" {
				continue
			}
			out = append(out, model.Attachment{URL: url})
		}
		return out
	case []any:
		out := make([]model.Attachment, 0, len(v))
		for _, item := range v {
			if attachment, ok := attachmentFromAny(item); ok {
				out = append(out, attachment)
			}
		}
		return out
	case map[string]any:
		if attachment, ok := attachmentFromAny(v); ok {
			return []model.Attachment{attachment}
		}
		return nil
	default:
		return nil
	}
}

func attachmentFromAny(item any) (model.Attachment, bool) {
	switch v := item.(type) {
	case model.Attachment:
		return v, true
	case string:
		if strings.TrimSpace(v) == "" {
			return model.Attachment{}, false
		}
		return model.Attachment{URL: v}, true
	case map[string]any:
		attachment := model.Attachment{
			URL:      stringKey(v, "url"),
			FileName: stringKey(v, "fileName"),
			FileType: stringKey(v, "fileType"),
		}
		switch size := v["fileSize"].(type) {
		case float64:
			attachment.FileSize = int64(size)
		case int:
			attachment.FileSize = int64(size)
		case int64:
			attachment.FileSize = size
		}
		if attachment.URL == "" {
			return model.Attachment{}, false
		}
		return attachment, true
	default:
		return model.Attachment{}, false
	}
}

func stringKey(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func lastPathSegment(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	if trimmed == "" {
		return url
	}
	return trimmed
}
