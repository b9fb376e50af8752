package model

// Defaults seeds an answer map with the empty value for every field:
// toggles start false, multi-choice fields start with no selections, and
// every other type starts as the empty string.
func Defaults(fields []Field) AnswerMap {
	answers := make(AnswerMap, len(fields))
	for _, field := range fields {
		if field.ID == "" {
			continue
		}
		answers[field.ID] = defaultValue(field.Type)
	}
	return answers
}

// Reseed merges defaults for the supplied fields into an existing answer
// map without clobbering anything already answered. Entries for system
// fields survive even when the reloaded definition no longer declares them,
// so the reporter identity is never lost across definition changes.
func Reseed(fields []Field, existing AnswerMap) AnswerMap {
	answers := Defaults(fields)
	for id, value := range existing {
		if _, declared := answers[id]; declared || IsSystemField(id) {
			answers[id] = value
		}
	}
	return answers
}

func defaultValue(t FieldType) any {
	switch t {
	case FieldTypeToggle:
		return false
	case FieldTypeMultiChoice:
		return []string{}
	default:
		return ""
	}
}
