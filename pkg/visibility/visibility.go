// Package visibility computes which sections and fields of a form are
// currently shown for a given answer map. Resolution is pure and carries no
// state between calls, so callers re-resolve after every answer mutation
// and the visible set is never stale relative to the latest answers.
package visibility

import "github.com/goliatone/go-intake/pkg/model"

// Result is the visible set for one (definition, answers) pair. The maps
// hold an entry per visible id; absent means hidden.
type Result struct {
	Sections map[string]bool
	Fields   map[string]bool
}

// Section reports whether the section id resolved visible.
func (r Result) Section(id string) bool { return r.Sections[id] }

// Field reports whether the field id resolved visible.
func (r Result) Field(id string) bool { return r.Fields[id] }

// Resolve computes section and field visibility in a single non-recursive
// pass. Section visibility starts from the declarative rule (hide-by-default
// plus any show-if condition), then an override pass forces visible every
// section targeted by a field whose current answer appears in its
// OptionSections map. The override is an OR: once a navigation trigger is
// active there is no rule that hides the section again, a one-way reveal
// that only a form reset undoes. Fields inherit their section's visibility;
// fields without a section are always visible.
func Resolve(def model.FormDefinition, answers model.AnswerMap) Result {
	result := Result{
		Sections: make(map[string]bool, len(def.Sections)),
		Fields:   make(map[string]bool, len(def.Fields)),
	}

	for _, section := range def.Sections {
		if sectionShown(section, answers) {
			result.Sections[section.ID] = true
		}
	}

	// Override pass: active navigation triggers force their target visible
	// regardless of the declarative outcome.
	for _, field := range def.Fields {
		if len(field.OptionSections) == 0 {
			continue
		}
		answer, ok := stringAnswer(answers[field.ID])
		if !ok {
			continue
		}
		target, ok := field.OptionSections[answer]
		if !ok {
			continue
		}
		if _, exists := def.SectionByID(target); exists {
			result.Sections[target] = true
		}
	}

	for _, field := range def.Fields {
		if field.SectionID == "" || result.Sections[field.SectionID] {
			result.Fields[field.ID] = true
		}
	}

	return result
}

func sectionShown(section model.Section, answers model.AnswerMap) bool {
	if section.ShowIfField != "" {
		answer, _ := stringAnswer(answers[section.ShowIfField])
		if len(section.ShowIfValues) > 0 {
			for _, candidate := range section.ShowIfValues {
				if answer == candidate {
					return true
				}
			}
			return false
		}
		if section.ShowIfValue != "" {
			return answer == section.ShowIfValue
		}
	}
	return !section.HideByDefault
}

// stringAnswer extracts the comparable form of an answer. Only string
// answers participate in show-if and navigation matching; booleans, lists,
// and attachments never equal an option value.
func stringAnswer(value any) (string, bool) {
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
