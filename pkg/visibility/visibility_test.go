package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/model"
)

func conditionalDefinition() model.FormDefinition {
	return model.FormDefinition{
		Sections: []model.Section{
			{ID: "s1", Title: "General", Order: 0},
			{ID: "s2", Title: "Ban Details", Order: 1, ShowIfField: "choice", ShowIfValue: "B"},
			{ID: "s3", Title: "Escalation", Order: 2, HideByDefault: true},
		},
		Fields: []model.Field{
			{ID: "choice", Type: model.FieldTypeDropdown, Options: []string{"A", "B"}, Order: 0},
			{ID: "opt", Type: model.FieldTypeDropdown, Options: []string{"X", "Y"}, Order: 1, OptionSections: map[string]string{"X": "s3"}},
			{ID: "general_note", Type: model.FieldTypeShortText, Order: 0, SectionID: "s1"},
			{ID: "ban_id", Type: model.FieldTypeShortText, Order: 0, SectionID: "s2"},
			{ID: "escalate_to", Type: model.FieldTypeShortText, Order: 0, SectionID: "s3"},
		},
	}
}

func TestResolveShowIfValue(t *testing.T) {
	t.Parallel()

	def := conditionalDefinition()

	res := Resolve(def, model.AnswerMap{"choice": "A"})
	if res.Section("s2") {
		t.Fatal("s2 must be hidden while choice is A")
	}
	if res.Field("ban_id") {
		t.Fatal("fields of a hidden section must be hidden")
	}

	res = Resolve(def, model.AnswerMap{"choice": "B"})
	if !res.Section("s2") {
		t.Fatal("s2 must be visible once choice is B")
	}
	if !res.Field("ban_id") {
		t.Fatal("fields of a visible section must be visible")
	}
}

func TestResolveShowIfValues(t *testing.T) {
	t.Parallel()

	def := conditionalDefinition()
	def.Sections[1].ShowIfValue = ""
	def.Sections[1].ShowIfValues = []string{"A", "B"}

	for _, answer := range []string{"A", "B"} {
		if !Resolve(def, model.AnswerMap{"choice": answer}).Section("s2") {
			t.Fatalf("s2 must be visible for answer %q", answer)
		}
	}
	if Resolve(def, model.AnswerMap{"choice": "C"}).Section("s2") {
		t.Fatal("s2 must stay hidden for an unlisted answer")
	}
}

func TestResolveNavigationOverride(t *testing.T) {
	t.Parallel()

	def := conditionalDefinition()

	res := Resolve(def, model.AnswerMap{})
	if res.Section("s3") {
		t.Fatal("hide-by-default section must start hidden")
	}

	res = Resolve(def, model.AnswerMap{"opt": "X"})
	if !res.Section("s3") {
		t.Fatal("optionSections trigger must force s3 visible")
	}
	if !res.Field("escalate_to") {
		t.Fatal("fields of the forced section must be visible")
	}

	// Triggers targeting unknown sections are ignored.
	def.Fields[1].OptionSections["X"] = "nope"
	if got := Resolve(def, model.AnswerMap{"opt": "X"}); got.Section("nope") {
		t.Fatal("unknown section target must not appear in the result")
	}
}

func TestResolveOverrideBeatsShowIfMismatch(t *testing.T) {
	t.Parallel()

	def := conditionalDefinition()
	def.Fields[1].OptionSections = map[string]string{"X": "s2"}

	// showIf says hidden (choice != B) but the navigation trigger wins.
	res := Resolve(def, model.AnswerMap{"choice": "A", "opt": "X"})
	if !res.Section("s2") {
		t.Fatal("navigation trigger must override the show-if outcome")
	}
}

func TestResolveUnsectionedFieldsAlwaysVisible(t *testing.T) {
	t.Parallel()

	res := Resolve(conditionalDefinition(), model.AnswerMap{})
	for _, id := range []string{"choice", "opt"} {
		if !res.Field(id) {
			t.Fatalf("unsectioned field %q must always be visible", id)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	def := conditionalDefinition()
	answers := model.AnswerMap{"choice": "B", "opt": "X"}

	first := Resolve(def, answers)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, Resolve(def, answers)); diff != "" {
			t.Fatalf("resolution differs across calls (-first +again):\n%s", diff)
		}
	}
}

func TestResolveNonStringAnswersNeverMatch(t *testing.T) {
	t.Parallel()

	def := conditionalDefinition()
	def.Sections[1].ShowIfValue = "true"

	if Resolve(def, model.AnswerMap{"choice": true}).Section("s2") {
		t.Fatal("boolean answers must not match string show-if values")
	}
}
