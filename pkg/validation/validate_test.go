package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/model"
)

func requiredField(id string, t model.FieldType, options ...string) model.Field {
	return model.Field{ID: id, Type: t, Label: model.DefaultLabeler(id), Required: true, Options: options}
}

func TestDerivePerType(t *testing.T) {
	t.Parallel()

	fields := []model.Field{
		requiredField("name", model.FieldTypeShortText),
		requiredField("reason", model.FieldTypeLongText),
		requiredField("server", model.FieldTypeDropdown, "eu", "na"),
		requiredField("agree", model.FieldTypeToggle),
		{ID: "tags", Type: model.FieldTypeMultiChoice, Options: []string{"grief", "chat"}},
		{ID: "note", Type: model.FieldTypeShortText},
		{ID: "mystery", Type: "hologram", Required: true},
	}

	rules := Derive(fields)

	want := map[string][]Rule{
		"name":   {{Kind: KindRequired}},
		"reason": {{Kind: KindRequired}, {Kind: KindMinLength, Min: 10}},
		"server": {{Kind: KindRequired}, {Kind: KindInvalidChoice}},
		"agree":  {{Kind: KindRequired}},
		"tags":   {{Kind: KindInvalidChoice}},
		"note":   nil,
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Fatalf("Derive mismatch (-want +got):\n%s", diff)
	}
	if _, derived := rules["mystery"]; derived {
		t.Fatal("unknown field type must be skipped, not validated")
	}
}

func TestValidateLongTextMinLength(t *testing.T) {
	t.Parallel()

	fields := []model.Field{requiredField("reason", model.FieldTypeLongText)}

	res := Validate(fields, model.AnswerMap{"reason": "short"})
	if res.Valid {
		t.Fatal("expected failure for 5-character answer")
	}
	if res.Issues[0].Kind != KindMinLength || res.Issues[0].Min != 10 {
		t.Fatalf("unexpected issue: %+v", res.Issues[0])
	}

	res = Validate(fields, model.AnswerMap{"reason": "exactly ten"})
	if !res.Valid {
		t.Fatalf("expected 11-character answer to pass, got %+v", res.Issues)
	}
}

func TestValidateRequiredPerType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		field model.Field
		pass  any
		fail  any
	}{
		{"short text", requiredField("name", model.FieldTypeShortText), "Steve", "   "},
		{"dropdown", requiredField("server", model.FieldTypeDropdown, "eu", "na"), "eu", ""},
		{"toggle", requiredField("agree", model.FieldTypeToggle), true, false},
		{"multi choice", requiredField("tags", model.FieldTypeMultiChoice, "grief", "chat"), []string{"chat"}, []string{}},
		{"files list", requiredField("proof", model.FieldTypeFiles), []model.Attachment{{URL: "a.png"}}, nil},
		{"files legacy string", requiredField("proof", model.FieldTypeFiles), "https://img.example/a.png", ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fields := []model.Field{tc.field}
			if res := Validate(fields, model.AnswerMap{tc.field.ID: tc.pass}); !res.Valid {
				t.Fatalf("expected %v to pass, got %+v", tc.pass, res.Issues)
			}
			res := Validate(fields, model.AnswerMap{tc.field.ID: tc.fail})
			if res.Valid {
				t.Fatalf("expected %v to fail", tc.fail)
			}
			if res.Issues[0].Kind != KindRequired {
				t.Fatalf("expected required issue, got %+v", res.Issues[0])
			}
		})
	}
}

func TestValidateOptionalFieldsAcceptEmpty(t *testing.T) {
	t.Parallel()

	fields := []model.Field{
		{ID: "note", Type: model.FieldTypeLongText},
		{ID: "tags", Type: model.FieldTypeMultiChoice, Options: []string{"a"}},
	}

	res := Validate(fields, model.Defaults(fields))
	if !res.Valid {
		t.Fatalf("defaults must satisfy optional fields, got %+v", res.Issues)
	}
}

func TestValidateChoiceMembership(t *testing.T) {
	t.Parallel()

	fields := []model.Field{
		{ID: "server", Type: model.FieldTypeDropdown, Options: []string{"eu", "na"}},
		{ID: "tags", Type: model.FieldTypeMultiChoice, Options: []string{"grief", "chat"}},
	}

	res := Validate(fields, model.AnswerMap{"server": "asia", "tags": []string{"chat", "hacking"}})
	if res.Valid {
		t.Fatal("expected invalid choice issues")
	}
	if len(res.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", res.Issues)
	}
	for _, issue := range res.Issues {
		if issue.Kind != KindInvalidChoice {
			t.Fatalf("unexpected issue kind: %+v", issue)
		}
	}
}

func TestValidateFallsBackOnMalformedDefinition(t *testing.T) {
	t.Parallel()

	res := Validate(nil, model.AnswerMap{
		model.FieldIDReporter: "Steve",
		model.FieldIDContact:  "steve@example.com",
		"reason":              "too short",
	})
	if res.Valid {
		t.Fatal("expected fallback min length failure")
	}
	if res.Issues[0].Kind != KindMinLength || res.Issues[0].Min != 20 {
		t.Fatalf("unexpected issue: %+v", res.Issues[0])
	}

	res = Validate(nil, model.AnswerMap{
		model.FieldIDReporter: "Steve",
		model.FieldIDContact:  "steve@example.com",
		"reason":              "I have learned my lesson and it will not happen again",
	})
	if !res.Valid {
		t.Fatalf("expected fallback pass, got %+v", res.Issues)
	}
}
