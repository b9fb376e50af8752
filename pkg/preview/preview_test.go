package preview

import (
	"strings"
	"testing"

	"github.com/goliatone/go-intake/pkg/model"
	"github.com/goliatone/go-intake/pkg/submission"
)

func sampleSubmission() submission.Submission {
	return submission.Submission{
		Narrative: "**Username:**\nSteve\n\n",
		Reason:    "I promise to stop griefing",
		Evidence:  "https://youtu.be/x",
		AdditionalData: map[string]any{
			"server": "survival",
			"tags":   []string{"grief", "chat"},
		},
		FieldLabels: map[string]string{"server": "Server", "tags": "Categories"},
		Attachments: []model.Attachment{
			{URL: "https://cdn.example/a.png", FileName: "a.png", FileType: "image/png"},
		},
	}
}

func TestRenderContainsSections(t *testing.T) {
	t.Parallel()

	renderer, err := New(WithTitle("Ban Appeal"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	html, err := renderer.Render(sampleSubmission())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(html)
	for _, want := range []string{
		"<h1>Ban Appeal</h1>",
		"I promise to stop griefing",
		"https://youtu.be/x",
		"<dt>Categories</dt>",
		"<dd>grief, chat</dd>",
		`<a href="https://cdn.example/a.png"`,
		"a.png",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	t.Parallel()

	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	html, err := renderer.Render(submission.Submission{Narrative: "**X:**\nY\n\n"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(html)
	for _, absent := range []string{"Reason", "Evidence", "Additional data", "Attachments"} {
		if strings.Contains(out, absent) {
			t.Fatalf("output should omit %q when empty:\n%s", absent, out)
		}
	}
	if !strings.Contains(out, "Full answers") {
		t.Fatalf("narrative section missing:\n%s", out)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	renderer, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sub := sampleSubmission()
	first, err := renderer.Render(sub)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := renderer.Render(sub)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if string(first) != string(again) {
			t.Fatal("render output differs across calls")
		}
	}
}
