package intake

import (
	"testing"

	"github.com/goliatone/go-intake/pkg/testsupport"
)

// End-to-end pass over one form session: load, seed, resolve, validate,
// transform.
func TestFillOutFlow(t *testing.T) {
	t.Parallel()

	def, err := ParseDefinition([]byte(testsupport.BanAppealDocument))
	if err != nil {
		t.Fatalf("ParseDefinition: %v", err)
	}

	answers := Defaults(def.Fields)
	if Resolve(def, answers).Section("ban-info") {
		t.Fatal("ban-info must start hidden")
	}

	answers["punishment"] = "ban"
	if !Resolve(def, answers).Section("ban-info") {
		t.Fatal("ban-info must appear once punishment is ban")
	}

	if res := Validate(def, answers); res.Valid {
		t.Fatal("defaults must not satisfy the required fields")
	}

	for id, value := range testsupport.CompletedBanAppeal() {
		answers[id] = value
	}
	if res := Validate(def, answers); !res.Valid {
		t.Fatalf("completed answers must validate, got %+v", res.Issues)
	}

	sub := Transform(def, answers)
	if sub.Reason == "" {
		t.Fatal("reason field was not classified")
	}
	if len(sub.Attachments) != 1 || sub.Attachments[0].FileName != "base.png" {
		t.Fatalf("attachments = %+v", sub.Attachments)
	}
}

func TestBuilderFacade(t *testing.T) {
	t.Parallel()

	def := testsupport.BanAppealDefinition(t)
	b := NewBuilder(&def)

	if err := b.DeleteSection("ban-info"); err != nil {
		t.Fatalf("DeleteSection: %v", err)
	}
	if _, ok := def.FieldByID("ban_id"); ok {
		t.Fatal("cascade delete did not remove ban_id")
	}
	if err := def.Check(); err != nil {
		t.Fatalf("invariant broken: %v", err)
	}
}
