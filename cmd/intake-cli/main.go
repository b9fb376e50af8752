// Command intake-cli fills out an intake form in the terminal: it loads a
// definition file, prompts for every visible field, re-resolving visibility
// after each answer, validates the result, and prints the submission
// payload as JSON. It exists for trying out definitions without the web
// surface; the ticket backend accepts the same payload either way.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-intake/pkg/definition"
	"github.com/goliatone/go-intake/pkg/model"
	"github.com/goliatone/go-intake/pkg/submission"
	"github.com/goliatone/go-intake/pkg/validation"
	"github.com/goliatone/go-intake/pkg/visibility"
)

func main() {
	defPath := flag.String("definition", "form.json", "form definition file (JSON or YAML)")
	output := flag.String("output", "", "output file for the submission payload (stdout if empty)")
	pretty := flag.Bool("pretty", true, "indent the submission JSON")
	flag.Parse()

	data, err := os.ReadFile(*defPath)
	if err != nil {
		log.Fatalf("read definition: %v", err)
	}
	def, err := definition.Parse(data)
	if err != nil {
		log.Fatalf("parse definition: %v", err)
	}

	answers, err := fillOut(def)
	if err != nil {
		log.Fatalf("fill out form: %v", err)
	}

	if result := validation.Validate(visibleFields(def, answers), answers); !result.Valid {
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "  - %s\n", issue.Message)
		}
		log.Fatal("submission blocked by validation issues")
	}

	payload := submission.Transform(def, answers)
	var encoded []byte
	if *pretty {
		encoded, err = json.MarshalIndent(payload, "", "  ")
	} else {
		encoded, err = json.Marshal(payload)
	}
	if err != nil {
		log.Fatalf("encode submission: %v", err)
	}
	encoded = append(encoded, '\n')

	if *output != "" {
		if err := os.WriteFile(*output, encoded, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Submission written to %s\n", *output)
		return
	}
	os.Stdout.Write(encoded)
}

// fillOut walks the form in document order, asking only fields that are
// visible under the answers given so far. Visibility is re-resolved after
// every answer so navigation triggers reveal their sections mid-run; the
// scan restarts from the top each time, which also catches sections an
// answer revealed retroactively.
func fillOut(def model.FormDefinition) (model.AnswerMap, error) {
	answers := model.Defaults(def.Fields)
	asked := make(map[string]bool, len(def.Fields))

	for {
		field, ok := nextField(def, answers, asked)
		if !ok {
			return answers, nil
		}
		asked[field.ID] = true

		value, err := ask(field)
		if err != nil {
			return nil, err
		}
		answers[field.ID] = value
	}
}

func nextField(def model.FormDefinition, answers model.AnswerMap, asked map[string]bool) (model.Field, bool) {
	visible := visibility.Resolve(def, answers)
	for _, field := range def.FieldsInDocumentOrder() {
		if asked[field.ID] || !visible.Field(field.ID) || !model.KnownFieldType(field.Type) {
			continue
		}
		return field, true
	}
	return model.Field{}, false
}

func visibleFields(def model.FormDefinition, answers model.AnswerMap) []model.Field {
	visible := visibility.Resolve(def, answers)
	var out []model.Field
	for _, field := range def.FieldsInDocumentOrder() {
		if visible.Field(field.ID) {
			out = append(out, field)
		}
	}
	return out
}
