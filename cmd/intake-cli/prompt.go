package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-intake/pkg/model"
	"github.com/goliatone/go-intake/pkg/validation"
)

var errAborted = errors.New("aborted")

// ask prompts for one field with the survey prompt matching its type and
// returns the answer in the shape the engine stores for that type.
func ask(field model.Field) (any, error) {
	message := field.Label + ":"

	switch field.Type {
	case model.FieldTypeShortText:
		var out string
		prompt := &survey.Input{Message: message, Help: field.Description}
		if err := survey.AskOne(prompt, &out, textOpts(field)...); err != nil {
			return nil, translateErr(err)
		}
		return out, nil

	case model.FieldTypeLongText:
		var out string
		prompt := &survey.Multiline{Message: message, Help: field.Description}
		if err := survey.AskOne(prompt, &out, textOpts(field)...); err != nil {
			return nil, translateErr(err)
		}
		return out, nil

	case model.FieldTypeDropdown, model.FieldTypeChoice:
		var out string
		prompt := &survey.Select{Message: message, Options: field.Options, Help: field.Description}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, translateErr(err)
		}
		return out, nil

	case model.FieldTypeToggle:
		var out bool
		prompt := &survey.Confirm{Message: message, Help: field.Description}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, translateErr(err)
		}
		return out, nil

	case model.FieldTypeMultiChoice:
		var out []string
		prompt := &survey.MultiSelect{Message: message, Options: field.Options, Help: field.Description}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, translateErr(err)
		}
		return out, nil

	case model.FieldTypeFiles:
		// Uploads happen out of band; the CLI takes URLs and lets the
		// transformer normalize them into attachment descriptors.
		var out string
		prompt := &survey.Input{
			Message: message,
			Help:    "Comma-separated file URLs; leave empty to skip.",
		}
		if err := survey.AskOne(prompt, &out); err != nil {
			return nil, translateErr(err)
		}
		return splitURLs(out), nil
	}

	return nil, fmt.Errorf("unsupported field type %q", field.Type)
}

// textOpts attaches the derived validation rules to free-text prompts so
// mistakes surface inline instead of after the whole form.
func textOpts(field model.Field) []survey.AskOpt {
	if !field.Required {
		return nil
	}
	validator := func(ans interface{}) error {
		text, _ := ans.(string)
		result := validation.Validate([]model.Field{field}, model.AnswerMap{field.ID: text})
		if !result.Valid {
			return errors.New(result.Issues[0].Message)
		}
		return nil
	}
	return []survey.AskOpt{survey.WithValidator(validator)}
}

func splitURLs(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func translateErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}
