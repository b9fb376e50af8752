// Package openapi bootstraps form definitions from OpenAPI documents so a
// builder can start from an existing API operation instead of an empty
// canvas. Only the flat, form-friendly subset of a request schema maps to
// fields; nested objects and numeric types are skipped the same way the
// engine skips unknown field types.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-intake/pkg/model"
)

var (
	// ErrOperationNotFound signals that the document has no operation with
	// the requested id.
	ErrOperationNotFound = errors.New("openapi: operation not found")
	// ErrNoRequestSchema signals that the operation declares no usable
	// request body schema.
	ErrNoRequestSchema = errors.New("openapi: operation has no request schema")
)

// Import loads an OpenAPI document and converts the named operation's JSON
// request schema into a form definition: one unassigned field per
// form-friendly property, in name order, labelled via DefaultLabeler when
// the schema carries no title.
func Import(ctx context.Context, raw []byte, operationID string) (model.FormDefinition, error) {
	if len(raw) == 0 {
		return model.FormDefinition{}, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return model.FormDefinition{}, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(doc, operationID)
	if operation == nil {
		return model.FormDefinition{}, fmt.Errorf("%q: %w", operationID, ErrOperationNotFound)
	}

	schema := requestSchema(operation)
	if schema == nil || len(schema.Properties) == 0 {
		return model.FormDefinition{}, fmt.Errorf("%q: %w", operationID, ErrNoRequestSchema)
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var def model.FormDefinition
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		field, ok := fieldFromSchema(name, ref.Value)
		if !ok {
			continue
		}
		field.Required = required[name]
		field.Order = len(def.Fields)
		def.Fields = append(def.Fields, field)
	}

	if len(def.Fields) == 0 {
		return model.FormDefinition{}, fmt.Errorf("%q: %w", operationID, ErrNoRequestSchema)
	}
	return def, nil
}

func findOperation(doc *openapi3.T, operationID string) *openapi3.Operation {
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldFromSchema(name string, schema *openapi3.Schema) (model.Field, bool) {
	field := model.Field{
		ID:          name,
		Label:       strings.TrimSpace(schema.Title),
		Description: strings.TrimSpace(schema.Description),
	}
	if field.Label == "" {
		field.Label = model.DefaultLabeler(name)
	}

	switch {
	case typeIs(schema, openapi3.TypeString):
		switch {
		case len(schema.Enum) > 0:
			field.Type = model.FieldTypeDropdown
			field.Options = enumOptions(schema.Enum)
		case schema.Format == "binary":
			field.Type = model.FieldTypeFiles
		case longTextFormat(schema):
			field.Type = model.FieldTypeLongText
		default:
			field.Type = model.FieldTypeShortText
		}
	case typeIs(schema, openapi3.TypeBoolean):
		field.Type = model.FieldTypeToggle
	case typeIs(schema, openapi3.TypeArray):
		items := itemSchema(schema)
		switch {
		case items == nil:
			return model.Field{}, false
		case len(items.Enum) > 0:
			field.Type = model.FieldTypeMultiChoice
			field.Options = enumOptions(items.Enum)
		case items.Format == "binary":
			field.Type = model.FieldTypeFiles
		default:
			return model.Field{}, false
		}
	default:
		// Objects, numbers, and untyped schemas have no form-friendly
		// representation.
		return model.Field{}, false
	}

	return field, true
}

func typeIs(schema *openapi3.Schema, kind string) bool {
	return schema.Type != nil && schema.Type.Is(kind)
}

func itemSchema(schema *openapi3.Schema) *openapi3.Schema {
	if schema.Items == nil {
		return nil
	}
	return schema.Items.Value
}

func longTextFormat(schema *openapi3.Schema) bool {
	if schema.Format == "textarea" || schema.Format == "multiline" {
		return true
	}
	return schema.MinLength >= 20 || (schema.MaxLength != nil && *schema.MaxLength > 255)
}

func enumOptions(enum []any) []string {
	out := make([]string, 0, len(enum))
	for _, value := range enum {
		if s, ok := value.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
