package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is a JSON Schema document (draft 2020-12).
type Document struct {
	Schema               string               `json:"$schema,omitempty"`
	ID                   string               `json:"$id,omitempty"`
	Title                string               `json:"title,omitempty"`
	Description          string               `json:"description,omitempty"`
	Type                 string               `json:"type,omitempty"`
	Format               string               `json:"format,omitempty"`
	Required             []string             `json:"required,omitempty"`
	Properties           map[string]*Document `json:"properties,omitempty"`
	Items                *Document            `json:"items,omitempty"`
	AdditionalProperties *Document            `json:"additionalProperties,omitempty"`
	MinItems             *int                 `json:"minItems,omitempty"`
	MaxItems             *int                 `json:"maxItems,omitempty"`
}

const draftRef = "https://json-schema.org/draft/2020-12/schema"

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// Generate builds a schema document for v's type, following json tags.
// A field is required unless its tag carries omitempty. The root
// document gets the draft reference and an $id derived from title.
func Generate(v any, title string) (*Document, error) {
	doc, err := forType(reflect.TypeOf(v))
	if err != nil {
		return nil, err
	}

	doc.Schema = draftRef
	doc.Title = title
	doc.ID = fmt.Sprintf("https://schemas.netai.dev/timetravel-eval/%s", strings.ToLower(title))
	return doc, nil
}

// MarshalIndent renders the schema for v as indented JSON.
func MarshalIndent(v any, title string) ([]byte, error) {
	doc, err := Generate(v, title)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

func forType(t reflect.Type) (*Document, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	// Types with their own JSON string encoding.
	switch t {
	case timeType:
		return &Document{Type: "string", Format: "date-time"}, nil
	case uuidType:
		return &Document{Type: "string", Format: "uuid"}, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		return forStruct(t)
	case reflect.Slice:
		items, err := forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &Document{Type: "array", Items: items}, nil
	case reflect.Array:
		items, err := forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		n := t.Len()
		return &Document{Type: "array", Items: items, MinItems: &n, MaxItems: &n}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type: %s", t.Key())
		}
		values, err := forType(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("map values: %w", err)
		}
		return &Document{Type: "object", AdditionalProperties: values}, nil
	case reflect.String:
		return &Document{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Document{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &Document{Type: "number"}, nil
	case reflect.Bool:
		return &Document{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t)
	}
}

func forStruct(t reflect.Type) (*Document, error) {
	doc := &Document{
		Type:       "object",
		Properties: make(map[string]*Document),
	}

	var required []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, optional, skip := jsonName(field)
		if skip {
			continue
		}

		fieldDoc, err := forType(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fieldDoc.Description = desc
		}
		doc.Properties[name] = fieldDoc

		if !optional {
			required = append(required, name)
		}
	}

	if len(required) > 0 {
		doc.Required = required
	}
	return doc, nil
}

// jsonName resolves the wire name of a struct field the way
// encoding/json does, reporting omitempty as optional.
func jsonName(field reflect.StructField) (name string, optional, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}

	for _, p := range parts[1:] {
		if p == "omitempty" {
			optional = true
		}
	}
	return name, optional, false
}
