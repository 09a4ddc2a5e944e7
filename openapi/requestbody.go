package openapi

import (
	"fmt"
	"regexp"
	"strings"
)

// bodyRefRegexp lists the reference shapes a request body may point at.
var bodyRefRegexp = regexp.MustCompile(`^#/(components/schemas|definitions)/[a-zA-Z0-9_-]+$`)

// RequestBodyConfig configures NewRequestBody. Exactly one of Properties
// and Ref must be set.
type RequestBodyConfig struct {
	Description    string
	Required       bool
	RequiredFields []string
	// Properties builds an inline object schema.
	Properties map[string]*Schema
	// Ref points at a component schema, e.g. "#/components/schemas/User".
	Ref string
}

// NewRequestBody builds a request body published under both
// application/json and application/x-www-form-urlencoded.
//
// OpenAPI tooling does not validate individual body properties; only body
// presence and the existence of required fields are enforced, so those are
// the only checks made here.
//
// See: https://spec.openapis.org/oas/v3.1.0#request-body-object
func NewRequestBody(cfg RequestBodyConfig) (*RequestBody, error) {
	hasProps := cfg.Properties != nil
	hasRef := cfg.Ref != ""

	switch {
	case !hasProps && !hasRef:
		return nil, newRequestBodyError("properties", "either properties or refString is required, must provide one")
	case hasProps && hasRef:
		return nil, newRequestBodyError("properties", "properties and refString are mutually exclusive, choose one")
	}

	var schema *Schema
	if hasRef {
		if err := validateBodyRef(cfg.Ref); err != nil {
			return nil, err
		}
		schema = &Schema{Ref: cfg.Ref}
	} else {
		if err := validateBodyProperties(cfg.Properties, cfg.RequiredFields); err != nil {
			return nil, err
		}
		schema = &Schema{
			Type:       TypeString(TypeNameObject),
			Required:   cfg.RequiredFields,
			Properties: cfg.Properties,
		}
	}

	return &RequestBody{
		Description: cfg.Description,
		Required:    cfg.Required,
		Content:     mediaContent(defaultMediaTypes, schema, nil),
	}, nil
}

func validateBodyRef(ref string) error {
	if !strings.HasPrefix(ref, "#/") {
		return newRequestBodyError("refString", fmt.Sprintf("reference %q must start with \"#/\"", ref))
	}
	if !bodyRefRegexp.MatchString(ref) {
		return newRequestBodyError("refString",
			fmt.Sprintf("reference %q must match #/components/schemas/{name} or #/definitions/{name}", ref))
	}
	return nil
}

func validateBodyProperties(props map[string]*Schema, requiredFields []string) error {
	if len(props) == 0 {
		return newRequestBodyError("properties", "properties cannot be empty")
	}
	for name, prop := range props {
		if strings.TrimSpace(name) == "" {
			return newRequestBodyError("properties", "property names cannot be empty")
		}
		if prop == nil {
			return newRequestBodyError("properties", fmt.Sprintf("property %q must be a schema object", name))
		}
	}

	var unknown []string
	for _, field := range requiredFields {
		if _, ok := props[field]; !ok {
			unknown = append(unknown, field)
		}
	}
	if len(unknown) > 0 {
		return newRequestBodyError("requiredFields",
			fmt.Sprintf("required fields not found in properties: %s", strings.Join(unknown, ", ")))
	}
	return nil
}

// mediaContent publishes schema under each content type. examples, keyed
// by content type, is optional.
func mediaContent(contentTypes []string, schema *Schema, examples map[string]any) map[string]*MediaType {
	content := make(map[string]*MediaType, len(contentTypes))
	for _, ct := range contentTypes {
		mt := &MediaType{Schema: schema}
		if ex, ok := examples[ct]; ok {
			mt.Example = ex
		}
		content[ct] = mt
	}
	return content
}
