package openapi

import "regexp"

// Component categories addressable by a local $ref.
const (
	ComponentSchemas         = "schemas"
	ComponentParameters      = "parameters"
	ComponentResponses       = "responses"
	ComponentRequestBodies   = "requestBodies"
	ComponentSecuritySchemes = "securitySchemes"
)

const componentsPrefix = "#/components/"

var (
	// referenceRegexp is the canonical validity check for component references.
	referenceRegexp = regexp.MustCompile(`^#/components/(schemas|parameters|responses|requestBodies|securitySchemes)/[a-zA-Z0-9_-]+$`)

	// referencePartsRegexp splits any #/components/{type}/{name} reference.
	referencePartsRegexp = regexp.MustCompile(`^#/components/(\w+)/(.+)$`)
)

func componentRef(category, name string) string {
	return componentsPrefix + category + "/" + name
}

// SchemaRef returns a schema referencing #/components/schemas/{name}.
//
// See: https://spec.openapis.org/oas/v3.1.0#reference-object
func SchemaRef(name string) *Schema {
	return &Schema{Ref: componentRef(ComponentSchemas, name)}
}

// ParameterRef returns the reference string for a reusable parameter.
func ParameterRef(name string) string {
	return componentRef(ComponentParameters, name)
}

// ResponseRef returns the reference string for a reusable response.
func ResponseRef(name string) string {
	return componentRef(ComponentResponses, name)
}

// RequestBodyRef returns the reference string for a reusable request body.
func RequestBodyRef(name string) string {
	return componentRef(ComponentRequestBodies, name)
}

// SecuritySchemeRef returns the reference string for a security scheme.
func SecuritySchemeRef(name string) string {
	return componentRef(ComponentSecuritySchemes, name)
}

// IsValidReference reports whether ref has the form
// #/components/{schemas|parameters|responses|requestBodies|securitySchemes}/{name}
// with a name of letters, digits, underscores and hyphens.
func IsValidReference(ref string) bool {
	return referenceRegexp.MatchString(ref)
}

// ReferenceComponentName returns the component name of a
// #/components/{type}/{name} reference.
func ReferenceComponentName(ref string) (string, bool) {
	m := referencePartsRegexp.FindStringSubmatch(ref)
	if m == nil {
		return "", false
	}
	return m[2], true
}

// ReferenceComponentType returns the component category of a
// #/components/{type}/{name} reference.
func ReferenceComponentType(ref string) (string, bool) {
	m := referencePartsRegexp.FindStringSubmatch(ref)
	if m == nil {
		return "", false
	}
	return m[1], true
}
