package openapi

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// HTTP methods accepted by NewRoute.
const (
	MethodGet    = "get"
	MethodPost   = "post"
	MethodPut    = "put"
	MethodPatch  = "patch"
	MethodDelete = "delete"
)

var validMethods = []string{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}

var (
	// pathParamRegexp matches {name} placeholders, including empty ones.
	pathParamRegexp = regexp.MustCompile(`\{([^}]*)\}`)

	paramNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// RouteConfig configures NewRoute.
type RouteConfig struct {
	// Path must start with "/" and use {name} for path parameters. It is
	// relative to the document server URL.
	Path   string
	Method string
	// Tag groups the operation; defaults to "Rest".
	Tag         string
	Summary     string
	Description string
	OperationID string
	Parameters  []*Parameter
	RequestBody *RequestBody
	Responses   Responses
	Security    []SecurityRequirement
}

// NewRoute validates the path and method and returns a fragment holding a
// single path with a single operation. It never merges; combine fragments
// with MergePaths or NewDocument.
//
// See: https://spec.openapis.org/oas/v3.1.0#operation-object
func NewRoute(cfg RouteConfig) (Paths, error) {
	if err := ValidatePath(cfg.Path); err != nil {
		return nil, err
	}
	if err := validateMethod(cfg.Method); err != nil {
		return nil, err
	}

	op := &Operation{
		Tags:        []string{orDefault(cfg.Tag, DefaultTag)},
		Summary:     cfg.Summary,
		Description: cfg.Description,
		OperationID: cfg.OperationID,
		Parameters:  cfg.Parameters,
		RequestBody: cfg.RequestBody,
		Responses:   cfg.Responses,
		Security:    cfg.Security,
	}

	return Paths{cfg.Path: PathItem{cfg.Method: op}}, nil
}

// ValidatePath checks that path starts with "/", contains no angle
// brackets, and that every {name} placeholder has a name of letters,
// digits, underscores and hyphens.
func ValidatePath(path string) error {
	if path == "" {
		return newRouteError("route", "Route cannot be empty")
	}
	if !strings.HasPrefix(path, "/") {
		return newRouteError("route", `Route must start with a forward slash "/"`)
	}
	if strings.ContainsAny(path, "<>") {
		return newRouteError("route", "Route contains invalid characters. Use {paramName} for path parameters")
	}

	for _, m := range pathParamRegexp.FindAllStringSubmatch(path, -1) {
		name := m[1]
		if strings.TrimSpace(name) == "" {
			return newRouteError("route", "Path parameter name cannot be empty")
		}
		if !paramNameRegexp.MatchString(name) {
			return newRouteError("route", fmt.Sprintf(
				"Invalid path parameter name %q. Use only alphanumeric characters, underscores, and hyphens", name))
		}
	}
	return nil
}

func validateMethod(method string) error {
	if !slices.Contains(validMethods, method) {
		return newRouteError("method", fmt.Sprintf(
			"Invalid HTTP method %q. Must be one of: %s", method, strings.Join(validMethods, ", ")))
	}
	return nil
}
