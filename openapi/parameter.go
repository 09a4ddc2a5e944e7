package openapi

import "fmt"

// IDPathConfig configures IDPathParam. When both ObjectName and
// OperationName are set the description reads "ID of {object} to
// {operation}"; Description overrides both.
type IDPathConfig struct {
	Description    string
	ObjectName     string
	OperationName  string
	PositiveNumber bool
}

// IDPathParam builds the required "id" path parameter.
//
// See: https://spec.openapis.org/oas/v3.1.0#parameter-object
func IDPathParam(cfg IDPathConfig) *Parameter {
	description := parameterDefaults.idDescription
	if cfg.ObjectName != "" && cfg.OperationName != "" {
		description = fmt.Sprintf("ID of %s to %s", cfg.ObjectName, cfg.OperationName)
	}

	schema := &Schema{Type: TypeString(TypeNameString)}
	if cfg.PositiveNumber {
		schema = IntegerSchema(NumberConfig{Format: "int32", Minimum: ptr(0.0)})
	}

	return &Parameter{
		Name:        "id",
		In:          InPath,
		Description: orDefault(cfg.Description, description),
		Required:    true,
		Schema:      schema,
	}
}

// PageQueryParam builds the optional "page" query parameter.
func PageQueryParam() *Parameter {
	return &Parameter{
		Name:        "page",
		In:          InQuery,
		Description: parameterDefaults.pageDescription,
		Schema:      IntegerSchema(NumberConfig{Minimum: ptr(parameterDefaults.pageMinimum)}),
	}
}

// LimitConfig configures LimitQueryParam. Nil fields take the defaults
// minimum 1, maximum 100 and default 10.
type LimitConfig struct {
	Description string
	Default     *int
	Minimum     *int
	Maximum     *int
}

// LimitQueryParam builds the optional "limit" query parameter.
func LimitQueryParam(cfg LimitConfig) *Parameter {
	def := parameterDefaults
	schema := IntegerSchema(NumberConfig{
		Minimum: intOr(cfg.Minimum, def.limitMinimum),
		Maximum: intOr(cfg.Maximum, def.limitMaximum),
	})
	schema.Default = def.limitDefault
	if cfg.Default != nil {
		schema.Default = *cfg.Default
	}

	return &Parameter{
		Name:        "limit",
		In:          InQuery,
		Description: orDefault(cfg.Description, def.limitDescription),
		Schema:      schema,
	}
}

// OffsetConfig configures OffsetQueryParam. Nil fields take the defaults
// minimum 0 and default 0.
type OffsetConfig struct {
	Description string
	Default     *int
	Minimum     *int
}

// OffsetQueryParam builds the optional "offset" query parameter.
func OffsetQueryParam(cfg OffsetConfig) *Parameter {
	def := parameterDefaults
	schema := IntegerSchema(NumberConfig{Minimum: intOr(cfg.Minimum, def.offsetMinimum)})
	schema.Default = def.offsetDefault
	if cfg.Default != nil {
		schema.Default = *cfg.Default
	}

	return &Parameter{
		Name:        "offset",
		In:          InQuery,
		Description: orDefault(cfg.Description, def.offsetDescription),
		Schema:      schema,
	}
}

// SortConfig configures SortQueryParam. Descending defaults to true; set
// DisallowDescending to publish only ascending field names.
type SortConfig struct {
	Description        string
	AllowedFields      []string
	Default            string
	DisallowDescending bool
}

// SortQueryParam builds the optional "sort" query parameter. With
// AllowedFields the schema enumerates each field followed by its
// "-"-prefixed descending variant.
func SortQueryParam(cfg SortConfig) *Parameter {
	schema := &Schema{Type: TypeString(TypeNameString)}

	if len(cfg.AllowedFields) > 0 {
		options := append([]string(nil), cfg.AllowedFields...)
		if !cfg.DisallowDescending {
			for _, field := range cfg.AllowedFields {
				options = append(options, "-"+field)
			}
		}
		schema.Enum = stringsToAny(options)
		schema.Example = cfg.AllowedFields[0]
	}

	if cfg.Default != "" {
		schema.Default = cfg.Default
	}

	description := orDefault(cfg.Description, parameterDefaults.sortDescription)
	if !cfg.DisallowDescending {
		description += parameterDefaults.sortDescSuffix
	}

	return &Parameter{
		Name:        "sort",
		In:          InQuery,
		Description: description,
		Schema:      schema,
	}
}

// FilterConfig configures FilterQueryParam.
type FilterConfig struct {
	FieldName   string
	Description string
	Schema      *Schema
	Required    bool
}

// FilterQueryParam builds a query parameter named after the filtered field.
func FilterQueryParam(cfg FilterConfig) *Parameter {
	return &Parameter{
		Name:        cfg.FieldName,
		In:          InQuery,
		Description: orDefault(cfg.Description, "Filter by "+cfg.FieldName),
		Required:    cfg.Required,
		Schema:      schemaOrString(cfg.Schema),
	}
}

// HeaderConfig configures HeaderParam.
type HeaderConfig struct {
	Name        string
	Description string
	Required    bool
	Schema      *Schema
}

// HeaderParam builds a header parameter.
func HeaderParam(cfg HeaderConfig) *Parameter {
	return &Parameter{
		Name:        cfg.Name,
		In:          InHeader,
		Description: orDefault(cfg.Description, cfg.Name+" header"),
		Required:    cfg.Required,
		Schema:      schemaOrString(cfg.Schema),
	}
}

// AuthorizationHeader builds a required bearer-token Authorization header.
func AuthorizationHeader(description string) *Parameter {
	return HeaderParam(HeaderConfig{
		Name:        "Authorization",
		Description: orDefault(description, "Bearer token for authentication"),
		Required:    true,
		Schema: StringSchema(StringConfig{
			Pattern: `^Bearer [A-Za-z0-9\-\._~\+\/]+=*$`,
			Example: "Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...",
		}),
	})
}

// APIKeyHeader builds a required x-api-key header.
func APIKeyHeader(description string) *Parameter {
	return HeaderParam(HeaderConfig{
		Name:        "x-api-key",
		Description: orDefault(description, "API key for authentication"),
		Required:    true,
		Schema:      StringSchema(StringConfig{MinLength: 1, Example: "abc123def456"}),
	})
}

// ContentTypeHeader builds an optional Content-Type header, restricted to
// allowedTypes when given.
func ContentTypeHeader(description string, allowedTypes ...string) *Parameter {
	schema := StringSchema(StringConfig{Enum: allowedTypes, Example: MediaTypeJSON})
	if len(allowedTypes) > 0 {
		schema.Example = allowedTypes[0]
	}
	return HeaderParam(HeaderConfig{
		Name:        "Content-Type",
		Description: orDefault(description, "Media type of the request body"),
		Schema:      schema,
	})
}

// PaginationStyle selects the parameters produced by PaginationParams.
type PaginationStyle string

const (
	PaginationPageLimit   PaginationStyle = "page-limit"
	PaginationOffsetLimit PaginationStyle = "offset-limit"
)

// PaginationConfig configures PaginationParams. An empty Style means
// PaginationPageLimit.
type PaginationConfig struct {
	Style       PaginationStyle
	Limit       LimitConfig
	Offset      OffsetConfig
	Sort        SortConfig
	IncludeSort bool
}

// PaginationParams returns page+limit or offset+limit, followed by sort
// when IncludeSort is set. An unknown style yields only the sort parameter.
func PaginationParams(cfg PaginationConfig) []*Parameter {
	var params []*Parameter

	switch cfg.Style {
	case "", PaginationPageLimit:
		params = append(params, PageQueryParam(), LimitQueryParam(cfg.Limit))
	case PaginationOffsetLimit:
		params = append(params, OffsetQueryParam(cfg.Offset), LimitQueryParam(cfg.Limit))
	}

	if cfg.IncludeSort {
		params = append(params, SortQueryParam(cfg.Sort))
	}

	return params
}

func schemaOrString(s *Schema) *Schema {
	if s == nil {
		return &Schema{Type: TypeString(TypeNameString)}
	}
	return s
}

func intOr(v *int, fallback float64) *float64 {
	if v == nil {
		return ptr(fallback)
	}
	return ptr(float64(*v))
}
