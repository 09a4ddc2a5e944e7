package openapi

// JSON Schema type names.
const (
	TypeNameString  = "string"
	TypeNameNumber  = "number"
	TypeNameInteger = "integer"
	TypeNameBoolean = "boolean"
	TypeNameObject  = "object"
	TypeNameArray   = "array"
	TypeNameNull    = "null"
)

// StringConfig configures StringSchema. Zero values are omitted.
type StringConfig struct {
	MinLength   int
	MaxLength   int
	Pattern     string
	Format      string
	Enum        []string
	Default     string
	Example     string
	Description string
}

// StringSchema builds a string schema.
//
// See: https://json-schema.org/draft/2020-12/json-schema-validation#section-6.3
func StringSchema(cfg StringConfig) *Schema {
	s := &Schema{
		Type:        TypeString(TypeNameString),
		Pattern:     cfg.Pattern,
		Format:      cfg.Format,
		Description: cfg.Description,
	}
	if cfg.MinLength > 0 {
		s.MinLength = ptr(cfg.MinLength)
	}
	if cfg.MaxLength > 0 {
		s.MaxLength = ptr(cfg.MaxLength)
	}
	if len(cfg.Enum) > 0 {
		s.Enum = stringsToAny(cfg.Enum)
	}
	if cfg.Default != "" {
		s.Default = cfg.Default
	}
	if cfg.Example != "" {
		s.Example = cfg.Example
	}
	return s
}

// NumberConfig configures NumberSchema and IntegerSchema. Nil pointers are
// omitted; set pointers are emitted even when zero.
//
// ExclusiveMinimum and ExclusiveMaximum carry the JSON Schema 2020-12
// numeric bound, not the boolean flag of OpenAPI 3.0.
type NumberConfig struct {
	Minimum          *float64
	Maximum          *float64
	ExclusiveMinimum *float64
	ExclusiveMaximum *float64
	MultipleOf       float64
	Format           string
	Default          *float64
	Example          *float64
	Description      string
}

// NumberSchema builds a number schema.
//
// See: https://json-schema.org/draft/2020-12/json-schema-validation#section-6.2
func NumberSchema(cfg NumberConfig) *Schema {
	return numericSchema(TypeNameNumber, cfg)
}

// IntegerSchema builds an integer schema.
//
// See: https://json-schema.org/draft/2020-12/json-schema-validation#section-6.2
func IntegerSchema(cfg NumberConfig) *Schema {
	return numericSchema(TypeNameInteger, cfg)
}

func numericSchema(typeName string, cfg NumberConfig) *Schema {
	s := &Schema{
		Type:             TypeString(typeName),
		Format:           cfg.Format,
		Description:      cfg.Description,
		Minimum:          cfg.Minimum,
		Maximum:          cfg.Maximum,
		ExclusiveMinimum: cfg.ExclusiveMinimum,
		ExclusiveMaximum: cfg.ExclusiveMaximum,
	}
	if cfg.MultipleOf != 0 {
		s.MultipleOf = ptr(cfg.MultipleOf)
	}
	if cfg.Default != nil {
		s.Default = numericValue(typeName, *cfg.Default)
	}
	if cfg.Example != nil {
		s.Example = numericValue(typeName, *cfg.Example)
	}
	return s
}

// numericValue keeps integer defaults and examples integral in the output.
func numericValue(typeName string, v float64) any {
	if typeName == TypeNameInteger {
		return int64(v)
	}
	return v
}

// BooleanSchema builds a boolean schema with an optional description.
func BooleanSchema(description string) *Schema {
	return &Schema{Type: TypeString(TypeNameBoolean), Description: description}
}

// ArrayConfig configures ArraySchema.
type ArrayConfig struct {
	Items       *Schema
	MinItems    *int
	MaxItems    *int
	UniqueItems *bool
	Default     []any
	Example     []any
	Description string
}

// ArraySchema builds an array schema. Items is always emitted.
//
// See: https://json-schema.org/draft/2020-12/json-schema-validation#section-6.4
func ArraySchema(cfg ArrayConfig) *Schema {
	items := cfg.Items
	if items == nil {
		items = &Schema{}
	}
	s := &Schema{
		Type:        TypeString(TypeNameArray),
		Items:       items,
		MinItems:    cfg.MinItems,
		MaxItems:    cfg.MaxItems,
		UniqueItems: cfg.UniqueItems,
		Description: cfg.Description,
	}
	if len(cfg.Default) > 0 {
		s.Default = cfg.Default
	}
	if len(cfg.Example) > 0 {
		s.Example = cfg.Example
	}
	return s
}

// ObjectConfig configures ObjectSchema. AdditionalProperties accepts a
// bool or a *Schema.
type ObjectConfig struct {
	Properties           map[string]*Schema
	Required             []string
	AdditionalProperties any
	MinProperties        *int
	MaxProperties        *int
	Example              any
	Description          string
}

// ObjectSchema builds an object schema. Required is emitted only when
// non-empty.
//
// See: https://json-schema.org/draft/2020-12/json-schema-validation#section-6.5
func ObjectSchema(cfg ObjectConfig) *Schema {
	s := &Schema{
		Type:                 TypeString(TypeNameObject),
		Properties:           cfg.Properties,
		AdditionalProperties: cfg.AdditionalProperties,
		MinProperties:        cfg.MinProperties,
		MaxProperties:        cfg.MaxProperties,
		Example:              cfg.Example,
		Description:          cfg.Description,
	}
	if len(cfg.Required) > 0 {
		s.Required = cfg.Required
	}
	return s
}

// AllOfSchema wraps schemas under allOf.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-10.2.1.1
func AllOfSchema(description string, schemas ...*Schema) *Schema {
	return &Schema{AllOf: schemas, Description: description}
}

// OneOfSchema wraps schemas under oneOf.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-10.2.1.3
func OneOfSchema(description string, schemas ...*Schema) *Schema {
	return &Schema{OneOf: schemas, Description: description}
}

// AnyOfSchema wraps schemas under anyOf.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-10.2.1.2
func AnyOfSchema(description string, schemas ...*Schema) *Schema {
	return &Schema{AnyOf: schemas, Description: description}
}

// NotSchema wraps a schema under not.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-10.2.1.4
func NotSchema(schema *Schema, description string) *Schema {
	return &Schema{Not: schema, Description: description}
}

// ConditionalSchema builds an if/then/else schema. elseSchema may be nil.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-10.2.2
func ConditionalSchema(ifSchema, thenSchema, elseSchema *Schema, description string) *Schema {
	return &Schema{
		If:          ifSchema,
		Then:        thenSchema,
		Else:        elseSchema,
		Description: description,
	}
}

// DiscriminatorSchema builds a schema carrying only a discriminator.
//
// See: https://spec.openapis.org/oas/v3.1.0#discriminator-object
func DiscriminatorSchema(propertyName string, mapping map[string]string, description string) *Schema {
	return &Schema{
		Discriminator: &Discriminator{PropertyName: propertyName, Mapping: mapping},
		Description:   description,
	}
}

// NullableSchema allows schema or null.
func NullableSchema(schema *Schema, description string) *Schema {
	return OneOfSchema(orDefault(description, "Nullable value"), schema, &Schema{Type: TypeString(TypeNameNull)})
}

// TimestampedSchema extends base with required createdAt and updatedAt fields.
func TimestampedSchema(base *Schema, description string) *Schema {
	timestamps := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"createdAt": StringSchema(StringConfig{Format: "date-time"}),
			"updatedAt": StringSchema(StringConfig{Format: "date-time"}),
		},
		Required: []string{"createdAt", "updatedAt"},
	})
	return AllOfSchema(orDefault(description, "Timestamped entity"), base, timestamps)
}

// APIResponseSchema wraps data in a success envelope.
func APIResponseSchema(data *Schema, description string) *Schema {
	return ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"success":   BooleanSchema("Whether request was successful"),
			"data":      data,
			"message":   StringSchema(StringConfig{Description: "Response message"}),
			"timestamp": StringSchema(StringConfig{Format: "date-time", Description: "Response timestamp"}),
		},
		Required:    []string{"success", "data"},
		Description: orDefault(description, "API response wrapper"),
	})
}

// PaginatedSchema wraps items in a page envelope with page metadata.
func PaginatedSchema(item *Schema, description string) *Schema {
	meta := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"page":       IntegerSchema(NumberConfig{Minimum: ptr(1.0)}),
			"limit":      IntegerSchema(NumberConfig{Minimum: ptr(1.0)}),
			"total":      IntegerSchema(NumberConfig{Minimum: ptr(0.0)}),
			"totalPages": IntegerSchema(NumberConfig{Minimum: ptr(0.0)}),
		},
		Required: []string{"page", "limit", "total"},
	})
	return ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"data": ArraySchema(ArrayConfig{Items: item}),
			"meta": meta,
		},
		Required:    []string{"data", "meta"},
		Description: orDefault(description, "Paginated response"),
	})
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
