package openapi

import (
	"strconv"

	"github.com/google/uuid"
)

// exampleTimestamp is the fixed timestamp used in template examples.
const exampleTimestamp = "2025-07-14T12:00:00Z"

// exampleRequestNamespace seeds the deterministic request ids placed in
// error examples.
var exampleRequestNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://spec.openapis.org/oas/v3.1.0"))

// exampleRequestID derives a stable request id for an error code so that
// generated documents do not change between builds.
func exampleRequestID(errorCode string) string {
	return "req-" + uuid.NewSHA1(exampleRequestNamespace, []byte(errorCode)).String()
}

// ErrorResponseSchema returns the standard error envelope:
// {error: {code, message, details?, timestamp, requestId}}.
func ErrorResponseSchema() *Schema {
	detail := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"field":   StringSchema(StringConfig{}),
			"message": StringSchema(StringConfig{}),
		},
	})
	inner := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"code":    StringSchema(StringConfig{Description: "Error code for programmatic handling"}),
			"message": StringSchema(StringConfig{Description: "Human-readable error message"}),
			"details": ArraySchema(ArrayConfig{
				Items:       detail,
				Description: "Detailed error information (optional)",
			}),
			"timestamp": StringSchema(StringConfig{Format: "date-time", Description: "When the error occurred"}),
			"requestId": StringSchema(StringConfig{Description: "Request identifier for debugging"}),
		},
		Required: []string{"code", "message"},
	})
	return ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{"error": inner},
		Required:   []string{"error"},
	})
}

// ValidationErrorResponseSchema returns the 422 error envelope whose
// details list {field, message, code} entries.
func ValidationErrorResponseSchema() *Schema {
	detail := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"field":   StringSchema(StringConfig{Description: "Field that failed validation"}),
			"message": StringSchema(StringConfig{Description: "Validation error message"}),
			"code":    StringSchema(StringConfig{Description: "Validation error code"}),
		},
		Required: []string{"field", "message"},
	})
	inner := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"code":      StringSchema(StringConfig{Enum: []string{"VALIDATION_ERROR"}}),
			"message":   StringSchema(StringConfig{Example: "Validation failed"}),
			"details":   ArraySchema(ArrayConfig{Items: detail}),
			"timestamp": StringSchema(StringConfig{Format: "date-time"}),
			"requestId": StringSchema(StringConfig{}),
		},
		Required: []string{"code", "message", "details"},
	})
	return ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{"error": inner},
		Required:   []string{"error"},
	})
}

// ErrorResponseTemplate builds an application/json error response for
// code with an example payload. errorCode defaults to "UNKNOWN_ERROR";
// validation switches to the validation error envelope.
func ErrorResponseTemplate(code int, description, errorCode string, validation bool) Responses {
	schema := ErrorResponseSchema()
	errorCode = orDefault(errorCode, "UNKNOWN_ERROR")
	example := map[string]any{
		"error": map[string]any{
			"code":      errorCode,
			"message":   description,
			"timestamp": exampleTimestamp,
			"requestId": exampleRequestID(errorCode),
		},
	}

	if validation {
		schema = ValidationErrorResponseSchema()
		example = map[string]any{
			"error": map[string]any{
				"code":    "VALIDATION_ERROR",
				"message": "Validation failed",
				"details": []any{
					map[string]any{
						"field":   "email",
						"message": "Invalid email format",
						"code":    "INVALID_FORMAT",
					},
				},
				"timestamp": exampleTimestamp,
				"requestId": exampleRequestID("VALIDATION_ERROR"),
			},
		}
	}

	return Responses{
		strconv.Itoa(code): {
			Description: description,
			Content: map[string]*MediaType{
				MediaTypeJSON: {Schema: schema, Example: example},
			},
		},
	}
}

// ErrorTemplates holds the standard error responses produced by
// CommonErrorTemplates.
type ErrorTemplates struct {
	BadRequest          Responses
	Unauthorized        Responses
	Forbidden           Responses
	NotFound            Responses
	Conflict            Responses
	ValidationError     Responses
	TooManyRequests     Responses
	InternalServerError Responses
	ServiceUnavailable  Responses
}

// All merges every template into one Responses map.
func (t ErrorTemplates) All() Responses {
	return MergeResponses(
		t.BadRequest, t.Unauthorized, t.Forbidden, t.NotFound, t.Conflict,
		t.ValidationError, t.TooManyRequests, t.InternalServerError, t.ServiceUnavailable,
	)
}

// CommonErrorTemplates returns the standard battery of error responses.
func CommonErrorTemplates() ErrorTemplates {
	return ErrorTemplates{
		BadRequest:          ErrorResponseTemplate(400, "Bad Request - Invalid input data", "BAD_REQUEST", false),
		Unauthorized:        ErrorResponseTemplate(401, "Unauthorized - Authentication required", "UNAUTHORIZED", false),
		Forbidden:           ErrorResponseTemplate(403, "Forbidden - Access denied", "FORBIDDEN", false),
		NotFound:            ErrorResponseTemplate(404, "Not Found - Resource not found", "NOT_FOUND", false),
		Conflict:            ErrorResponseTemplate(409, "Conflict - Resource already exists", "CONFLICT", false),
		ValidationError:     ErrorResponseTemplate(422, "Unprocessable Entity - Validation failed", "VALIDATION_ERROR", true),
		TooManyRequests:     ErrorResponseTemplate(429, "Too Many Requests - Rate limit exceeded", "RATE_LIMIT_EXCEEDED", false),
		InternalServerError: ErrorResponseTemplate(500, responseDescriptions[500], "INTERNAL_SERVER_ERROR", false),
		ServiceUnavailable:  ErrorResponseTemplate(503, "Service Unavailable - Server temporarily unavailable", "SERVICE_UNAVAILABLE", false),
	}
}

// PaginatedConfig configures PaginatedResponse.
type PaginatedConfig struct {
	ItemSchema  *Schema
	Description string
	// ExcludeMetadata drops the meta object from the envelope.
	ExcludeMetadata bool
	// MetadataSchema replaces the default page metadata schema.
	MetadataSchema *Schema
}

func defaultPageMetadataSchema() *Schema {
	return ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"totalCount":  IntegerSchema(NumberConfig{Description: "Total number of items across all pages"}),
			"page":        IntegerSchema(NumberConfig{Description: "Current page number"}),
			"limit":       IntegerSchema(NumberConfig{Description: "Number of items per page"}),
			"totalPages":  IntegerSchema(NumberConfig{Description: "Total number of pages"}),
			"hasNext":     BooleanSchema("Whether there are more pages"),
			"hasPrevious": BooleanSchema("Whether there are previous pages"),
		},
	})
}

func exampleItems() []any {
	return []any{
		map[string]any{"id": 1, "name": "Item 1"},
		map[string]any{"id": 2, "name": "Item 2"},
	}
}

// PaginatedResponse builds a 200 response wrapping items in an offset
// pagination envelope {data, meta}.
func PaginatedResponse(cfg PaginatedConfig) Responses {
	properties := map[string]*Schema{
		"data": ArraySchema(ArrayConfig{
			Items:       cfg.ItemSchema,
			Description: "Array of items for the current page",
		}),
	}
	required := []string{"data"}
	example := map[string]any{"data": exampleItems()}

	if !cfg.ExcludeMetadata {
		meta := cfg.MetadataSchema
		if meta == nil {
			meta = defaultPageMetadataSchema()
		}
		properties["meta"] = meta
		required = append(required, "meta")
		example["meta"] = map[string]any{
			"totalCount":  100,
			"page":        1,
			"limit":       10,
			"totalPages":  10,
			"hasNext":     true,
			"hasPrevious": false,
		}
	}

	schema := ObjectSchema(ObjectConfig{Properties: properties, Required: required})
	return envelopeResponse(orDefault(cfg.Description, "Paginated results"), schema, example)
}

// CursorPaginatedResponse builds a 200 response wrapping items in a cursor
// pagination envelope {data, pagination}.
func CursorPaginatedResponse(itemSchema *Schema, description string) Responses {
	cursor := func(desc string) *Schema {
		return &Schema{Type: TypeArray(TypeNameString, TypeNameNull), Description: desc}
	}
	pagination := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"nextCursor":  cursor("Cursor for the next page, null if no more pages"),
			"prevCursor":  cursor("Cursor for the previous page, null if first page"),
			"hasNext":     BooleanSchema("Whether there are more pages"),
			"hasPrevious": BooleanSchema("Whether there are previous pages"),
		},
		Required: []string{"nextCursor", "prevCursor", "hasNext", "hasPrevious"},
	})
	schema := ObjectSchema(ObjectConfig{
		Properties: map[string]*Schema{
			"data": ArraySchema(ArrayConfig{
				Items:       itemSchema,
				Description: "Array of items for the current page",
			}),
			"pagination": pagination,
		},
		Required: []string{"data", "pagination"},
	})
	example := map[string]any{
		"data": exampleItems(),
		"pagination": map[string]any{
			"nextCursor":  "eyJpZCI6Mn0=",
			"prevCursor":  nil,
			"hasNext":     true,
			"hasPrevious": false,
		},
	}
	return envelopeResponse(orDefault(description, "Cursor-based paginated results"), schema, example)
}

// envelopeResponse publishes a 200 envelope under both media types with
// the example attached to the JSON one only.
func envelopeResponse(description string, schema *Schema, example any) Responses {
	return Responses{
		"200": {
			Description: description,
			Content:     mediaContent(defaultMediaTypes, schema, map[string]any{MediaTypeJSON: example}),
		},
	}
}
