package openapi

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// Status is a response key: a decimal HTTP status code or "default".
//
// See: https://spec.openapis.org/oas/v3.1.0#responses-object
type Status string

// StatusDefault is the catch-all response key.
const StatusDefault Status = "default"

// Code returns the Status for an HTTP status code.
func Code(code int) Status {
	return Status(strconv.Itoa(code))
}

// ResponseConfig configures NewResponse.
type ResponseConfig struct {
	Status      Status
	Description string
	// Schema, when set, is published under every content type.
	Schema *Schema
	// ContentTypes defaults to application/json and
	// application/x-www-form-urlencoded.
	ContentTypes []string
	Headers      map[string]*Header
	// Examples maps a content type to its example payload.
	Examples map[string]any
}

// NewResponse builds a single-status Responses map after validating the
// status key and description.
//
// See: https://spec.openapis.org/oas/v3.1.0#response-object
func NewResponse(cfg ResponseConfig) (Responses, error) {
	if err := ValidateStatus(cfg.Status); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Description) == "" {
		return nil, newResponseStatusError("description", "Description cannot be empty")
	}

	resp := &Response{
		Description: cfg.Description,
		Headers:     cfg.Headers,
	}
	if cfg.Schema != nil {
		contentTypes := cfg.ContentTypes
		if len(contentTypes) == 0 {
			contentTypes = defaultMediaTypes
		}
		resp.Content = mediaContent(contentTypes, cfg.Schema, cfg.Examples)
	}

	return Responses{string(cfg.Status): resp}, nil
}

// ValidateStatus accepts "default" or an integer code in [100, 600).
func ValidateStatus(status Status) error {
	if status == "" {
		return newResponseStatusError("statusCode", "Status code cannot be undefined or null")
	}
	if status == StatusDefault {
		return nil
	}

	code, err := strconv.Atoi(string(status))
	if err != nil || Code(code) != status || code < 100 || code >= 600 {
		return newResponseStatusError("statusCode",
			fmt.Sprintf("Invalid HTTP status code %s. Must be between 100-599 or 'default'", status))
	}
	return nil
}

// fixedResponse builds a response for a known-valid code, falling back to
// the default description for that code.
func fixedResponse(code int, description string, schema *Schema) Responses {
	resp := &Response{Description: orDefault(description, responseDescriptions[code])}
	if schema != nil {
		resp.Content = mediaContent(defaultMediaTypes, schema, nil)
	}
	return Responses{strconv.Itoa(code): resp}
}

// SuccessResponse builds a 200 response.
func SuccessResponse(description string, schema *Schema) Responses {
	return fixedResponse(200, description, schema)
}

// CreatedResponse builds a 201 response.
func CreatedResponse(description string, schema *Schema) Responses {
	return fixedResponse(201, description, schema)
}

// NoContentResponse builds a 204 response without content.
func NoContentResponse(description string) Responses {
	return fixedResponse(204, description, nil)
}

// BadRequestResponse builds a 400 response.
func BadRequestResponse(description string, schema *Schema) Responses {
	return fixedResponse(400, description, schema)
}

// UnauthorizedResponse builds a 401 response.
func UnauthorizedResponse(description string, schema *Schema) Responses {
	return fixedResponse(401, description, schema)
}

// ForbiddenResponse builds a 403 response.
func ForbiddenResponse(description string, schema *Schema) Responses {
	return fixedResponse(403, description, schema)
}

// NotFoundResponse builds a 404 response.
func NotFoundResponse(description string, schema *Schema) Responses {
	return fixedResponse(404, description, schema)
}

// ConflictResponse builds a 409 response.
func ConflictResponse(description string, schema *Schema) Responses {
	return fixedResponse(409, description, schema)
}

// UnprocessableEntityResponse builds a 422 response.
func UnprocessableEntityResponse(description string, schema *Schema) Responses {
	return fixedResponse(422, description, schema)
}

// TooManyRequestsResponse builds a 429 response.
func TooManyRequestsResponse(description string, schema *Schema) Responses {
	return fixedResponse(429, description, schema)
}

// InternalServerErrorResponse builds a 500 response.
func InternalServerErrorResponse(description string, schema *Schema) Responses {
	return fixedResponse(500, description, schema)
}

// MergeResponses combines response maps into a new map. The merge is
// shallow: a later map replaces an earlier entry for the same status.
func MergeResponses(responses ...Responses) Responses {
	merged := make(Responses)
	for _, r := range responses {
		maps.Copy(merged, r)
	}
	return merged
}
