package openapi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("single operation fragment", func(t *testing.T) {
		body, err := NewRequestBody(RequestBodyConfig{Ref: "#/components/schemas/User"})
		require.NoError(t, err)

		route, err := NewRoute(RouteConfig{
			Path:        "/users/{id}",
			Method:      MethodPut,
			Tag:         "Users",
			Summary:     "Update user",
			OperationID: "updateUser",
			Parameters:  []*Parameter{IDPathParam(IDPathConfig{})},
			RequestBody: body,
			Responses:   SuccessResponse("", SchemaRef("User")),
			Security:    []SecurityRequirement{{"bearerAuth": {}}},
		})
		require.NoError(t, err)
		require.Len(t, route, 1)
		require.Len(t, route["/users/{id}"], 1)

		op := route["/users/{id}"][MethodPut]
		require.NotNil(t, op)
		assert.Equal(t, []string{"Users"}, op.Tags)
		assert.Equal(t, "Update user", op.Summary)
		assert.Equal(t, "updateUser", op.OperationID)
		assert.Same(t, body, op.RequestBody)
		assert.Len(t, op.Parameters, 1)
		assert.Contains(t, op.Responses, "200")
	})

	t.Run("default tag", func(t *testing.T) {
		route, err := NewRoute(RouteConfig{Path: "/health", Method: MethodGet})
		require.NoError(t, err)
		assert.Equal(t, []string{"Rest"}, route["/health"][MethodGet].Tags)
	})

	t.Run("json shape", func(t *testing.T) {
		route, err := NewRoute(RouteConfig{
			Path:      "/ping",
			Method:    MethodGet,
			Responses: NoContentResponse(""),
		})
		require.NoError(t, err)

		data, err := json.Marshal(route)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"/ping": {
				"get": {
					"tags": ["Rest"],
					"responses": {"204": {"description": "No Content"}}
				}
			}
		}`, string(data))
	})
}

func TestNewRouteErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		method  string
		field   string
		message string
	}{
		{"empty path", "", MethodGet, "route", "Route cannot be empty"},
		{"missing leading slash", "users", MethodGet, "route", "must start with a forward slash"},
		{"angle bracket parameter", "/users/<id>", MethodGet, "route", "invalid characters"},
		{"empty parameter name", "/users/{}", MethodGet, "route", "Path parameter name cannot be empty"},
		{"blank parameter name", "/users/{ }", MethodGet, "route", "Path parameter name cannot be empty"},
		{"invalid parameter name", "/users/{user.id}", MethodGet, "route", `Invalid path parameter name "user.id"`},
		{"upper case method", "/users", "GET", "method", `Invalid HTTP method "GET"`},
		{"unknown method", "/users", "INVALID", "method", "Must be one of: get, post, put, patch, delete"},
		{"unsupported method", "/users", "head", "method", `Invalid HTTP method "head"`},
		{"empty method", "/users", "", "method", "Invalid HTTP method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, err := NewRoute(RouteConfig{Path: tt.path, Method: tt.method})
			require.Error(t, err)
			assert.Nil(t, route)
			assert.ErrorIs(t, err, ErrValidation)

			var routeErr *RouteValidationError
			require.True(t, errors.As(err, &routeErr))
			assert.Equal(t, tt.field, routeErr.Field)
			assert.Contains(t, routeErr.Message, tt.message)
		})
	}
}

func TestValidatePath(t *testing.T) {
	valid := []string{
		"/",
		"/users",
		"/users/{id}",
		"/users/{user_id}/posts/{post-id}",
		"/files/{name}.json",
	}
	for _, path := range valid {
		t.Run(path, func(t *testing.T) {
			assert.NoError(t, ValidatePath(path))
		})
	}
}
