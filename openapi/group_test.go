package openapi

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteGroup(t *testing.T) {
	t.Run("tag from group applied", func(t *testing.T) {
		g := NewGroup(GroupConfig{Tag: "users"})

		route, err := g.Route(RouteConfig{Path: "/users", Method: MethodGet})
		require.NoError(t, err)
		assert.Equal(t, []string{"users"}, route["/users"][MethodGet].Tags)
	})

	t.Run("route tag wins", func(t *testing.T) {
		g := NewGroup(GroupConfig{Tag: "users"})

		route, err := g.Route(RouteConfig{Path: "/users/admin", Method: MethodGet, Tag: "admin"})
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, route["/users/admin"][MethodGet].Tags)
	})

	t.Run("security from group", func(t *testing.T) {
		g := NewGroup(GroupConfig{Security: []SecurityRequirement{{"basic": {}}}})

		route, err := g.Route(RouteConfig{Path: "/users", Method: MethodGet})
		require.NoError(t, err)

		op := route["/users"][MethodGet]
		require.Len(t, op.Security, 1)
		assert.Contains(t, op.Security[0], "basic")
	})

	t.Run("security override", func(t *testing.T) {
		g := NewGroup(GroupConfig{Security: []SecurityRequirement{{"basic": {}}}})

		route, err := g.Route(RouteConfig{
			Path:     "/users",
			Method:   MethodGet,
			Security: []SecurityRequirement{{"oauth2": {"read"}}},
		})
		require.NoError(t, err)

		op := route["/users"][MethodGet]
		require.Len(t, op.Security, 1)
		assert.Contains(t, op.Security[0], "oauth2")
	})

	t.Run("empty security override", func(t *testing.T) {
		g := NewGroup(GroupConfig{Security: []SecurityRequirement{{"basic": {}}}})

		route, err := g.Route(RouteConfig{Path: "/health", Method: MethodGet, Security: []SecurityRequirement{}})
		require.NoError(t, err)

		op := route["/health"][MethodGet]
		assert.NotNil(t, op.Security)
		assert.Empty(t, op.Security)

		data, err := json.Marshal(op)
		require.NoError(t, err)
		assert.JSONEq(t, `{"tags":["Rest"],"security":[]}`, string(data))
	})

	t.Run("parameters merge", func(t *testing.T) {
		tenant := HeaderParam(HeaderConfig{Name: "X-Tenant-ID", Required: true})
		g := NewGroup(GroupConfig{Parameters: []*Parameter{tenant}})

		route, err := g.Route(RouteConfig{
			Path:       "/users",
			Method:     MethodGet,
			Parameters: []*Parameter{PageQueryParam()},
		})
		require.NoError(t, err)

		params := route["/users"][MethodGet].Parameters
		require.Len(t, params, 2)
		assert.Equal(t, "X-Tenant-ID", params[0].Name)
		assert.Equal(t, "page", params[1].Name)
	})

	t.Run("group parameters not shared between routes", func(t *testing.T) {
		tenant := HeaderParam(HeaderConfig{Name: "X-Tenant-ID"})
		g := NewGroup(GroupConfig{Parameters: []*Parameter{tenant}})

		first, err := g.Route(RouteConfig{Path: "/a", Method: MethodGet, Parameters: []*Parameter{PageQueryParam()}})
		require.NoError(t, err)
		second, err := g.Route(RouteConfig{Path: "/b", Method: MethodGet, Parameters: []*Parameter{IDPathParam(IDPathConfig{})}})
		require.NoError(t, err)

		assert.Equal(t, "page", first["/a"][MethodGet].Parameters[1].Name)
		assert.Equal(t, "id", second["/b"][MethodGet].Parameters[1].Name)
	})

	t.Run("responses merge with route winning", func(t *testing.T) {
		g := NewGroup(GroupConfig{
			Responses: MergeResponses(
				UnauthorizedResponse("", nil),
				NotFoundResponse("Group not found", nil),
			),
		})

		route, err := g.Route(RouteConfig{
			Path:      "/users/{id}",
			Method:    MethodGet,
			Responses: MergeResponses(SuccessResponse("", nil), NotFoundResponse("User not found", nil)),
		})
		require.NoError(t, err)

		responses := route["/users/{id}"][MethodGet].Responses
		assert.Len(t, responses, 3)
		assert.Equal(t, "User not found", responses["404"].Description)
		assert.Contains(t, responses, "401")
	})

	t.Run("invalid route", func(t *testing.T) {
		g := NewGroup(GroupConfig{Tag: "users"})

		_, err := g.Route(RouteConfig{Path: "users", Method: MethodGet})
		var routeErr *RouteValidationError
		assert.True(t, errors.As(err, &routeErr))
	})
}

func TestRouteGroupRoutes(t *testing.T) {
	g := NewGroup(GroupConfig{Tag: "users"})

	t.Run("all valid", func(t *testing.T) {
		fragments, err := g.Routes(
			RouteConfig{Path: "/users", Method: MethodGet},
			RouteConfig{Path: "/users", Method: MethodPost},
		)
		require.NoError(t, err)
		require.Len(t, fragments, 2)

		doc, err := NewDocument(DocumentConfig{BaseURL: "api.example.com", Routes: fragments})
		require.NoError(t, err)
		assert.Len(t, doc.Paths["/users"], 2)
	})

	t.Run("stops at first error", func(t *testing.T) {
		fragments, err := g.Routes(
			RouteConfig{Path: "/users", Method: MethodGet},
			RouteConfig{Path: "/users", Method: "GET"},
		)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, fragments)
	})
}
