package openapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		doc, err := NewDocument(DocumentConfig{BaseURL: "api.example.com"})
		require.NoError(t, err)

		assert.Equal(t, "3.1.0", doc.OpenAPI)
		assert.Equal(t, "API Documentation", doc.Info.Title)
		assert.Equal(t, "API documentation generated with api-opener", doc.Info.Description)
		assert.Equal(t, "1.0.0", doc.Info.Version)
		assert.Equal(t, []Server{{URL: "https://api.example.com", Description: "API Server"}}, doc.Servers)
		assert.NotNil(t, doc.Tags)
		assert.Empty(t, doc.Tags)
		assert.NotNil(t, doc.Paths)
		assert.Empty(t, doc.Paths)
		assert.Nil(t, doc.Components)
	})

	t.Run("metadata", func(t *testing.T) {
		doc, err := NewDocument(DocumentConfig{
			Title:          "Users API",
			Description:    "Manage users",
			Version:        "2.0.0",
			BaseURL:        "http://localhost:8080",
			Tags:           []Tag{{Name: "Users", Description: "User operations"}},
			Contact:        &Contact{Name: "API Team", Email: "api@example.com"},
			License:        &License{Name: "MIT"},
			TermsOfService: "https://example.com/terms",
		})
		require.NoError(t, err)

		assert.Equal(t, "Users API", doc.Info.Title)
		assert.Equal(t, "Manage users", doc.Info.Description)
		assert.Equal(t, "2.0.0", doc.Info.Version)
		assert.Equal(t, "http://localhost:8080", doc.Servers[0].URL)
		assert.Equal(t, "API Team", doc.Info.Contact.Name)
		assert.Equal(t, "MIT", doc.Info.License.Name)
		assert.Equal(t, "https://example.com/terms", doc.Info.TermsOfService)
		require.Len(t, doc.Tags, 1)
		assert.Equal(t, "Users", doc.Tags[0].Name)
	})

	t.Run("routes merged", func(t *testing.T) {
		doc, err := NewDocument(DocumentConfig{
			BaseURL: "api.example.com",
			Routes: []Paths{
				mustRoute(t, RouteConfig{Path: "/users", Method: MethodGet}),
				mustRoute(t, RouteConfig{Path: "/users", Method: MethodPost}),
				mustRoute(t, RouteConfig{Path: "/users/{id}", Method: MethodDelete}),
			},
		})
		require.NoError(t, err)

		require.Len(t, doc.Paths, 2)
		assert.Len(t, doc.Paths["/users"], 2)
		assert.Contains(t, doc.Paths["/users/{id}"], MethodDelete)
	})

	t.Run("components only with definitions", func(t *testing.T) {
		schemes := map[string]*SecurityScheme{
			"bearerAuth": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
		}

		doc, err := NewDocument(DocumentConfig{BaseURL: "api.example.com", SecuritySchemes: schemes})
		require.NoError(t, err)
		assert.Nil(t, doc.Components)

		doc, err = NewDocument(DocumentConfig{
			BaseURL:         "api.example.com",
			Definitions:     map[string]*Schema{"User": CommonObjectSchemas.Error()},
			Responses:       map[string]*Response{"NotFound": NotFoundResponse("", nil)["404"]},
			SecuritySchemes: schemes,
		})
		require.NoError(t, err)
		require.NotNil(t, doc.Components)
		assert.Contains(t, doc.Components.Schemas, "User")
		assert.Contains(t, doc.Components.Responses, "NotFound")
		assert.Contains(t, doc.Components.SecuritySchemes, "bearerAuth")
	})

	t.Run("empty definitions still emit components", func(t *testing.T) {
		doc, err := NewDocument(DocumentConfig{BaseURL: "api.example.com", Definitions: map[string]*Schema{}})
		require.NoError(t, err)
		require.NotNil(t, doc.Components)

		data, err := doc.JSON()
		require.NoError(t, err)

		var parsed map[string]any
		require.NoError(t, json.Unmarshal(data, &parsed))
		assert.Equal(t, map[string]any{}, parsed["components"])
	})

	t.Run("missing base url", func(t *testing.T) {
		doc, err := NewDocument(DocumentConfig{Title: "x"})
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, ErrValidation)

		var docErr *DocumentValidationError
		require.True(t, errors.As(err, &docErr))
		assert.Equal(t, "baseUrl", docErr.Field)
		assert.EqualError(t, err, "document: baseUrl: Base URL cannot be empty")
	})

	t.Run("debug logging", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := NewDocument(DocumentConfig{
			BaseURL: "api.example.com",
			Logger:  logger,
			Routes: []Paths{
				mustRoute(t, RouteConfig{Path: "/users", Method: MethodGet, Summary: "a"}),
				mustRoute(t, RouteConfig{Path: "/users", Method: MethodGet, Summary: "b"}),
			},
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "merging duplicate operation")
		assert.Contains(t, out, "path=/users")
		assert.Contains(t, out, "openapi document assembled")
		assert.Contains(t, out, "fragments=2")
	})
}

func TestNormalizeServerURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare host", "api.example.com", "https://api.example.com"},
		{"bare host with path", "api.example.com/v1", "https://api.example.com/v1"},
		{"https kept", "https://api.example.com", "https://api.example.com"},
		{"http kept", "http://localhost:8080", "http://localhost:8080"},
		{"surrounding space", "  api.example.com ", "https://api.example.com"},
		{"idn host", "bücher.example", "https://xn--bcher-kva.example"},
		{"idn host with port and path", "https://münchen.de:8443/api", "https://xn--mnchen-3ya.de:8443/api"},
		{"http-prefixed host left alone", "httpbin.org", "httpbin.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeServerURL(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("empty", func(t *testing.T) {
		for _, input := range []string{"", "   "} {
			_, err := NormalizeServerURL(input)
			assert.ErrorIs(t, err, ErrValidation)
		}
	})
}
