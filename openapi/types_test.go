package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSchemaType(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		tests := []struct {
			name     string
			input    SchemaType
			expected string
		}{
			{"single type marshals as string", TypeString("string"), `"string"`},
			{"multiple types marshal as array", TypeArray("string", "null"), `["string","null"]`},
			{"empty type marshals as null", SchemaType{}, "null"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := json.Marshal(tt.input)
				require.NoError(t, err)
				assert.JSONEq(t, tt.expected, string(data))
			})
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			name     string
			input    string
			expected []string
			wantErr  bool
		}{
			{"single string", `"integer"`, []string{"integer"}, false},
			{"array", `["string","null"]`, []string{"string", "null"}, false},
			{"invalid", `123`, nil, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var st SchemaType
				err := json.Unmarshal([]byte(tt.input), &st)
				if tt.wantErr {
					assert.Error(t, err)
				} else {
					require.NoError(t, err)
					assert.Equal(t, tt.expected, st.Values())
				}
			})
		}
	})

	t.Run("yaml round trip", func(t *testing.T) {
		data, err := yaml.Marshal(map[string]SchemaType{"type": TypeArray("integer", "null")})
		require.NoError(t, err)

		var decoded map[string]SchemaType
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, []string{"integer", "null"}, decoded["type"].Values())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		var empty SchemaType
		assert.True(t, empty.IsEmpty())
		assert.True(t, empty.IsZero())
		assert.False(t, TypeString("string").IsEmpty())
	})
}

func TestSchemaJSON(t *testing.T) {
	t.Run("reference omits type", func(t *testing.T) {
		data, err := json.Marshal(SchemaRef("User"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"$ref":"#/components/schemas/User"}`, string(data))
	})

	t.Run("zero bounds are kept when set", func(t *testing.T) {
		data, err := json.Marshal(&Schema{Type: TypeString("integer"), Minimum: ptr(0.0)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"integer","minimum":0}`, string(data))
	})

	t.Run("IsRef", func(t *testing.T) {
		var nilSchema *Schema
		assert.False(t, nilSchema.IsRef())
		assert.False(t, StringSchema(StringConfig{}).IsRef())
		assert.True(t, SchemaRef("User").IsRef())
	})
}

func TestParameterJSON(t *testing.T) {
	data, err := json.Marshal(&Parameter{Name: "q", In: InQuery})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"q","in":"query","required":false}`, string(data))
}

func TestOperationJSON(t *testing.T) {
	data, err := json.Marshal(&Operation{Tags: []string{"Rest"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":["Rest"]}`, string(data))
}
