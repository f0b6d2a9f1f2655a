package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		expected Category
		ok       bool
	}{
		{"int", CategoryIntegration, true},
		{"dev", CategoryIntegration, true},
		{"development", CategoryIntegration, true},
		{"demo", CategoryDemo, true},
		{"prod", CategoryProduction, true},
		{"production", CategoryProduction, true},
		{"other", CategoryOther, true},
		{"", 0, false},
		{"no-env", 0, false},
		{"Production", 0, false},
		{"DEMO", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, ok := Classify(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, category)
			}
			assert.Equal(t, tt.ok, IsValidEnvironment(tt.name))
		})
	}
}

func TestAliasTableInvariants(t *testing.T) {
	seen := map[string]Category{}
	for _, c := range Categories() {
		aliases := c.Aliases()
		require.NotEmpty(t, aliases, c.String())
		for _, alias := range aliases {
			assert.Equal(t, strings.ToLower(alias), alias)
			owner, dup := seen[alias]
			assert.False(t, dup, "alias %q shared by %s and %s", alias, owner, c)
			seen[alias] = c
		}
	}
	assert.Len(t, ValidEnvironments(), len(seen))
}

func TestAliasesReturnsCopy(t *testing.T) {
	aliases := CategoryProduction.Aliases()
	aliases[0] = "staging"
	assert.True(t, CategoryProduction.Has("prod"))
	assert.False(t, CategoryProduction.Has("staging"))
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("prod")
	require.NoError(t, err)
	assert.Equal(t, CategoryProduction, c)
	assert.Equal(t, "prod", c.String())

	_, err = ParseCategory("production")
	require.ErrorIs(t, err, ErrUnknownCategory)

	_, err = ParseCategory("staging")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestUnknownCategoryPanics(t *testing.T) {
	assert.Panics(t, func() { Category(42).Has("int") })
	assert.Equal(t, "Category(42)", Category(42).String())
}
