package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateClean(t *testing.T) {
	results, err := NewValidator(writeConfig(t, "color = \"always\"\n")).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		errors   int
		warnings []string
	}{
		{
			name:     "bad color",
			content:  "color = \"rainbow\"\n",
			errors:   1,
			warnings: nil,
		},
		{
			name:     "unknown key",
			content:  "color = \"auto\"\nbust = 22\n",
			warnings: []string{"unknown key: bust"},
		},
		{
			name:     "missing color",
			content:  "",
			warnings: []string{"color is not set, using \"auto\""},
		},
		{
			name:     "fixed seed",
			content:  "color = \"never\"\nseed = 5\n",
			warnings: []string{"seed is fixed to 5, every round deals the same cards"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := NewValidator(writeConfig(t, tt.content)).Validate()
			require.NoError(t, err)
			assert.Len(t, results.Errors, tt.errors)
			assert.Equal(t, tt.warnings, results.Warnings)
		})
	}
}

func TestValidateMissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate()
	assert.ErrorContains(t, err, "config file not found")
}

func TestValidateNotToml(t *testing.T) {
	_, err := NewValidator(writeConfig(t, "this is = = not toml")).Validate()
	assert.Error(t, err)
}
