package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr string
	}{
		{
			name:  "empty",
			input: "",
			want:  map[string]any{},
		},
		{
			name: "all keys",
			input: `verbosity: debug
width: 100
color: never
azure-devops: true
`,
			want: map[string]any{
				"verbosity":    "debug",
				"width":        100,
				"color":        "never",
				"azure-devops": true,
			},
		},
		{
			name:    "unknown key",
			input:   "filter: Test_*\n",
			wantErr: "config validation failed",
		},
		{
			name:    "negative width",
			input:   "width: -1\n",
			wantErr: "config validation failed",
		},
		{
			name:    "bad color",
			input:   "color: sometimes\n",
			wantErr: "config validation failed",
		},
		{
			name:    "not yaml",
			input:   "width: [1\n",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoader(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		resolver, err := Loader(strings.NewReader("width: 42\n"))
		require.NoError(t, err)
		require.NotNil(t, resolver)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Loader(strings.NewReader("color: 3\n"))
		require.Error(t, err)
	})
}

func TestLookup(t *testing.T) {
	values := map[string]any{"width": 42, "azure-devops": true}
	assert.Equal(t, "42", lookup(values, "width"))
	assert.Equal(t, "true", lookup(values, "azure-devops"))
	assert.Nil(t, lookup(values, "color"))
}
