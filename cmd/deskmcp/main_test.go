package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "minimum length fully masked", token: "12345678", want: "********"},
		{name: "long token keeps the ends", token: "sd-9f8e7d6c5b4a3928", want: "sd-9***********3928"},
		{name: "nine characters", token: "123456789", want: "1234*6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maskToken(tt.token)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.token))
		})
	}
}

func TestReadTokenFromArg(t *testing.T) {
	got, err := readToken(&cobra.Command{}, []string{"sd-from-arg-123"})
	require.NoError(t, err)
	assert.Equal(t, "sd-from-arg-123", got)
}

func TestReadTokenFromStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader("  sd-piped-token-456\n"))

	got, err := readToken(cmd, nil)
	require.NoError(t, err)
	assert.Equal(t, "sd-piped-token-456", got)
}

func TestReadTokenEmptyStdin(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(""))

	_, err := readToken(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token provided")
}

func TestLoadConfigHonorsConfigFlag(t *testing.T) {
	t.Setenv("DESKMCP_BASE_URL", "")
	t.Setenv("DESKMCP_API_TOKEN", "")
	t.Setenv("DESKMCP_TIMEOUT", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: http://desk.example.com\napi_token: sd-test-token-1234\ntimeout: 12s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	orig := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = orig })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://desk.example.com", cfg.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.Timeout)
}
