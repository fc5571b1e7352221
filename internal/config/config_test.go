package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
Network = "celo-testnet"

[Verification]
Endpoint = "https://api.example.com"
Scope = "example-app"
UserIdType = "uuid"

[Policy]
MinimumAge = 18
ExcludedCountries = ["IRN", "PRK"]
PassportNoOfac = true

[Log]
Level = 0
Mode = 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "celo-testnet", cfg.Network)
	assert.Equal(t, "https://api.example.com", cfg.Verification.Endpoint)
	assert.Equal(t, "example-app", cfg.Verification.Scope)
	assert.Equal(t, 18, cfg.Policy.MinimumAge)
	assert.Equal(t, []string{"IRN", "PRK"}, cfg.Policy.ExcludedCountries)
	assert.True(t, cfg.Policy.PassportNoOFAC)
	assert.False(t, cfg.Policy.NameAndDobOFAC)
}

func TestSanitize(t *testing.T) {
	valid := func() *Configuration {
		return &Configuration{
			Verification: Verification{
				Endpoint:   "https://api.example.com",
				Scope:      "example-app",
				UserIDType: "uuid",
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid().sanitize())
	})

	t.Run("missing scope", func(t *testing.T) {
		cfg := valid()
		cfg.Verification.Scope = ""
		require.Error(t, cfg.sanitize())
	})

	t.Run("missing endpoint", func(t *testing.T) {
		cfg := valid()
		cfg.Verification.Endpoint = ""
		require.Error(t, cfg.sanitize())
	})

	t.Run("unknown user id type", func(t *testing.T) {
		cfg := valid()
		cfg.Verification.UserIDType = "base58"
		require.Error(t, cfg.sanitize())
	})
}
