package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Parse registers command-line flags on the global FlagSet, so it can only
// run once per test binary.
func TestParse(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/velodesk_test")
	t.Setenv("ADMIN_EMAIL", "boss@velodesk.test")
	t.Setenv("VAPID_SUBJECT", "")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddress)
	assert.Equal(t, "postgres://localhost/velodesk_test", cfg.DatabaseURL)
	assert.Equal(t, "boss@velodesk.test", cfg.AdminEmail)
	assert.Equal(t, "mailto:admin@velodesk.local", cfg.VAPIDSubject)
}
