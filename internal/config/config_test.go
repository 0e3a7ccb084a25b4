package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCredentials(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const serviceAccount = `{
	"type": "service_account",
	"project_id": "daycare-test",
	"client_email": "svc@daycare-test.invalid",
	"db_user": "daycare",
	"db_password": "secret"
}`

func TestLoadWithCredentialsPath(t *testing.T) {
	path := writeCredentials(t, t.TempDir(), "creds.json", serviceAccount)
	t.Setenv("CREDENTIALS_PATH", path)
	t.Setenv("DB_DATABASE", "daycare")
	t.Setenv("DB_CONNECTION_LIMIT", "12")
	t.Setenv("DB_TYPE", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Equal(t, 12, cfg.DBConnectionLimit)
	assert.Equal(t, "daycare", cfg.Credentials.DBUser)
	assert.Equal(t, "secret", cfg.Credentials.DBPassword)
	assert.Equal(t, "daycare-test", cfg.Credentials.ProjectID)
}

func TestLoadDefaultsCredentialsByEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeCredentials(t, dir, filepath.Join("credentials", "staging.json"), serviceAccount)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("CREDENTIALS_PATH", "")
	t.Setenv("APP_ENV", "staging")
	t.Setenv("DB_DATABASE", "daycare")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("credentials", "staging.json"), cfg.CredentialsPath)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadRequiresDatabase(t *testing.T) {
	t.Setenv("DB_DATABASE", "")
	_, err := Load()
	assert.ErrorContains(t, err, "DB_DATABASE is required")
}

func TestLoadCredentialsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCredentials(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read credentials")

	_, err = LoadCredentials(writeCredentials(t, dir, "bad.json", `{not json`))
	assert.ErrorContains(t, err, "failed to parse credentials")

	_, err = LoadCredentials(writeCredentials(t, dir, "user.json", `{"type": "authorized_user"}`))
	assert.ErrorContains(t, err, "type must be service_account")
}

func TestGetEnvAsIntFallsBack(t *testing.T) {
	t.Setenv("DB_CONNECTION_LIMIT", "many")
	assert.Equal(t, 5, getEnvAsInt("DB_CONNECTION_LIMIT", 5))
}
