package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func keys() (string, string) {
	hash := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("h", 32)))
	block := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("b", 32)))
	return hash, block
}

func TestLoad_AppliesDefaults(t *testing.T) {
	hash, block := keys()
	path := writeConfig(t, `
[server]
http_port = 9090

[session]
hash_key = "`+hash+`"
block_key = "`+block+`"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, CatalogSourceStatic, cfg.Catalog.Source)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 2*time.Second, cfg.Booking.ResetDelay())
	assert.Equal(t, time.Hour, cfg.Session.TTL())
	assert.Equal(t, "525512345678", cfg.Contact.WhatsAppPhone)
}

func TestLoad_MissingSessionKeys(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_UnknownCatalogSource(t *testing.T) {
	hash, block := keys()
	path := writeConfig(t, `
[catalog]
source = "mongo"

[session]
hash_key = "`+hash+`"
block_key = "`+block+`"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate_ShortBlockKey(t *testing.T) {
	cfg := Default()
	cfg.Session.HashKey, _ = keys()
	cfg.Session.BlockKey = base64.StdEncoding.EncodeToString([]byte("short"))

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "hotel", Password: "secret", DBName: "site", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=hotel password=secret dbname=site sslmode=disable", d.DSN())
}
