package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoik/topup/internal/schema"
)

const usersJSON = `[
  {"id": 1, "first_name": "A", "last_name": "Zed", "email": "a@x.com",
   "company_id": 1, "email_status": true, "active_status": true, "tokens": 10},
  {"id": 2, "first_name": "B", "last_name": "Ant", "email": "b@x.com",
   "company_id": 1, "email_status": false, "active_status": true, "tokens": 20}
]`

const companiesJSON = `[
  {"id": 1, "name": "Acme", "top_up": 5, "email_status": true}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var lerr *Error
	require.ErrorAs(t, err, &lerr)
	return lerr.Kind
}

func TestLoad(t *testing.T) {
	t.Run("missing file is NotFound", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"), schema.Users)
		assert.Equal(t, NotFound, kindOf(t, err))
	})

	t.Run("unreadable path is ReadFailure", func(t *testing.T) {
		// A directory exists but cannot be read as a file.
		_, err := Load(t.TempDir(), schema.Users)
		assert.Equal(t, ReadFailure, kindOf(t, err))
	})

	t.Run("invalid json is ParseFailure", func(t *testing.T) {
		path := writeFile(t, "users.json", `[{"id": 1,]`)
		_, err := Load(path, schema.Users)
		assert.Equal(t, ParseFailure, kindOf(t, err))
	})

	t.Run("missing field is SchemaViolation", func(t *testing.T) {
		path := writeFile(t, "users.json", `[{"id": 1}]`)
		_, err := Load(path, schema.Users)
		assert.Equal(t, SchemaViolation, kindOf(t, err))
	})

	t.Run("non-array top level is SchemaViolation", func(t *testing.T) {
		path := writeFile(t, "users.json", `{"id": 1}`)
		_, err := Load(path, schema.Users)
		assert.Equal(t, SchemaViolation, kindOf(t, err))
	})

	t.Run("error names the file", func(t *testing.T) {
		path := writeFile(t, "users.json", `[{"id": 1}]`)
		_, err := Load(path, schema.Users)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestLoadUsers(t *testing.T) {
	path := writeFile(t, "users.json", usersJSON)

	users, err := LoadUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, "Zed", users[0].LastName)
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.True(t, users[0].EmailStatus)
	assert.Equal(t, int64(20), users[1].Tokens)
	assert.False(t, users[1].EmailStatus)
}

func TestLoadCompanies(t *testing.T) {
	path := writeFile(t, "companies.json", companiesJSON)

	companies, err := LoadCompanies(path)
	require.NoError(t, err)
	require.Len(t, companies, 1)

	assert.Equal(t, int64(1), companies[0].ID)
	assert.Equal(t, "Acme", companies[0].Name)
	assert.Equal(t, int64(5), companies[0].TopUp)
	assert.True(t, companies[0].EmailStatus)
}
