package db

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnTypes replays the CREATE TABLE and ALTER COLUMN ... TYPE statements of
// every up migration, in order, and returns the last declared type of each
// registrations column.
func columnTypes(t *testing.T) map[string]string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	sort.Strings(files)

	create := regexp.MustCompile(`(?m)^\s+([a-z_]+)\s+(UUID|TEXT|TIMESTAMPTZ|VARCHAR\(\d+\))`)
	alter := regexp.MustCompile(`ALTER COLUMN\s+([a-z_]+)\s+TYPE\s+(TEXT|VARCHAR\(\d+\))`)

	types := map[string]string{}
	for _, f := range files {
		raw, err := os.ReadFile(f)
		require.NoError(t, err)
		sql := string(raw)
		if strings.Contains(sql, "CREATE TABLE IF NOT EXISTS registrations") {
			for _, m := range create.FindAllStringSubmatch(sql, -1) {
				types[m[1]] = m[2]
			}
		}
		if strings.Contains(sql, "ALTER TABLE registrations") {
			for _, m := range alter.FindAllStringSubmatch(sql, -1) {
				types[m[1]] = m[2]
			}
		}
	}
	return types
}

func TestMigrations_RegistrationInputColumnsAreUnbounded(t *testing.T) {
	types := columnTypes(t)

	// Form rules only set minimum lengths, so nothing the client accepts may
	// be cut off by the column type.
	userColumns := []string{
		"email", "phone", "first_name", "last_name", "gender", "nin_number",
		"address", "business_name", "business_type", "cac_number", "business_location",
	}
	for _, col := range userColumns {
		assert.Equal(t, "TEXT", types[col], "column %s", col)
	}
}

func TestMigrations_EveryUpHasDown(t *testing.T) {
	ups, err := filepath.Glob(filepath.Join("migrations", "*.up.sql"))
	require.NoError(t, err)
	for _, up := range ups {
		down := strings.TrimSuffix(up, ".up.sql") + ".down.sql"
		_, err := os.Stat(down)
		assert.NoError(t, err, "missing %s", down)
	}
}
