package migrations

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolapi/internal/db"
)

func TestMigrateIsIdempotent(t *testing.T) {
	database, err := db.OpenSQLite(":memory:?_foreign_keys=on")
	require.NoError(t, err)
	defer database.Close()

	m := NewMigrator(database, zerolog.Nop())

	applied, err := m.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql"}, applied)

	applied, err = m.Migrate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, applied)

	for _, table := range []string{"users", "teachers", "students", "courses", "enrollments", "fees"} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestEmbeddedDialectsMatch(t *testing.T) {
	pg, err := migrationFiles.ReadDir("postgres")
	require.NoError(t, err)
	lite, err := migrationFiles.ReadDir("sqlite")
	require.NoError(t, err)

	require.Equal(t, len(pg), len(lite))
	for i := range pg {
		assert.Equal(t, pg[i].Name(), lite[i].Name())
	}
}
