package preferences

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestOpenDatabase_CreatesSchema(t *testing.T) {
	db := setupDB(t)
	assert.True(t, tableExists(t, db, "goose_db_version"))
	assert.True(t, tableExists(t, db, "preferences"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "studeaf.db")

	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "preferences"))
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k1", []byte{0x01, 0x02}))

	v, err := r.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02}, v)
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSet_NilValueStoredAsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", nil))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Empty(t, v)
}

func TestDelete_ManyKeys(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, r.Set(ctx, k, []byte(k)))
	}
	require.NoError(t, r.Delete(ctx, "a", "c", "missing"))
	require.NoError(t, r.Delete(ctx))

	all, err := r.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"b": []byte("b")}, all)
}

func TestPrefixOperations(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "profile_full_name", []byte("Budi")))
	require.NoError(t, r.Set(ctx, "profile_institution", []byte("UI")))
	require.NoError(t, r.Set(ctx, "reg_email", []byte("a@b.c")))
	// LIKE wildcards in the prefix must not match.
	require.NoError(t, r.Set(ctx, "profileXfull", []byte("x")))

	got, err := r.List(ctx, "profile_")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, []byte("UI"), got["profile_institution"])

	require.NoError(t, r.DeletePrefix(ctx, "profile_"))

	got, err = r.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "reg_email")
	assert.Contains(t, got, "profileXfull")
}

func TestPrefixOperations_NonASCII(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "catatan_é_1", []byte("a")))
	require.NoError(t, r.Set(ctx, "catatan_é_2", []byte("b")))
	require.NoError(t, r.Set(ctx, "catatan_e_3", []byte("c")))

	got, err := r.List(ctx, "catatan_é_")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "catatan_é_1")
	assert.Contains(t, got, "catatan_é_2")

	require.NoError(t, r.DeletePrefix(ctx, "catatan_é_"))

	got, err = r.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"catatan_e_3": []byte("c")}, got)
}
