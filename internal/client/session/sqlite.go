package session

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/ARKNravi/Gelatik/internal/client/repositories/preferences"
	"github.com/ARKNravi/Gelatik/internal/cryptox"
	"github.com/ARKNravi/Gelatik/internal/dbx"
	"github.com/ARKNravi/Gelatik/internal/filex"
)

const (
	databaseFile = "studeaf.db"
	keyFile      = "store.key"
)

// SQLiteStore keeps values in the local preferences table, sealed with a
// per-installation key. The storage key is bound as additional data so a
// value cannot be moved to another key.
type SQLiteStore struct {
	repo   preferences.Repository
	sealer *cryptox.Sealer
	db     *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(repo preferences.Repository, sealer *cryptox.Sealer) *SQLiteStore {
	return &SQLiteStore{repo: repo, sealer: sealer}
}

// OpenSQLiteStore prepares dataDir, loads or creates the sealing key and
// opens the migrated database inside it.
func OpenSQLiteStore(ctx context.Context, dataDir string) (*SQLiteStore, error) {
	dir, err := filex.EnsureDir(dataDir)
	if err != nil {
		return nil, err
	}

	key, err := cryptox.LoadOrCreateKey(filepath.Join(dir, keyFile))
	if err != nil {
		return nil, err
	}
	sealer, err := cryptox.NewSealer(key)
	if err != nil {
		return nil, err
	}

	db, err := preferences.OpenDatabase(ctx, filepath.Join(dir, databaseFile))
	if err != nil {
		return nil, err
	}

	s := NewSQLiteStore(preferences.NewSQLiteRepository(db), sealer)
	s.db = db
	return s, nil
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	v, _, err := s.Get(ctx, KeyToken)
	return v, err
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.Set(ctx, KeyToken, token)
}

func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	return s.Delete(ctx, KeyToken)
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	sealed, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if sealed == nil {
		return "", false, nil
	}

	plain, err := s.sealer.Open(sealed, []byte(key))
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", key, err)
	}
	return string(plain), true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	sealed, err := s.sealer.Seal([]byte(value), []byte(key))
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, sealed)
}

// SetMany seals every value first and then writes them in one transaction.
// A store built over a bare repository writes them one by one.
func (s *SQLiteStore) SetMany(ctx context.Context, values map[string]string) error {
	sealed := make(map[string][]byte, len(values))
	for k, v := range values {
		b, err := s.sealer.Seal([]byte(v), []byte(k))
		if err != nil {
			return fmt.Errorf("seal %s: %w", k, err)
		}
		sealed[k] = b
	}

	write := func(ctx context.Context, repo preferences.Repository) error {
		for k, b := range sealed {
			if err := repo.Set(ctx, k, b); err != nil {
				return err
			}
		}
		return nil
	}

	if s.db == nil {
		return write(ctx, s.repo)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return write(ctx, preferences.NewSQLiteRepository(tx))
	})
}

func (s *SQLiteStore) Delete(ctx context.Context, keys ...string) error {
	return s.repo.Delete(ctx, keys...)
}

func (s *SQLiteStore) DeletePrefix(ctx context.Context, prefix string) error {
	return s.repo.DeletePrefix(ctx, prefix)
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
