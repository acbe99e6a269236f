package profile

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/critter-arena/internal/entities"
	"github.com/KirkDiggler/critter-arena/internal/errors"
	"github.com/KirkDiggler/critter-arena/internal/pkg/clock"
)

//go:embed migrations/*.sql
var migrations embed.FS

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// SQLiteConfig contains configuration for the SQLite profile repository
type SQLiteConfig struct {
	// Path is the database file. ":memory:" is not supported since every
	// pooled connection would see its own database.
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(cfg.Path) == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// SQLiteRepository is a profile repository backed by a SQLite file
type SQLiteRepository interface {
	Repository
	Close() error
}

// NewSQLite opens the database and applies the embedded migrations
func NewSQLite(cfg *SQLiteConfig) (SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	dsn := filepath.Clean(cfg.Path) +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db")
	}
	// single writer
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to ping sqlite db")
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &sqliteRepository{db: db, clock: c}, nil
}

func migrate(db *sql.DB) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return errors.Wrapf(err, "failed to list migrations")
	}
	sort.Strings(names)

	for _, name := range names {
		stmt, err := migrations.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", name)
		}
		if _, err := db.Exec(string(stmt)); err != nil {
			return errors.Wrapf(err, "failed to apply migration %s", name)
		}
	}
	return nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	p, err := r.load(ctx, input.UserID)
	if err == nil {
		return &GetOutput{Profile: p}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	fresh := entities.NewProfile(input.UserID, r.clock.Now())
	data, err := json.Marshal(fresh)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, data, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO NOTHING`,
		fresh.UserID, string(data), fresh.Version, toMillis(fresh.CreatedAt), toMillis(fresh.UpdatedAt),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create profile")
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		// another caller created it first
		p, err := r.load(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		return &GetOutput{Profile: p}, nil
	}

	slog.InfoContext(ctx, "created profile", "user_id", input.UserID, "store", "sqlite")
	return &GetOutput{Profile: fresh, Created: true}, nil
}

func (r *sqliteRepository) load(ctx context.Context, userID string) (*entities.Profile, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM profiles WHERE user_id = ?`, userID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("profile %s not found", userID)
		}
		return nil, errors.Wrapf(err, "failed to get profile")
	}
	return decode([]byte(data))
}

func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	next := prepare(input.Profile, r.clock)
	data, err := json.Marshal(next)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`UPDATE profiles SET data = ?, version = ?, updated_at = ?
		 WHERE user_id = ? AND version = ?`,
		string(data), next.Version, toMillis(next.UpdatedAt), next.UserID, input.Profile.Version,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save profile")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save profile")
	}
	if n == 0 {
		var stored int64
		err := tx.QueryRowContext(ctx, `SELECT version FROM profiles WHERE user_id = ?`, next.UserID).Scan(&stored)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("profile %s not found", next.UserID)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read profile version")
		}
		return nil, errors.Abortedf(errVersionChanged, next.UserID, input.Profile.Version, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit profile")
	}
	return &SaveOutput{Profile: next}, nil
}
