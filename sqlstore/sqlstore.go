// Package sqlstore keeps project translations in a SQL table, one row per
// language and key. Each language is exposed as an i18n.Resource.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	i18n "github.com/lifei6671/i18nproject"
)

const schema = `
CREATE TABLE IF NOT EXISTS translation (
    lang     TEXT NOT NULL,
    msg_key  TEXT NOT NULL,
    msg_text TEXT NOT NULL,
    PRIMARY KEY (lang, msg_key)
)`

// Store provides the resources of one translation table.
type Store struct {
	db *sqlx.DB
}

type row struct {
	Key  string `db:"msg_key"`
	Text string `db:"msg_text"`
}

// Open connects to the database. The driver must be registered by the
// caller, e.g. by importing github.com/mattn/go-sqlite3.
func Open(driver, dsn string) (*Store, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: connect %s: %w", driver, err)
	}
	return New(db), nil
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) DB() *sqlx.DB { return s.db }

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the translation table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Languages returns the languages present in the table, in display order.
func (s *Store) Languages(ctx context.Context) ([]i18n.Language, error) {
	var codes []string
	if err := s.db.SelectContext(ctx, &codes, `SELECT DISTINCT lang FROM translation`); err != nil {
		return nil, err
	}
	langs := make([]i18n.Language, 0, len(codes))
	for _, code := range codes {
		lang, err := i18n.ParseLanguage(code)
		if err != nil {
			return nil, err
		}
		langs = append(langs, lang)
	}
	i18n.SortLanguages(langs)
	return langs, nil
}

// Resource is the i18n.Resource of one language of a Store.
type Resource struct {
	*i18n.MemoryResource
	store *Store
}

// Resource loads the rows of lang. Changes are written back on commit.
func (s *Store) Resource(ctx context.Context, lang i18n.Language, opts ...i18n.MemoryOption) (*Resource, error) {
	texts, err := s.load(ctx, lang)
	if err != nil {
		return nil, err
	}
	r := &Resource{store: s}
	opts = append([]i18n.MemoryOption{i18n.WithCommitter(i18n.CommitterFunc(s.commit))}, opts...)
	r.MemoryResource = i18n.NewMemoryResource(lang, texts, opts...)
	return r, nil
}

// Resources loads a resource for every language in the table.
func (s *Store) Resources(ctx context.Context, opts ...i18n.MemoryOption) ([]*Resource, error) {
	langs, err := s.Languages(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Resource, 0, len(langs))
	for _, lang := range langs {
		r, err := s.Resource(ctx, lang, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Reload re-reads the rows and reports the differences as one change. Keys
// with uncommitted edits are left as edited.
func (r *Resource) Reload(ctx context.Context) error {
	texts, err := r.store.load(ctx, r.Language())
	if err != nil {
		return err
	}
	r.Replace(texts)
	return nil
}

func (s *Store) load(ctx context.Context, lang i18n.Language) (map[string]string, error) {
	var rows []row
	query := s.db.Rebind(`SELECT msg_key, msg_text FROM translation WHERE lang = ?`)
	if err := s.db.SelectContext(ctx, &rows, query, lang.String()); err != nil {
		return nil, fmt.Errorf("sqlstore: load %s: %w", lang, err)
	}
	texts := make(map[string]string, len(rows))
	for _, r := range rows {
		texts[r.Key] = r.Text
	}
	return texts, nil
}

// commit writes the dirty keys of one language in a single transaction.
func (s *Store) commit(ctx context.Context, lang i18n.Language, texts map[string]string, dirty []string) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
				err = errors.Join(err, rerr)
			}
		}
	}()

	upsert := tx.Rebind(`INSERT INTO translation (lang, msg_key, msg_text) VALUES (?, ?, ?)
ON CONFLICT (lang, msg_key) DO UPDATE SET msg_text = excluded.msg_text`)
	del := tx.Rebind(`DELETE FROM translation WHERE lang = ? AND msg_key = ?`)

	for _, key := range dirty {
		if text, ok := texts[key]; ok {
			_, err = tx.ExecContext(ctx, upsert, lang.String(), key, text)
		} else {
			_, err = tx.ExecContext(ctx, del, lang.String(), key)
		}
		if err != nil {
			return fmt.Errorf("sqlstore: write %s/%s: %w", lang, key, err)
		}
	}
	return tx.Commit()
}
