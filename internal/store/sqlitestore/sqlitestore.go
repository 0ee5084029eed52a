// Package sqlitestore keeps memos in a local SQLite database.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/idilsaglam/pagedlist/internal/model"
	"github.com/idilsaglam/pagedlist/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS memos (
	id          TEXT PRIMARY KEY,
	content     TEXT NOT NULL,
	tags        TEXT NOT NULL DEFAULT '',
	pinned      INTEGER NOT NULL DEFAULT 0,
	archived    INTEGER NOT NULL DEFAULT 0,
	creator     TEXT NOT NULL DEFAULT '',
	create_time INTEGER NOT NULL,
	-- Unicode-folded copies for filtering; SQLite's lower() only folds ASCII.
	content_lc  TEXT NOT NULL DEFAULT '',
	tags_lc     TEXT NOT NULL DEFAULT '',
	creator_lc  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS memos_create_time ON memos (create_time DESC);
`

// Store is a store.Source backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open connects to the database at dsn and makes sure the schema exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert upserts items in one transaction.
func (s *Store) Insert(ctx context.Context, items ...model.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO memos
		(id, content, tags, pinned, archived, creator, create_time, content_lc, tags_lc, creator_lc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		tags := joinTags(it.Tags)
		if _, err := stmt.ExecContext(ctx,
			it.ID, it.Content, tags, it.Pinned, it.Archived, it.Creator, it.CreateTime.UnixNano(),
			strings.ToLower(it.Content), strings.ToLower(tags), strings.ToLower(it.Creator),
		); err != nil {
			return fmt.Errorf("insert %s: %w", it.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ListPage implements store.Source.
func (s *Store) ListPage(ctx context.Context, req model.PageRequest) (model.PageResponse, error) {
	if err := req.Validate(); err != nil {
		return model.PageResponse{}, err
	}
	offset, err := store.DecodeCursor(req.PageToken)
	if err != nil {
		return model.PageResponse{}, err
	}

	where, args := whereClause(store.ParseFilter(req.Filter))
	q := `SELECT id, content, tags, pinned, archived, creator, create_time FROM memos` +
		where + ` ORDER BY create_time DESC, id ASC LIMIT ? OFFSET ?`
	// One extra row tells whether another page exists.
	args = append(args, req.PageSize+1, offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return model.PageResponse{}, fmt.Errorf("query memos: %w", err)
	}
	defer rows.Close()

	items := make([]model.Item, 0, req.PageSize)
	for rows.Next() {
		var (
			it   model.Item
			tags string
			ts   int64
		)
		if err := rows.Scan(&it.ID, &it.Content, &tags, &it.Pinned, &it.Archived, &it.Creator, &ts); err != nil {
			return model.PageResponse{}, fmt.Errorf("scan memo: %w", err)
		}
		it.Tags = splitTags(tags)
		it.CreateTime = time.Unix(0, ts).UTC()
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return model.PageResponse{}, fmt.Errorf("iterate memos: %w", err)
	}

	resp := model.PageResponse{Items: items}
	if len(items) > req.PageSize {
		resp.Items = items[:req.PageSize]
		resp.NextPageToken = store.EncodeCursor(offset + req.PageSize)
	}
	return resp, nil
}

// whereClause matches against the *_lc columns with terms folded by
// strings.ToLower, the same folding store.Filter.Match uses.
func whereClause(f store.Filter) (string, []any) {
	conds := []string{"archived = ?"}
	args := []any{f.Archived}
	if f.Pinned {
		conds = append(conds, "pinned = 1")
	}
	if f.Creator != "" {
		conds = append(conds, "creator_lc = ?")
		args = append(args, strings.ToLower(f.Creator))
	}
	for _, t := range f.Tags {
		conds = append(conds, "instr(tags_lc, ?) > 0")
		args = append(args, ","+strings.ToLower(t)+",")
	}
	for _, w := range f.Words {
		conds = append(conds, "instr(content_lc, ?) > 0")
		args = append(args, strings.ToLower(w))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Tags are stored as ",a,b," so a whole tag can be matched with instr.
func joinTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "," + strings.Join(tags, ",") + ","
}

func splitTags(s string) []string {
	s = strings.Trim(s, ",")
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
