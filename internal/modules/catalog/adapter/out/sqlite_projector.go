package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tonica/internal/modules/catalog/domain"
	catalogout "tonica/internal/modules/catalog/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteItemProjector struct {
	db *sql.DB
}

func NewSQLiteItemProjector(dbPath string) (catalogout.IndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteItemProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteItemProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS items (
  id TEXT PRIMARY KEY,
  type TEXT NOT NULL,
  title TEXT NOT NULL,
  subtitle TEXT,
  category TEXT,
  level TEXT,
  xp INTEGER,
  track_order REAL,
  repeat TEXT,
  lesson_count INTEGER,
  reading_minutes INTEGER
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create items table: %w", err)
	}
	return nil
}

func (s *SQLiteItemProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("reset items: %w", err)
	}
	return nil
}

func (s *SQLiteItemProjector) UpsertItem(ctx context.Context, item domain.Item) error {
	const stmt = `
INSERT INTO items (id, type, title, subtitle, category, level, xp, track_order, repeat, lesson_count, reading_minutes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  type=excluded.type,
  title=excluded.title,
  subtitle=excluded.subtitle,
  category=excluded.category,
  level=excluded.level,
  xp=excluded.xp,
  track_order=excluded.track_order,
  repeat=excluded.repeat,
  lesson_count=excluded.lesson_count,
  reading_minutes=excluded.reading_minutes;
`
	_, err := s.db.ExecContext(ctx, stmt,
		item.ID,
		string(item.Type),
		item.Title,
		item.Subtitle,
		item.Category,
		item.Level,
		item.XP,
		item.Order,
		string(item.Repeat),
		len(item.LessonIDs),
		item.ReadingMinutes,
	)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}
