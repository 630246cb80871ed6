package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/automoto/lumina/portfolio"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	tags TEXT NOT NULL DEFAULT '[]',
	image_url TEXT NOT NULL DEFAULT '',
	video_url TEXT NOT NULL DEFAULT '',
	case_study TEXT NOT NULL DEFAULT '',
	repo_url TEXT NOT NULL DEFAULT '',
	business_outcome TEXT NOT NULL DEFAULT '',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS images (
	url TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	created_at INTEGER NOT NULL
);`

const projectColumns = `id, title, description, tags, image_url, video_url, case_study, repo_url, business_outcome, created_at, updated_at`

// SQLite stores projects in a local database file.
type SQLite struct {
	db    *sql.DB
	clock clockwork.Clock
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string, clock clockwork.Clock) (*SQLite, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// One writer at a time; sqlite serializes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &SQLite{db: db, clock: clock}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (portfolio.Project, error) {
	var (
		p                portfolio.Project
		tags             string
		created, updated int64
	)
	err := row.Scan(&p.ID, &p.Title, &p.Description, &tags, &p.ImageURL, &p.VideoURL,
		&p.CaseStudy, &p.RepoURL, &p.BusinessOutcome, &created, &updated)
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return p, fmt.Errorf("parse tags of %s: %w", p.ID, err)
	}
	p.CreatedAt = time.UnixMilli(created).UTC()
	p.UpdatedAt = time.UnixMilli(updated).UTC()
	return p, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("serialize tags: %w", err)
	}
	return string(data), nil
}

func (s *SQLite) List(ctx context.Context) ([]portfolio.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []portfolio.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *SQLite) get(ctx context.Context, id string) (portfolio.Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	return p, err
}

func (s *SQLite) Insert(ctx context.Context, p portfolio.Project) (portfolio.Project, error) {
	if err := p.Validate(); err != nil {
		return portfolio.Project{}, err
	}
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return portfolio.Project{}, err
	}

	now := s.clock.Now().UTC().Truncate(time.Millisecond)
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, tags, p.ImageURL, p.VideoURL,
		p.CaseStudy, p.RepoURL, p.BusinessOutcome, now.UnixMilli(), now.UnixMilli())
	if err != nil {
		return portfolio.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

func (s *SQLite) Update(ctx context.Context, p portfolio.Project) (portfolio.Project, error) {
	if err := p.Validate(); err != nil {
		return portfolio.Project{}, err
	}
	existing, err := s.get(ctx, p.ID)
	if err != nil {
		return portfolio.Project{}, fmt.Errorf("update project %s: %w", p.ID, err)
	}
	tags, err := encodeTags(p.Tags)
	if err != nil {
		return portfolio.Project{}, err
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.clock.Now().UTC().Truncate(time.Millisecond)
	_, err = s.db.ExecContext(ctx, `
		UPDATE projects SET title = ?, description = ?, tags = ?, image_url = ?, video_url = ?,
			case_study = ?, repo_url = ?, business_outcome = ?, updated_at = ?
		WHERE id = ?`,
		p.Title, p.Description, tags, p.ImageURL, p.VideoURL,
		p.CaseStudy, p.RepoURL, p.BusinessOutcome, p.UpdatedAt.UnixMilli(), p.ID)
	if err != nil {
		return portfolio.Project{}, fmt.Errorf("update project %s: %w", p.ID, err)
	}
	return p, nil
}

func (s *SQLite) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("delete project %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *SQLite) UploadImage(ctx context.Context, name string, data []byte) (string, error) {
	url, err := imageURL(s.clock, name, len(data))
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO images (url, data, created_at) VALUES (?, ?, ?)`,
		url, data, s.clock.Now().UnixMilli())
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return url, nil
}

func (s *SQLite) LoadImage(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM images WHERE url = ?`, url).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load image %s: %w", url, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", url, err)
	}
	return data, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
