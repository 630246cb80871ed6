// Package store persists portfolio projects and uploaded images.
package store

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/automoto/lumina/portfolio"
	"github.com/jonboulle/clockwork"
)

// MaxImageBytes is the largest image UploadImage accepts.
const MaxImageBytes = 5 << 20

const imageScheme = "store://images/"

var (
	ErrNotFound      = errors.New("not found")
	ErrImageTooLarge = errors.New("image exceeds 5 MiB")
)

// ProjectStore is the CRUD surface the home page and dashboard use.
type ProjectStore interface {
	// List returns every project, newest first.
	List(ctx context.Context) ([]portfolio.Project, error)
	// Insert assigns an id and timestamps and returns the stored record.
	Insert(ctx context.Context, p portfolio.Project) (portfolio.Project, error)
	Update(ctx context.Context, p portfolio.Project) (portfolio.Project, error)
	Delete(ctx context.Context, id string) error

	UploadImage(ctx context.Context, name string, data []byte) (string, error)
	LoadImage(ctx context.Context, url string) ([]byte, error)

	Ping(ctx context.Context) error
	Close() error
}

// Kind names a backend for Open.
type Kind string

const (
	KindGData  Kind = "gdata"
	KindSQLite Kind = "sqlite"
)

// Open creates the backend named by kind. dsn is the database path for
// sqlite and the app name for gdata.
func Open(kind Kind, dsn string, clock clockwork.Clock) (ProjectStore, error) {
	switch kind {
	case KindGData, "":
		return OpenGData(dsn, clock)
	case KindSQLite:
		return OpenSQLite(dsn, clock)
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}

// IsImageURL reports whether url points into a store's image table.
func IsImageURL(url string) bool {
	return strings.HasPrefix(url, imageScheme)
}

func imageURL(clock clockwork.Clock, name string, size int) (string, error) {
	if size > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s%d.%s", imageScheme, clock.Now().UnixMilli(), ext), nil
}

// sortNewestFirst orders projects stored in insertion order by creation
// time. Projects created at the same instant list the latest insert first,
// matching the sqlite rowid tiebreak.
func sortNewestFirst(projects []portfolio.Project) {
	slices.Reverse(projects)
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
}
