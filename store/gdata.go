package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/automoto/lumina/portfolio"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/quasilyte/gdata"
)

const projectsKey = "projects"

// KV is the subset of gdata.Manager the store uses.
type KV interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// GData keeps every project in one JSON item and each image in its own item.
type GData struct {
	mu    sync.Mutex
	kv    KV
	clock clockwork.Clock
}

// OpenGData opens the per-user data directory for appName.
func OpenGData(appName string, clock clockwork.Clock) (*GData, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata: %w", err)
	}
	return NewGData(m, clock), nil
}

// NewGData wraps an already opened key-value store.
func NewGData(kv KV, clock clockwork.Clock) *GData {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &GData{kv: kv, clock: clock}
}

func (s *GData) load() ([]portfolio.Project, error) {
	data, err := s.kv.LoadItem(projectsKey)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var projects []portfolio.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parse projects: %w", err)
	}
	return projects, nil
}

func (s *GData) save(projects []portfolio.Project) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("serialize projects: %w", err)
	}
	if err := s.kv.SaveItem(projectsKey, data); err != nil {
		return fmt.Errorf("save projects: %w", err)
	}
	return nil
}

func (s *GData) List(_ context.Context) ([]portfolio.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(projects)
	return projects, nil
}

func (s *GData) Insert(_ context.Context, p portfolio.Project) (portfolio.Project, error) {
	if err := p.Validate(); err != nil {
		return portfolio.Project{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load()
	if err != nil {
		return portfolio.Project{}, err
	}
	now := s.clock.Now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.save(append(projects, p)); err != nil {
		return portfolio.Project{}, err
	}
	return p, nil
}

func (s *GData) Update(_ context.Context, p portfolio.Project) (portfolio.Project, error) {
	if err := p.Validate(); err != nil {
		return portfolio.Project{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load()
	if err != nil {
		return portfolio.Project{}, err
	}
	for i := range projects {
		if projects[i].ID != p.ID {
			continue
		}
		p.CreatedAt = projects[i].CreatedAt
		p.UpdatedAt = s.clock.Now()
		projects[i] = p
		if err := s.save(projects); err != nil {
			return portfolio.Project{}, err
		}
		return p, nil
	}
	return portfolio.Project{}, fmt.Errorf("update project %s: %w", p.ID, ErrNotFound)
}

func (s *GData) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == id {
			return s.save(append(projects[:i], projects[i+1:]...))
		}
	}
	return fmt.Errorf("delete project %s: %w", id, ErrNotFound)
}

// imageKey maps store://images/123.png to images_123_png. gdata keys are
// plain file names.
func imageKey(url string) string {
	name := strings.TrimPrefix(url, imageScheme)
	return "images_" + strings.ReplaceAll(name, ".", "_")
}

func (s *GData) UploadImage(_ context.Context, name string, data []byte) (string, error) {
	url, err := imageURL(s.clock, name, len(data))
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.SaveItem(imageKey(url), data); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return url, nil
}

func (s *GData) LoadImage(_ context.Context, url string) ([]byte, error) {
	if !IsImageURL(url) {
		return nil, fmt.Errorf("load image %s: %w", url, ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.LoadItem(imageKey(url))
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("load image %s: %w", url, ErrNotFound)
	}
	return data, nil
}

func (s *GData) Ping(_ context.Context) error {
	if s.kv == nil {
		return fmt.Errorf("gdata: %w", ErrNotFound)
	}
	return nil
}

func (s *GData) Close() error {
	return nil
}
