package media

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type entryState int

const (
	stateLoading entryState = iota
	stateReady
	stateFailed
)

type cacheEntry struct {
	state   entryState
	decoded image.Image
	img     *ebiten.Image
}

// Cache loads thumbnails in the background. Get is called from the update
// or draw goroutine; GPU images are created there, never in a loader goroutine.
type Cache struct {
	loader *Loader
	w, h   int

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// NewCache creates a cache producing w x h thumbnails.
func NewCache(loader *Loader, w, h int) *Cache {
	return &Cache{
		loader:  loader,
		w:       w,
		h:       h,
		entries: map[string]*cacheEntry{},
	}
}

// Get returns the thumbnail for url once it has loaded. The first call
// starts the load; failures are remembered and not retried.
func (c *Cache) Get(url string) *ebiten.Image {
	if url == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[url]
	if !ok {
		c.entries[url] = &cacheEntry{state: stateLoading}
		go c.load(url)
		return nil
	}
	if e.state != stateReady {
		return nil
	}
	if e.img == nil {
		e.img = ebiten.NewImageFromImage(e.decoded)
		e.decoded = nil
	}
	return e.img
}

// Forget drops url so the next Get reloads it.
func (c *Cache) Forget(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[url]; ok && e.img != nil {
		e.img.Deallocate()
	}
	delete(c.entries, url)
}

func (c *Cache) load(url string) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	img, err := c.loader.Load(ctx, url, c.w, c.h)

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[url]
	if !ok {
		return
	}
	if err != nil {
		log.Printf("Warning: Could not load image %s: %v", url, err)
		e.state = stateFailed
		return
	}
	e.decoded = img
	e.state = stateReady
}
