// Package media fetches and decodes project images for display.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/automoto/lumina/store"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// MaxRemoteBytes caps how much of a remote image is read.
const MaxRemoteBytes = 8 << 20

var ErrUnsupportedURL = errors.New("unsupported image url")

// ImageSource resolves store:// image urls.
type ImageSource interface {
	LoadImage(ctx context.Context, url string) ([]byte, error)
}

// Loader reads images from the project store or over HTTP.
type Loader struct {
	Store ImageSource
	HTTP  *http.Client
}

// NewLoader creates a loader with a bounded HTTP client.
func NewLoader(src ImageSource) *Loader {
	return &Loader{
		Store: src,
		HTTP:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch returns the raw bytes behind url.
func (l *Loader) Fetch(ctx context.Context, url string) ([]byte, error) {
	switch {
	case store.IsImageURL(url):
		if l.Store == nil {
			return nil, fmt.Errorf("load %s: %w", url, ErrUnsupportedURL)
		}
		return l.Store.LoadImage(ctx, url)
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return l.fetchRemote(ctx, url)
	default:
		return nil, fmt.Errorf("load %s: %w", url, ErrUnsupportedURL)
	}
}

func (l *Loader) fetchRemote(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	resp, err := l.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxRemoteBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return data, nil
}

// Load fetches url and decodes it, scaled to fill w x h.
func (l *Loader) Load(ctx context.Context, url string, w, h int) (image.Image, error) {
	data, err := l.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return Cover(img, w, h), nil
}

// Cover scales src to fill a w x h frame, cropping the overflow evenly.
func Cover(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if w <= 0 || h <= 0 || b.Empty() {
		return src
	}

	// Pick the crop of src that has the frame's aspect ratio.
	crop := b
	if b.Dx()*h > b.Dy()*w {
		cw := b.Dy() * w / h
		crop.Min.X += (b.Dx() - cw) / 2
		crop.Max.X = crop.Min.X + cw
	} else {
		ch := b.Dx() * h / w
		crop.Min.Y += (b.Dy() - ch) / 2
		crop.Max.Y = crop.Min.Y + ch
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}
