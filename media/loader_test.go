package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/automoto/lumina/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource map[string][]byte

func (f fakeSource) LoadImage(_ context.Context, url string) ([]byte, error) {
	data, ok := f[url]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data, nil
}

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadFromStore(t *testing.T) {
	url := "store://images/1740830400000.png"
	l := NewLoader(fakeSource{url: encodePNG(t, 40, 20, color.RGBA{R: 255, A: 255})})

	img, err := l.Load(context.Background(), url, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())

	r, _, _, a := img.At(5, 5).RGBA()
	assert.InDelta(t, 0xffff, r, 0x200)
	assert.InDelta(t, 0xffff, a, 0x200)

	_, err = l.Load(context.Background(), "store://images/0.png", 10, 10)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLoadOverHTTP(t *testing.T) {
	data := encodePNG(t, 8, 8, color.RGBA{G: 255, A: 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shot.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	l := NewLoader(nil)
	img, err := l.Load(context.Background(), srv.URL+"/shot.png", 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = l.Load(context.Background(), srv.URL+"/missing.png", 4, 4)
	assert.ErrorContains(t, err, "status 404")
}

func TestLoadRejectsUnknownSchemes(t *testing.T) {
	l := NewLoader(nil)
	_, err := l.Fetch(context.Background(), "ftp://example.com/a.png")
	assert.ErrorIs(t, err, ErrUnsupportedURL)

	_, err = l.Fetch(context.Background(), "store://images/1.png")
	assert.ErrorIs(t, err, ErrUnsupportedURL)
}

func TestLoadRejectsNonImages(t *testing.T) {
	url := "store://images/1.png"
	l := NewLoader(fakeSource{url: []byte("not an image")})
	_, err := l.Load(context.Background(), url, 4, 4)
	assert.ErrorContains(t, err, "decode")
}

func TestCoverCropsToAspect(t *testing.T) {
	// Left half red, right half blue; a square cover keeps the middle.
	src := image.NewRGBA(image.Rect(0, 0, 40, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{R: 255, A: 255}
			if x >= 20 {
				c = color.RGBA{B: 255, A: 255}
			}
			src.Set(x, y, c)
		}
	}

	out := Cover(src, 10, 10)
	assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())
	r, _, _, _ := out.At(1, 5).RGBA()
	_, _, b, _ := out.At(8, 5).RGBA()
	assert.InDelta(t, 0xffff, r, 0x200)
	assert.InDelta(t, 0xffff, b, 0x200)

	assert.Same(t, src, Cover(src, 0, 10))
}
