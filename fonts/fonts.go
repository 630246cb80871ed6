package fonts

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body    FontName = "body"
	Small   FontName = "small"
	Bold    FontName = "bold"
	Heading FontName = "heading"
	Title   FontName = "title"
	Mono    FontName = "mono"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the app draws with, from the Go font family.
func LoadDefaults() {
	LoadFontWithSize(Body, goregular.TTF, 16)
	LoadFontWithSize(Small, goregular.TTF, 13)
	LoadFontWithSize(Bold, gobold.TTF, 18)
	LoadFontWithSize(Heading, gobold.TTF, 32)
	LoadFontWithSize(Title, gobold.TTF, 72)
	LoadFontWithSize(Mono, gomono.TTF, 13)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s could not be parsed: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// Width returns the advance width of s in pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the distance between consecutive baselines.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// Wrap breaks s into lines no wider than width, splitting on spaces.
// Explicit newlines are kept; a single word wider than width gets its own line.
func Wrap(face font.Face, s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if Width(face, candidate) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// Clamp keeps at most max lines, ending the last kept line with an ellipsis.
func Clamp(lines []string, max int) []string {
	if max <= 0 || len(lines) <= max {
		return lines
	}
	out := append([]string(nil), lines[:max]...)
	out[max-1] = strings.TrimRight(out[max-1], " .,") + "..."
	return out
}
