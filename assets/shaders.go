package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GlowShader paints the soft background blobs behind the page
	GlowShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	glowSrc, err := shaderFS.ReadFile("shaders/glow.kage")
	if err != nil {
		return err
	}
	GlowShader, err = ebiten.NewShader(glowSrc)
	if err != nil {
		return err
	}

	return nil
}
