package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// WindowConfig contains window sizing options remembered between runs
type WindowConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Window is the global window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex: 0,
	}
}

// ResolutionIndexFor returns the option closest in width to w.
func ResolutionIndexFor(w int) int {
	best, bestDiff := Window.DefaultResolutionIndex, -1
	for i, r := range Window.Resolutions {
		diff := r.Width - w
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}
