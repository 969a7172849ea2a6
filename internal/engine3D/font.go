package engine3D

import (
	"irrigation3d/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FontSize is the glyph size fonts are rasterised at; text is scaled from it.
const FontSize = 64

var (
	fontCache  = make(map[int32]rl.Font)
	fontLoaded bool

	fontPaths = []string{
		"fonts/Inter-Regular.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/ttf-dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}
)

// Glyphs is the codepoint set loaded into every font.
func Glyphs() []rune {
	runes := make([]rune, 0, 96)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, '•')
}

// Font returns a font rasterised at size, falling back to raylib's built in
// font when no TTF can be found.
func Font(size int32) rl.Font {
	if font, ok := fontCache[size]; ok {
		return font
	}

	path := findFont()
	if path == "" {
		utils.Warn("No TTF font found, using raylib default font")
		font := rl.GetFontDefault()
		fontCache[size] = font
		return font
	}

	glyphs := Glyphs()
	font := rl.LoadFontEx(path, size, glyphs, int32(len(glyphs)))
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	utils.Debug("Loaded font %s at %dpx", path, size)

	fontCache[size] = font
	fontLoaded = true
	return font
}

// HasGlyphs reports whether fonts carry the full glyph set, including '•'.
func HasGlyphs() bool {
	return fontLoaded
}

func findFont() string {
	if path := utils.FindFile(fontPaths...); path != "" {
		return path
	}
	return utils.FindByPattern("fonts/*.ttf")
}

func UnloadFonts() {
	for size, font := range fontCache {
		if fontLoaded {
			rl.UnloadFont(font)
		}
		delete(fontCache, size)
	}
	fontLoaded = false
}
