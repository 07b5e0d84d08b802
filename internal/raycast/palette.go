package raycast

// Colors are packed 0xAARRGGBB.
const (
	ColorCeiling  uint32 = 0xFFCCCCCC
	ColorFloor    uint32 = 0xFF555555
	ColorFallback uint32 = 0xFFFF00FF
)

var defaultWallColors = map[int]uint32{
	1: 0xFF3060C0,
	2: 0xFFC03030,
	3: 0xFF30A040,
	4: 0xFFD0C040,
	5: 0xFFB0B0B0,
}

// Palette maps wall materials to colors.
type Palette struct {
	colors   map[int]uint32
	fallback uint32
}

// NewPalette copies colors; unknown materials render as fallback.
func NewPalette(colors map[int]uint32, fallback uint32) *Palette {
	p := &Palette{colors: make(map[int]uint32, len(colors)), fallback: fallback}
	for k, v := range colors {
		p.colors[k] = v
	}
	return p
}

// DefaultPalette returns the built-in material colors.
func DefaultPalette() *Palette {
	return NewPalette(defaultWallColors, ColorFallback)
}

// Base returns the unshaded color of material.
func (p *Palette) Base(material int) uint32 {
	if c, ok := p.colors[material]; ok {
		return c
	}
	return p.fallback
}

// Color returns the color of material seen from side. Faces crossed on a
// horizontal grid line are drawn at half brightness.
func (p *Palette) Color(material int, side Side) uint32 {
	c := p.Base(material)
	if side == SideY {
		return Shade(c)
	}
	return c
}

// Shade halves each color channel and keeps alpha.
func Shade(c uint32) uint32 {
	return c&0xFF000000 | (c>>1)&0x007F7F7F
}
