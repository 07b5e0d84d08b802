package raycast

// Frame is a row-major buffer of 0xAARRGGBB pixels.
type Frame struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFrame allocates a width x height frame.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pix: make([]uint32, width*height)}
}

// At returns the pixel at (x, y).
func (f *Frame) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

// FillRows paints rows [y0, y1) with c.
func (f *Frame) FillRows(y0, y1 int, c uint32) {
	row := f.Pix[y0*f.Width : y1*f.Width]
	for i := range row {
		row[i] = c
	}
}

// FillColumn paints length pixels of column x starting at row top.
func (f *Frame) FillColumn(x, top, length int, c uint32) {
	for y := top; y < top+length; y++ {
		f.Pix[y*f.Width+x] = c
	}
}

// RGBA writes the frame as 8-bit RGBA bytes into dst, growing it if needed,
// and returns it.
func (f *Frame) RGBA(dst []byte) []byte {
	n := len(f.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, c := range f.Pix {
		base := i * 4
		dst[base] = byte(c >> 16)
		dst[base+1] = byte(c >> 8)
		dst[base+2] = byte(c)
		dst[base+3] = byte(c >> 24)
	}
	return dst
}
