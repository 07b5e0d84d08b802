package raycast

import (
	"testing"

	"maze/internal/actor"
	"maze/internal/grid"
)

func newTestRenderer() *Renderer {
	return NewRenderer(Options{
		Camera:  testCamera,
		Ceiling: ColorCeiling,
		Floor:   ColorFloor,
	})
}

func TestRender_BackgroundAndColumns(t *testing.T) {
	r := newTestRenderer()
	m := square(t, 9)
	v := actor.Viewpoint{X: 4.5, Y: 4.5, Heading: 0}
	f, stats := r.Render(v, m)
	if stats.Misses != 0 {
		t.Fatalf("enclosed map reported %d misses", stats.Misses)
	}
	if f.At(0, 0) != ColorCeiling || f.At(0, f.Height-1) != ColorFloor {
		t.Fatalf("background not painted: top=%#08x bottom=%#08x", f.At(0, 0), f.At(0, f.Height-1))
	}
	span := NewProjector(testCamera, Perspective, nil).Project(Hit{Distance: 3.5, Material: 1})
	for x := 0; x < f.Width; x++ {
		if f.At(x, span.Top) != DefaultPalette().Base(1) || f.At(x, span.Top+span.Length-1) != DefaultPalette().Base(1) {
			t.Fatalf("column %d: wall span missing", x)
		}
		if span.Top > 0 && f.At(x, span.Top-1) != ColorCeiling {
			t.Fatalf("column %d: wall drawn above its span", x)
		}
		if f.At(x, span.Top+span.Length) != ColorFloor {
			t.Fatalf("column %d: wall drawn below its span", x)
		}
	}
}

func TestRender_IdleFramesIdentical(t *testing.T) {
	r := newTestRenderer()
	m := grid.Default()
	v := actor.Viewpoint{X: 1.5, Y: 1.5, Heading: 20, MoveSpeed: 0.15, TurnSpeed: 2}
	first, _ := r.Render(v, m)
	f := r.NewFrame()
	for n := 0; n < 5; n++ {
		v.Apply(actor.Intents{}, m)
		r.RenderInto(f, v, m)
		for i := range f.Pix {
			if f.Pix[i] != first.Pix[i] {
				t.Fatalf("frame %d pixel %d differs: %#08x vs %#08x", n, i, f.Pix[i], first.Pix[i])
			}
		}
	}
}

func TestRender_MissesStayBackground(t *testing.T) {
	r := newTestRenderer()
	m := mustMap(t, [][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	f, stats := r.Render(actor.Viewpoint{X: 1.5, Y: 1.5}, m)
	if stats.Misses != testCamera.Width {
		t.Fatalf("misses %d, want %d", stats.Misses, testCamera.Width)
	}
	for y := 0; y < f.Height; y++ {
		want := ColorCeiling
		if y >= f.Height/2 {
			want = ColorFloor
		}
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, f.At(x, y), want)
			}
		}
	}
}

func TestRender_SidesShadedDifferently(t *testing.T) {
	r := newTestRenderer()
	m := square(t, 9)
	// Looking into the north-east corner: the left part of the screen sees
	// the north wall (y crossing), the right part the east wall (x crossing).
	v := actor.Viewpoint{X: 6.5, Y: 2.5, Heading: -45}
	f, _ := r.Render(v, m)
	mid := f.Height / 2
	base := DefaultPalette().Base(1)
	if f.At(0, mid) != Shade(base) {
		t.Fatalf("left column %#08x, want shaded %#08x", f.At(0, mid), Shade(base))
	}
	if f.At(f.Width-1, mid) != base {
		t.Fatalf("right column %#08x, want %#08x", f.At(f.Width-1, mid), base)
	}
}

func TestRenderInto_SizeMismatchPanics(t *testing.T) {
	r := newTestRenderer()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	r.RenderInto(NewFrame(10, 10), actor.Viewpoint{X: 1.5, Y: 1.5}, grid.Default())
}

func TestFrame_RGBA(t *testing.T) {
	f := NewFrame(2, 1)
	f.Pix[0] = 0xFF112233
	f.Pix[1] = 0x80AABBCC
	got := f.RGBA(nil)
	want := []byte{0x11, 0x22, 0x33, 0xFF, 0xAA, 0xBB, 0xCC, 0x80}
	if string(got) != string(want) {
		t.Fatalf("RGBA = % x, want % x", got, want)
	}
	buf := make([]byte, 0, 64)
	if out := f.RGBA(buf); &out[0] != &buf[:1][0] {
		t.Fatal("RGBA must reuse a large enough buffer")
	}
}
