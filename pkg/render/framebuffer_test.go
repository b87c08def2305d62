package render

import "testing"

func TestSetPixelBounds(t *testing.T) {
	fb := NewFramebuffer(10, 10)

	// Out of range writes are dropped, not panics.
	fb.SetPixel(-1, 5, ColorWhite)
	fb.SetPixel(10, 5, ColorWhite)
	fb.SetPixel(5, -1, ColorWhite)
	fb.SetPixel(5, 10, ColorWhite)

	for i, px := range fb.Pixels {
		if px != (RGB(0, 0, 0)) && px.A != 0 {
			t.Fatalf("pixel %d modified by out-of-range write", i)
		}
	}

	if got := fb.GetPixel(-1, -1); got.A != 0 {
		t.Errorf("out-of-range read = %v, want transparent", got)
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.DrawLine(2, 3, 15, 12, ColorWhite)

	if fb.GetPixel(2, 3) != ColorWhite {
		t.Error("start point not drawn")
	}
	if fb.GetPixel(15, 12) != ColorWhite {
		t.Error("end point not drawn")
	}
}

func TestToImageRoundTrip(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.SetPixel(3, 4, RGB(10, 20, 30))

	img := fb.ToImage()
	if got := img.RGBAAt(3, 4); got != RGB(10, 20, 30) {
		t.Errorf("image pixel = %v, want (10,20,30)", got)
	}
}
