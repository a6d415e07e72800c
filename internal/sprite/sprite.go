package sprite

// Size is the edge length of every generated icon, in pixels.
const Size = 64

type Pixel struct {
	R, G, B, A uint8
}

// ShadeFunc returns the unclamped colour of pixel (x, y) in a size×size icon.
type ShadeFunc func(x, y, size int) (r, g, b, a int)

type Image struct {
	Width  int
	Height int
	Pix    []byte
}

func (img Image) At(x, y int) Pixel {
	i := (y*img.Width + x) * 4
	return Pixel{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// Render evaluates shade over a size×size grid in row-major order.
func Render(size int, shade ShadeFunc) Image {
	img := Image{Width: size, Height: size, Pix: make([]byte, size*size*4)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, a := shade(x, y, size)
			i := (y*size + x) * 4
			img.Pix[i] = clampChannel(r)
			img.Pix[i+1] = clampChannel(g)
			img.Pix[i+2] = clampChannel(b)
			img.Pix[i+3] = clampChannel(a)
		}
	}
	return img
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
