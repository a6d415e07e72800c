package pngenc

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/klauspost/compress/zlib"
)

const (
	bitDepth8     = 8
	colorTypeRGBA = 6
	filterNone    = 0

	// PNG stores dimensions as 31-bit unsigned values.
	maxDimension = math.MaxInt32
)

var ErrInvalidImage = errors.New("invalid rgba image")

type Encoder struct {
	// Level is a zlib compression level. Zero selects zlib.BestCompression,
	// so zlib.NoCompression (also zero) cannot be requested.
	Level int

	raw bytes.Buffer
	z   bytes.Buffer
}

// Encode wraps an 8-bit RGBA buffer of width×height pixels as a PNG file.
func Encode(pix []byte, width, height int) ([]byte, error) {
	var enc Encoder
	return enc.Encode(pix, width, height)
}

func (e *Encoder) Encode(pix []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 || width > maxDimension || height > maxDimension {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, width, height)
	}
	// Compared by division so huge dimensions cannot overflow.
	n := len(pix) / 4
	if len(pix)%4 != 0 || n%width != 0 || n/width != height {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d rgba", ErrInvalidImage, len(pix), width, height)
	}

	idat, err := e.compress(pix, width, height)
	if err != nil {
		return nil, err
	}

	hdr := header{width: uint32(width), height: uint32(height), bitDepth: bitDepth8, colorType: colorTypeRGBA}
	out := bytes.NewBuffer(make([]byte, 0, len(Signature)+3*12+13+len(idat)))
	out.Write(Signature[:])
	for _, c := range []Chunk{hdr.chunk(), {Type: TypeData, Data: idat}, {Type: TypeEnd}} {
		if _, err := c.WriteTo(out); err != nil {
			return nil, fmt.Errorf("write %s chunk: %w", c.Type, err)
		}
	}
	return out.Bytes(), nil
}

// compress prefixes every scanline with a filter byte and deflates the result.
func (e *Encoder) compress(pix []byte, width, height int) ([]byte, error) {
	stride := width * 4
	e.raw.Reset()
	e.raw.Grow(height * (stride + 1))
	for y := 0; y < height; y++ {
		e.raw.WriteByte(filterNone)
		e.raw.Write(pix[y*stride : (y+1)*stride])
	}

	level := e.Level
	if level == 0 {
		level = zlib.BestCompression
	}
	e.z.Reset()
	zw, err := zlib.NewWriterLevel(&e.z, level)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}
	if _, err := zw.Write(e.raw.Bytes()); err != nil {
		return nil, fmt.Errorf("deflate scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flush zlib stream: %w", err)
	}
	return bytes.Clone(e.z.Bytes()), nil
}
