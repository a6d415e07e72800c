package pngenc

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
)

const (
	TypeHeader = "IHDR"
	TypeData   = "IDAT"
	TypeEnd    = "IEND"
)

// Signature is the fixed 8-byte PNG file prefix.
var Signature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type Chunk struct {
	Type string
	Data []byte
}

// CRC returns the checksum stored after the chunk, computed over type and payload.
func (c Chunk) CRC() uint32 {
	crc := crc32.NewIEEE()
	_, _ = io.WriteString(crc, c.Type)
	_, _ = crc.Write(c.Data)
	return crc.Sum32()
}

// WriteTo frames the chunk as length, type, payload, crc.
func (c Chunk) WriteTo(w io.Writer) (int64, error) {
	if len(c.Type) != 4 {
		return 0, fmt.Errorf("chunk type %q: must be 4 bytes", c.Type)
	}
	var head [8]byte
	binary.BigEndian.PutUint32(head[0:4], uint32(len(c.Data)))
	copy(head[4:8], c.Type)

	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], c.CRC())

	var total int64
	for _, part := range [][]byte{head[:], c.Data, tail[:]} {
		n, err := w.Write(part)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

type header struct {
	width     uint32
	height    uint32
	bitDepth  byte
	colorType byte
}

func (h header) chunk() Chunk {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], h.width)
	binary.BigEndian.PutUint32(data[4:8], h.height)
	data[8] = h.bitDepth
	data[9] = h.colorType
	data[10] = 0 // compression
	data[11] = 0 // filter
	data[12] = 0 // interlace
	return Chunk{Type: TypeHeader, Data: data}
}
