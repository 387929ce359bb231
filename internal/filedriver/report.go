package filedriver

import (
	"bytes"
	"fmt"
	"io"
	"time"
)

// Direction selects which way a Driver runs a codec.
type Direction uint8

const (
	Compress Direction = iota
	Decompress
)

// String returns "compress" or "decompress".
func (dir Direction) String() string {
	switch dir {
	case Compress:
		return "compress"
	case Decompress:
		return "decompress"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(dir))
	}
}

// Report describes one finished run.
type Report struct {
	Method           string
	Direction        Direction
	DecompressedSize int64
	CompressedSize   int64
	Elapsed          time.Duration
}

// Ratio returns CompressedSize / DecompressedSize, or 0 if DecompressedSize
// is 0.
func (r Report) Ratio() float64 {
	if r.DecompressedSize == 0 {
		return 0
	}
	return float64(r.CompressedSize) / float64(r.DecompressedSize)
}

// WriteTo writes the human-readable summary printed by the command line tool.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s (%s) took %.2fs\n", r.Direction, r.Method, r.Elapsed.Seconds())
	fmt.Fprintf(&buf, "Size (decompressed): %.2f KB\n", kilobytes(r.DecompressedSize))
	fmt.Fprintf(&buf, "Size (compressed): %.2f KB\n", kilobytes(r.CompressedSize))
	if r.DecompressedSize != 0 {
		fmt.Fprintf(&buf, "Compression ratio: %.3f\n", r.Ratio())
	}
	return buf.WriteTo(w)
}

var _ io.WriterTo = Report{}

func kilobytes(n int64) float64 {
	return float64(n) / 1024
}
