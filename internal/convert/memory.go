package convert

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/constraints"
)

// Memory units in bytes.
const (
	Byte = humanize.Byte
	KB   = humanize.KiByte
	MB   = humanize.MiByte
	GB   = humanize.GiByte
)

// Byte2MemorySize expresses n bytes in unit. Negative sizes yield -1.
func Byte2MemorySize[T constraints.Integer](n T, unit int64) float64 {
	if n < 0 {
		return -1
	}
	return float64(n) / float64(unit)
}

// MemorySize2Byte converts size in unit to bytes. Negative sizes yield -1.
func MemorySize2Byte[T constraints.Integer](size T, unit int64) int64 {
	if size < 0 {
		return -1
	}
	return int64(size) * unit
}

// Byte2FitMemorySize renders n with three decimals in the largest of
// B, KB, MB and GB that keeps the value at least 1.
func Byte2FitMemorySize(n int64) string {
	switch {
	case n < 0:
		return "shouldn't be less than zero!"
	case n < KB:
		return fmt.Sprintf("%.3fB", float64(n)+0.0005)
	case n < MB:
		return fmt.Sprintf("%.3fKB", float64(n)/KB+0.0005)
	case n < GB:
		return fmt.Sprintf("%.3fMB", float64(n)/MB+0.0005)
	default:
		return fmt.Sprintf("%.3fGB", float64(n)/GB+0.0005)
	}
}

// Byte2IECSize renders n with IEC units, e.g. "82 KiB".
func Byte2IECSize(n uint64) string {
	return humanize.IBytes(n)
}

// ParseMemorySize parses a size such as "3 MB" or "42KiB" into bytes.
func ParseMemorySize(s string) (uint64, error) {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("convert: %w", err)
	}
	return n, nil
}
