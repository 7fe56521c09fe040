package convert

import (
	"fmt"
	"strings"
)

// Bytes2Bits renders each byte as eight binary digits, most significant first.
func Bytes2Bits(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, c := range b {
		fmt.Fprintf(&sb, "%08b", c)
	}
	return sb.String()
}

// Bits2Bytes parses a string of binary digits. The input is left-padded
// with zeros to a whole number of bytes.
func Bits2Bytes(bits string) ([]byte, error) {
	if pad := len(bits) % 8; pad != 0 {
		bits = strings.Repeat("0", 8-pad) + bits
	}
	out := make([]byte, len(bits)/8)
	for i := range out {
		var c byte
		for _, d := range bits[i*8 : i*8+8] {
			switch d {
			case '0':
				c <<= 1
			case '1':
				c = c<<1 | 1
			default:
				return nil, fmt.Errorf("convert: invalid bit %q in %q", d, bits)
			}
		}
		out[i] = c
	}
	return out, nil
}
