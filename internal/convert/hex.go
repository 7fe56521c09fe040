// Package convert turns bytes, bits, memory sizes, time spans and streams
// into one another.
package convert

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Bytes2HexString renders b as upper-case hexadecimal.
func Bytes2HexString(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexString2Bytes decodes a hexadecimal string in either case. An odd
// number of digits is read as if a leading 0 were present.
func HexString2Bytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("convert: invalid hex string %q: %w", s, err)
	}
	return b, nil
}
