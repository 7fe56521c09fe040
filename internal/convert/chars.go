package convert

// Chars2Bytes keeps the low eight bits of each rune.
func Chars2Bytes(chars []rune) []byte {
	if chars == nil {
		return nil
	}
	out := make([]byte, len(chars))
	for i, c := range chars {
		out[i] = byte(c)
	}
	return out
}

// Bytes2Chars widens each byte to a rune in the range 0-255.
func Bytes2Chars(b []byte) []rune {
	if b == nil {
		return nil
	}
	out := make([]rune, len(b))
	for i, c := range b {
		out[i] = rune(c)
	}
	return out
}
