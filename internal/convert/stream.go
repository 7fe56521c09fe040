package convert

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset is used when no charset name is given.
const DefaultCharset = "UTF-8"

// InputStream2Bytes reads r to the end. A nil reader yields nil.
func InputStream2Bytes(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("convert: read stream: %w", err)
	}
	return b, nil
}

// Bytes2InputStream returns a reader over b.
func Bytes2InputStream(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// OutputStream2Bytes returns the bytes written to buf so far.
func OutputStream2Bytes(buf *bytes.Buffer) []byte {
	if buf == nil {
		return nil
	}
	return buf.Bytes()
}

// InputStream2String reads r to the end and decodes it from charset.
func InputStream2String(r io.Reader, charset string) (string, error) {
	if r == nil {
		return "", nil
	}
	enc, err := lookupCharset(charset)
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(enc.NewDecoder().Reader(r))
	if err != nil {
		return "", fmt.Errorf("convert: decode %s: %w", charset, err)
	}
	return string(b), nil
}

// String2InputStream encodes s to charset and returns a reader over the result.
func String2InputStream(s, charset string) (io.Reader, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return nil, fmt.Errorf("convert: encode %s: %w", charset, err)
	}
	return strings.NewReader(out), nil
}

// OutputStream2String decodes the bytes written to buf from charset.
func OutputStream2String(buf *bytes.Buffer, charset string) (string, error) {
	if buf == nil {
		return "", nil
	}
	return InputStream2String(bytes.NewReader(buf.Bytes()), charset)
}

func lookupCharset(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultCharset
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("convert: unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("convert: unsupported charset %q", name)
	}
	return enc, nil
}
