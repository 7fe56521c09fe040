package convert

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

var (
	sampleBytes = []byte{0x00, 0x08, 0xdb, 0x33, 0x45, 0xab, 0x02, 0x23}
	sampleHex   = "0008DB3345AB0223"
)

func TestHex(t *testing.T) {
	if got := Bytes2HexString(sampleBytes); got != sampleHex {
		t.Fatalf("Bytes2HexString = %q, want %q", got, sampleHex)
	}

	tests := []struct {
		in      string
		want    []byte
		wantErr bool
	}{
		{sampleHex, sampleBytes, false},
		{"0008db3345ab0223", sampleBytes, false},
		{"abc", []byte{0x0a, 0xbc}, false},
		{"", []byte{}, false},
		{"zz", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := HexString2Bytes(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("HexString2Bytes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !bytes.Equal(got, tt.want) {
				t.Fatalf("HexString2Bytes(%q) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
}

func TestChars(t *testing.T) {
	chars := []rune{'0', '1', '2'}
	raw := []byte{48, 49, 50}

	if got := Chars2Bytes(chars); !bytes.Equal(got, raw) {
		t.Fatalf("Chars2Bytes = %v, want %v", got, raw)
	}
	if got := Bytes2Chars(raw); string(got) != "012" {
		t.Fatalf("Bytes2Chars = %v", got)
	}
	if got := Chars2Bytes([]rune{'é', 0x1ff}); !bytes.Equal(got, []byte{0xe9, 0xff}) {
		t.Fatalf("Chars2Bytes truncation = %x", got)
	}
	if got := Bytes2Chars([]byte{0xff}); got[0] != 255 {
		t.Fatalf("Bytes2Chars(0xff) = %d, want 255", got[0])
	}
	if Chars2Bytes(nil) != nil || Bytes2Chars(nil) != nil {
		t.Fatalf("nil input did not yield nil")
	}
}

func TestBits(t *testing.T) {
	if got := Bytes2Bits([]byte{0x7f, 0xfa}); got != "0111111111111010" {
		t.Fatalf("Bytes2Bits = %q", got)
	}
	b, err := Bits2Bytes("111111111111010")
	if err != nil {
		t.Fatal(err)
	}
	if got := Bytes2Bits(b); got != "0111111111111010" {
		t.Fatalf("padded round trip = %q", got)
	}
	if _, err := Bits2Bytes("10201"); err == nil {
		t.Fatalf("Bits2Bytes accepted a non-binary digit")
	}
	if b, err := Bits2Bytes(""); err != nil || len(b) != 0 {
		t.Fatalf("Bits2Bytes(\"\") = %v, %v", b, err)
	}
}

func TestMemorySize(t *testing.T) {
	if got := Byte2MemorySize(int64(GB), MB); got != 1024 {
		t.Fatalf("Byte2MemorySize(GB, MB) = %v", got)
	}
	if got := Byte2MemorySize(-1, KB); got != -1 {
		t.Fatalf("negative Byte2MemorySize = %v", got)
	}
	if got := Byte2MemorySize(uint32(512), KB); got != 0.5 {
		t.Fatalf("Byte2MemorySize(512, KB) = %v", got)
	}
	if got := MemorySize2Byte(3, MB); got != 3*MB {
		t.Fatalf("MemorySize2Byte(3, MB) = %v", got)
	}
	if got := MemorySize2Byte(int8(-2), MB); got != -1 {
		t.Fatalf("negative MemorySize2Byte = %v", got)
	}

	fit := []struct {
		n    int64
		want string
	}{
		{MB*3 + KB*100, "3.098MB"},
		{1234, "1.206KB"},
		{GB*3 + MB*123, "3.121GB"},
		{-1, "shouldn't be less than zero!"},
	}
	for _, tt := range fit {
		if got := Byte2FitMemorySize(tt.n); got != tt.want {
			t.Errorf("Byte2FitMemorySize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}

	if got := Byte2IECSize(82854982); got != "79 MiB" {
		t.Fatalf("Byte2IECSize = %q", got)
	}
	n, err := ParseMemorySize("42 KiB")
	if err != nil || n != 42*KB {
		t.Fatalf("ParseMemorySize = %d, %v", n, err)
	}
	if _, err := ParseMemorySize("lots"); err == nil {
		t.Fatalf("ParseMemorySize accepted garbage")
	}
}

func TestMillis2FitTimeSpan(t *testing.T) {
	millis := 6*Day + 6*Hour + 6*Min + 6*Sec + 6

	tests := []struct {
		millis    int64
		precision int
		want      string
	}{
		{millis, 7, "6天6小时6分钟6秒6毫秒"},
		{millis, 4, "6天6小时6分钟6秒"},
		{millis, 3, "6天6小时6分钟"},
		{millis * 4, 5, "25天24分钟24秒24毫秒"},
		{Sec, 5, "1秒"},
		{0, 5, ""},
		{-Sec, 5, ""},
		{millis, 0, ""},
	}
	for _, tt := range tests {
		if got := Millis2FitTimeSpan(tt.millis, tt.precision); got != tt.want {
			t.Errorf("Millis2FitTimeSpan(%d, %d) = %q, want %q", tt.millis, tt.precision, got, tt.want)
		}
	}

	if got := TimeSpan2Millis(3, Min); got != 180000 {
		t.Fatalf("TimeSpan2Millis = %d", got)
	}
	if got := Millis2TimeSpan(180999, Min); got != 3 {
		t.Fatalf("Millis2TimeSpan = %d", got)
	}
}

func TestMillisString(t *testing.T) {
	const s = "2017-03-13 08:30:05"
	ms, err := String2Millis(s, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := Millis2String(ms, ""); got != s {
		t.Fatalf("round trip = %q, want %q", got, s)
	}
	if got := Millis2String(ms+Day, "%Y/%m/%d"); got != "2017/03/14" {
		t.Fatalf("custom pattern = %q", got)
	}
	if _, err := String2Millis("not a date", ""); err == nil {
		t.Fatalf("String2Millis accepted garbage")
	}
}

func TestStreams(t *testing.T) {
	const text = "this is test string"

	b, err := InputStream2Bytes(Bytes2InputStream([]byte(text)))
	if err != nil || string(b) != text {
		t.Fatalf("bytes round trip = %q, %v", b, err)
	}

	r, err := String2InputStream(text, "UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	s, err := InputStream2String(r, "UTF-8")
	if err != nil || s != text {
		t.Fatalf("string round trip = %q, %v", s, err)
	}

	var buf bytes.Buffer
	buf.WriteString(text)
	if got := OutputStream2Bytes(&buf); string(got) != text {
		t.Fatalf("OutputStream2Bytes = %q", got)
	}
	if got, err := OutputStream2String(&buf, ""); err != nil || got != text {
		t.Fatalf("OutputStream2String = %q, %v", got, err)
	}
}

func TestStreamCharsets(t *testing.T) {
	r, err := String2InputStream("café", "ISO-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw, []byte{'c', 'a', 'f', 0xe9}) {
		t.Fatalf("latin-1 encoding = %x", raw)
	}
	s, err := InputStream2String(bytes.NewReader(raw), "latin1")
	if err != nil || s != "café" {
		t.Fatalf("latin-1 decoding = %q, %v", s, err)
	}

	if _, err := String2InputStream("x", "no-such-charset"); err == nil {
		t.Fatalf("unknown charset accepted")
	}
}

func TestStreamErrors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := InputStream2Bytes(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Fatalf("read error not wrapped: %v", err)
	}
	if b, err := InputStream2Bytes(nil); b != nil || err != nil {
		t.Fatalf("nil reader = %v, %v", b, err)
	}
}
