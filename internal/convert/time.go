package convert

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultTimePattern formats as "2006-01-02 15:04:05".
const DefaultTimePattern = "%Y-%m-%d %H:%M:%S"

// Millis2String formats a Unix time in milliseconds with a strftime
// pattern in the local time zone. An empty pattern means DefaultTimePattern.
func Millis2String(millis int64, pattern string) string {
	if pattern == "" {
		pattern = DefaultTimePattern
	}
	return strftime.Format(pattern, time.UnixMilli(millis))
}

// String2Millis parses s with a strftime pattern in the local time zone
// and returns Unix milliseconds.
func String2Millis(s, pattern string) (int64, error) {
	if pattern == "" {
		pattern = DefaultTimePattern
	}
	layout, err := strftime.Layout(pattern)
	if err != nil {
		return 0, fmt.Errorf("convert: pattern %q: %w", pattern, err)
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return 0, fmt.Errorf("convert: %w", err)
	}
	return t.UnixMilli(), nil
}
