package convert

import (
	"strconv"
	"strings"
)

// Time units in milliseconds.
const (
	Msec int64 = 1
	Sec        = 1000 * Msec
	Min        = 60 * Sec
	Hour       = 60 * Min
	Day        = 24 * Hour
)

var spanUnits = [...]struct {
	millis int64
	label  string
}{
	{Day, "天"},
	{Hour, "小时"},
	{Min, "分钟"},
	{Sec, "秒"},
	{Msec, "毫秒"},
}

// TimeSpan2Millis converts span in unit to milliseconds.
func TimeSpan2Millis(span, unit int64) int64 {
	return span * unit
}

// Millis2TimeSpan converts millis to whole units.
func Millis2TimeSpan(millis, unit int64) int64 {
	return millis / unit
}

// Millis2FitTimeSpan renders millis as days, hours, minutes, seconds and
// milliseconds, e.g. "6天6小时6分钟". precision limits how many of those
// units are considered, largest first; units with a zero value are left
// out. Non-positive input yields "".
func Millis2FitTimeSpan(millis int64, precision int) string {
	if millis <= 0 || precision <= 0 {
		return ""
	}
	precision = min(precision, len(spanUnits))

	var sb strings.Builder
	for _, u := range spanUnits[:precision] {
		if millis < u.millis {
			continue
		}
		n := millis / u.millis
		millis -= n * u.millis
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteString(u.label)
	}
	return sb.String()
}
