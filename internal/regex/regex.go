// Package regex holds common validation patterns and helpers that apply a
// pattern to the whole input.
package regex

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Patterns. Validators match them against the entire input.
const (
	MobileSimple = `^[1]\d{10}$`
	// MobileExact covers the mainland operator prefixes, including 1349
	// (global star) and 170 (virtual operators).
	MobileExact = `^((13[0-9])|(14[5,7])|(15[0-3,5-9])|(16[6])|(17[0,1,3,5-8])|(18[0-9])|(19[8,9]))\d{8}$`
	Tel         = `^0\d{2,3}[- ]?\d{7,8}`
	IDCard15    = `^[1-9]\d{7}((0\d)|(1[0-2]))(([0|1|2]\d)|3[0-1])\d{3}$`
	IDCard18    = `^[1-9]\d{5}[1-9]\d{3}((0\d)|(1[0-2]))(([0|1|2]\d)|3[0-1])\d{3}([0-9Xx])$`
	Email       = `^\w+([-+.]\w+)*@\w+([-.]\w+)*\.\w+([-.]\w+)*$`
	URL         = `[a-zA-z]+://[^\s]*`
	Zh          = `^[\x{4e00}-\x{9fa5}]+$`
	// Username allows letters, digits, underscore and Chinese characters,
	// 6 to 20 of them. IsUsername also rejects a trailing underscore.
	Username = `^[\w\x{4e00}-\x{9fa5}]{6,20}$`
	// Date is yyyy-MM-dd including leap days. IsDate also rejects year 0000.
	Date = `^(?:[0-9]{4}-(?:(?:0[1-9]|1[0-2])-(?:0[1-9]|1[0-9]|2[0-8])|(?:0[13-9]|1[0-2])-(?:29|30)|(?:0[13578]|1[02])-31)|(?:[0-9]{2}(?:0[48]|[2468][048]|[13579][26])|(?:0[48]|[2468][048]|[13579][26])00)-02-29)$`
	IP   = `((2[0-4]\d|25[0-5]|[01]?\d\d?)\.){3}(2[0-4]\d|25[0-5]|[01]?\d\d?)`

	DoubleByteChar     = `[^\x00-\xff]`
	BlankLine          = `\n\s*\r`
	QQNum              = `[1-9][0-9]{4,}`
	ChinaPostalCode    = `[1-9]\d{5}`
	PositiveInteger    = `^[1-9]\d*$`
	NegativeInteger    = `^-[1-9]\d*$`
	Integer            = `^-?[1-9]\d*$`
	NotNegativeInteger = `^[1-9]\d*|0$`
	NotPositiveInteger = `^-[1-9]\d*|0$`
	PositiveFloat      = `^[1-9]\d*\.\d*|0\.\d*[1-9]\d*$`
	NegativeFloat      = `^-[1-9]\d*\.\d*|-0\.\d*[1-9]\d*$`
)

var (
	mobileSimple = whole(MobileSimple)
	mobileExact  = whole(MobileExact)
	tel          = whole(Tel)
	idCard15     = whole(IDCard15)
	idCard18     = whole(IDCard18)
	email        = whole(Email)
	url          = whole(URL)
	zh           = whole(Zh)
	username     = whole(Username)
	date         = whole(Date)
	ip           = whole(IP)
)

// whole compiles p so that it only matches the entire input.
func whole(p string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + p + `)$`)
}

func IsMobileSimple(s string) bool { return mobileSimple.MatchString(s) }
func IsMobileExact(s string) bool  { return mobileExact.MatchString(s) }
func IsTel(s string) bool          { return tel.MatchString(s) }
func IsIDCard15(s string) bool     { return idCard15.MatchString(s) }
func IsIDCard18(s string) bool     { return idCard18.MatchString(s) }
func IsEmail(s string) bool        { return email.MatchString(s) }
func IsURL(s string) bool          { return url.MatchString(s) }
func IsZh(s string) bool           { return zh.MatchString(s) }
func IsIP(s string) bool           { return ip.MatchString(s) }

// IsUsername reports whether s is 6 to 20 word or Chinese characters not
// ending in an underscore.
func IsUsername(s string) bool {
	return username.MatchString(s) && !strings.HasSuffix(s, "_")
}

// IsDate reports whether s is a valid yyyy-MM-dd date after year 0000.
func IsDate(s string) bool {
	return date.MatchString(s) && !strings.HasPrefix(s, "0000")
}

var compiled sync.Map // pattern -> *regexp.Regexp

func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := compiled.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regex: %w", err)
	}
	actual, _ := compiled.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// Match reports whether pattern matches all of input. Empty input never matches.
func Match(pattern, input string) (bool, error) {
	if input == "" {
		return false, nil
	}
	re, err := compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return false, err
	}
	return re.MatchString(input), nil
}

// GetMatches returns every non-overlapping match of pattern in input.
func GetMatches(pattern, input string) ([]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(input, -1), nil
}

// GetSplits splits input around each match of pattern.
func GetSplits(input, pattern string) ([]string, error) {
	re, err := compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.Split(input, -1), nil
}

// GetReplaceFirst replaces the first match of pattern in input. The
// replacement may refer to groups as $1 or ${name}.
func GetReplaceFirst(input, pattern, replacement string) (string, error) {
	re, err := compile(pattern)
	if err != nil {
		return "", err
	}
	m := re.FindStringSubmatchIndex(input)
	if m == nil {
		return input, nil
	}
	var dst []byte
	dst = append(dst, input[:m[0]]...)
	dst = re.ExpandString(dst, replacement, input, m)
	dst = append(dst, input[m[1]:]...)
	return string(dst), nil
}

// GetReplaceAll replaces every match of pattern in input.
func GetReplaceAll(input, pattern, replacement string) (string, error) {
	re, err := compile(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(input, replacement), nil
}
