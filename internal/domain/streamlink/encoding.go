package streamlink

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeUTF8 base64-encodes the UTF-8 bytes of s, so non-ASCII content survives.
func EncodeUTF8(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// EncodeLatin1 base64-encodes s one byte per code point. Code points above U+00FF
// cannot be represented and are rejected, matching the browser btoa contract.
func EncodeLatin1(s string) (string, error) {
	buf := make([]byte, 0, len(s))
	for i, r := range s {
		if r > 0xFF {
			return "", fmt.Errorf("%w: %q at byte %d", ErrNotLatin1, r, i)
		}
		buf = append(buf, byte(r))
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// EncodeURIComponent percent-encodes every byte outside A-Z a-z 0-9 - _ . ! ~ * ' ( ).
// url.QueryEscape differs on space and on ! ' ( ) *, and the live player expects the
// browser encoding.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}

func isURIComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
