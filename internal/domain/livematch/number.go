package livematch

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// FlexInt is an integer feed field that also accepts floats ("1792672200.0") and
// numeric strings ("8"). Fractions are truncated. Anything else decodes as 0 so a
// single odd record cannot fail the whole list.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*n = 0
		return nil
	}

	text := string(trimmed)
	if trimmed[0] == '"' {
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			*n = 0
			return nil
		}
		text = strings.TrimSpace(s)
	}

	*n = parseFlexInt(text)
	return nil
}

func parseFlexInt(text string) FlexInt {
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		return FlexInt(v)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= math.MaxInt64 {
		return 0
	}
	return FlexInt(math.Trunc(f))
}
