package livematch

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
)

// Streamers is the feed's streamer mapping flattened into display order.
//
// The feed sends an object keyed by streamer id. Display order follows the browser
// property order: keys that are array indexes come first in ascending numeric order,
// then the remaining keys in document order. A JSON array is accepted as-is.
type Streamers []Streamer

func (s *Streamers) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}

	switch trimmed[0] {
	case '[':
		var list []Streamer
		if err := sonic.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("decode streamers list: %w", err)
		}
		*s = list
		return nil
	case '{':
	default:
		return fmt.Errorf("decode streamers: unexpected %q", trimmed[0])
	}

	root := ast.NewRaw(string(trimmed))

	type entry struct {
		index uint64
		value Streamer
	}
	type slot struct {
		named bool
		at    int
	}
	var (
		indexed   []entry
		named     []entry
		position  = make(map[string]slot)
		decodeErr error
	)

	err := root.ForEach(func(path ast.Sequence, node *ast.Node) bool {
		if path.Key == nil {
			decodeErr = fmt.Errorf("decode streamers: property without key at %d", path.Index)
			return false
		}
		key := *path.Key

		raw, err := node.Raw()
		if err != nil {
			decodeErr = fmt.Errorf("decode streamer %q: %w", key, err)
			return false
		}
		var value Streamer
		if err := sonic.UnmarshalString(raw, &value); err != nil {
			decodeErr = fmt.Errorf("decode streamer %q: %w", key, err)
			return false
		}

		// A repeated key keeps its first position and its last value.
		if seen, ok := position[key]; ok {
			if seen.named {
				named[seen.at].value = value
			} else {
				indexed[seen.at].value = value
			}
			return true
		}
		if idx, ok := arrayIndex(key); ok {
			position[key] = slot{at: len(indexed)}
			indexed = append(indexed, entry{index: idx, value: value})
		} else {
			position[key] = slot{named: true, at: len(named)}
			named = append(named, entry{value: value})
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("decode streamers: %w", err)
	}
	if decodeErr != nil {
		return decodeErr
	}

	sort.SliceStable(indexed, func(i, j int) bool { return indexed[i].index < indexed[j].index })

	out := make(Streamers, 0, len(indexed)+len(named))
	for _, e := range indexed {
		out = append(out, e.value)
	}
	for _, e := range named {
		out = append(out, e.value)
	}
	*s = out
	return nil
}

// arrayIndex reports whether key is a canonical array index ("0", "17", not "017").
func arrayIndex(key string) (uint64, bool) {
	v, err := strconv.ParseUint(key, 10, 32)
	if err != nil || v == math.MaxUint32 {
		return 0, false
	}
	if strconv.FormatUint(v, 10) != key {
		return 0, false
	}
	return v, true
}
