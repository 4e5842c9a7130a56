package livematch

import (
	"fmt"

	"github.com/bytedance/sonic"
)

type feedEnvelope struct {
	Data *struct {
		List []Match `json:"list"`
	} `json:"data"`
}

// Decode extracts data.list from a live feed body. A missing data object or list is
// an empty result; a body that is not JSON is a shape error.
func Decode(body []byte) ([]Match, error) {
	var envelope feedEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode live feed: %w", err)
	}
	if envelope.Data == nil || envelope.Data.List == nil {
		return []Match{}, nil
	}
	return envelope.Data.List, nil
}
