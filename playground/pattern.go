package playground

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/phanxgames/bloom"
)

// ErrInvalidPattern is wrapped by every ParsePattern failure.
var ErrInvalidPattern = errors.New("playground: invalid pattern")

// ParsePattern reads a pattern written as a JSON array of frames, each an
// array of cell indices 0-8, e.g. [[0,1],[4],[]]. At least one frame is
// required; frames themselves may be empty.
func ParsePattern(text string) (bloom.Pattern, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, errors.Wrap(ErrInvalidPattern, "not a JSON array")
	}
	if len(raw) == 0 {
		return nil, errors.Wrap(ErrInvalidPattern, "no frames")
	}

	p := make(bloom.Pattern, len(raw))
	for i, r := range raw {
		var cells []float64
		if err := json.Unmarshal(r, &cells); err != nil || cells == nil {
			return nil, errors.Wrapf(ErrInvalidPattern, "frame %d is not an array of numbers", i+1)
		}
		frame := make([]int, 0, len(cells))
		for _, v := range cells {
			if v != math.Trunc(v) || v < 0 || v >= bloom.CellCount {
				return nil, errors.Wrapf(ErrInvalidPattern, "frame %d: cell %v outside 0-8", i+1, v)
			}
			frame = append(frame, int(v))
		}
		p[i] = frame
	}
	return p, nil
}

// FormatPattern writes p as compact JSON, the inverse of ParsePattern.
func FormatPattern(p bloom.Pattern) string {
	out := make([][]int, len(p))
	for i, frame := range p {
		out[i] = append([]int{}, frame...)
	}
	b, _ := json.Marshal(out)
	return string(b)
}
