package enumerate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tmendel/so6enum/so6"
)

// ReplayFile rebuilds every circuit recorded in a per-T-count data
// stream: one space-separated generator-index line per matrix, blank
// lines skipped. The first unparseable line aborts with its number.
func ReplayFile(r io.Reader) ([]*so6.Matrix, error) {
	var out []*so6.Matrix
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		m, err := so6.Replay(text)
		if err != nil {
			return nil, fmt.Errorf("enumerate: line %d: %w", line, err)
		}
		out = append(out, m)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("enumerate: reading circuits: %w", err)
	}
	return out, nil
}
