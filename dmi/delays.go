package dmi

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Delays are per-frame durations in deciseconds, shared by all directions.
// A nil Delays means the state does not specify any.
type Delays []float64

func (d Delays) Equal(other Delays) bool {
	if (d == nil) != (other == nil) {
		return false
	}
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Text renders delays for people, e.g. "[1ds, 2.5ds]".
func (d Delays) Text(suffix string) string {
	items := lo.Map(d, func(delay float64, _ int) string {
		return formatFloat(delay) + suffix
	})
	return "[" + strings.Join(items, ", ") + "]"
}

func (d Delays) String() string { return d.Text("ds") }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func parseDelays(value string) (Delays, error) {
	parts := strings.Split(value, ",")
	out := make(Delays, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
