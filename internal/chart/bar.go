package chart

import "strings"

const (
	barFilled = '█'
	barBlank  = ' '
)

// BarRenderer draws a bottom-up bar silhouette: row h is filled at every
// position whose level is at least h.
type BarRenderer struct {
	height int
}

func (r *BarRenderer) Name() string { return "bars" }

func (r *BarRenderer) Height() int { return r.height }

func (r *BarRenderer) Render(values []float64) ([]string, error) {
	if len(values) == 0 {
		return nil, ErrEmptyHistory
	}

	levels := Levels(values, r.height)
	rows := make([]string, 0, r.height)
	for h := r.height - 1; h >= 0; h-- {
		var b strings.Builder
		for _, lvl := range levels {
			if lvl >= h {
				b.WriteRune(barFilled)
			} else {
				b.WriteRune(barBlank)
			}
		}
		rows = append(rows, b.String())
	}
	return rows, nil
}
