package chart

const (
	linePoint   = '●'
	lineRising  = '╱'
	lineFalling = '╲'
	lineFlat    = '─'
	lineBlank   = ' '
)

// LineRenderer draws one point per value and connects consecutive points
// with slope glyphs, so the chart shows trend direction between samples
// in addition to magnitude.
type LineRenderer struct {
	height int
}

func (r *LineRenderer) Name() string { return "line" }

func (r *LineRenderer) Height() int { return r.height }

func (r *LineRenderer) Render(values []float64) ([]string, error) {
	if len(values) == 0 {
		return nil, ErrEmptyHistory
	}

	levels := Levels(values, r.height)

	grid := make([][]rune, r.height)
	for y := range grid {
		grid[y] = make([]rune, len(values))
		for x := range grid[y] {
			grid[y][x] = lineBlank
		}
	}

	// Points first; row 0 is the top of the chart.
	for i, lvl := range levels {
		grid[r.height-1-lvl][i] = linePoint
	}

	// Connectors fill the previous column, strictly between the point rows.
	// Equal levels overwrite the previous point with a flat glyph, so runs
	// of equal values render as a line ending in the latest point.
	for i := 1; i < len(levels); i++ {
		prev := r.height - 1 - levels[i-1]
		cur := r.height - 1 - levels[i]
		switch {
		case cur < prev: // rising
			for y := cur + 1; y < prev; y++ {
				grid[y][i-1] = lineRising
			}
		case cur > prev: // falling
			for y := prev + 1; y < cur; y++ {
				grid[y][i-1] = lineFalling
			}
		default:
			grid[prev][i-1] = lineFlat
		}
	}

	rows := make([]string, r.height)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return rows, nil
}
