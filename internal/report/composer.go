package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"BtcTracker/internal/chart"
	"BtcTracker/internal/history"
)

// Composer assembles the status document from a history and writes it out.
type Composer struct {
	Renderer chart.Renderer
	Path     string
	Zone     *time.Location
	Now      func() time.Time
}

// NewComposer creates a Composer. A nil clock means wall-clock time.
func NewComposer(r chart.Renderer, path string, zone *time.Location, now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{Renderer: r, Path: path, Zone: zone, Now: now}
}

// Compose builds the full document: banner, chart block, price history
// lines and update stamp. An empty history is a precondition violation.
func (c *Composer) Compose(h history.History) (string, error) {
	if len(h) == 0 {
		return "", chart.ErrEmptyHistory
	}

	chartBlock, err := c.chartBlock(h)
	if err != nil {
		return "", err
	}

	labels := make([]string, len(h))
	for i, obs := range h {
		labels[i] = fmt.Sprintf("%s: USD %s | KRW %s", obs.Timestamp,
			humanize.FormatFloat("#,###.##", obs.USD),
			humanize.FormatFloat("#,###.", obs.KRW))
	}

	stamp := c.Now().In(c.Zone)

	var b strings.Builder
	b.WriteString("╔══════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║                    🚀 BITCOIN PRICE TRACKER 🚀                ║\n")
	b.WriteString("╚══════════════════════════════════════════════════════════════╝\n\n")
	b.WriteString(fmt.Sprintf("💰 Last %d USD / KRW prices for 1 BTC\n\n", len(h)))
	b.WriteString("┌─────────────────── 📊 PRICE CHART ───────────────────┐\n")
	b.WriteString(chartBlock)
	b.WriteString("└─────────────────────────────────────────────────────┘\n\n")
	b.WriteString("📋 Price history:\n")
	b.WriteString("═══════════════\n")
	b.WriteString(strings.Join(labels, "\n"))
	b.WriteString(fmt.Sprintf("\n\n🕐 Updated: %s (%s)\n", stamp.Format("2006-01-02 15:04:05"), c.Zone))

	return b.String(), nil
}

// chartBlock renders both series. Bar charts interleave one USD and one KRW
// row per level, tagged with the level index, as the monospace chart reads
// best with the two silhouettes side by side. Line charts keep each series
// as its own grid so the slope glyphs stay connected.
func (c *Composer) chartBlock(h history.History) (string, error) {
	usdRows, err := c.Renderer.Render(h.USDValues())
	if err != nil {
		return "", err
	}
	krwRows, err := c.Renderer.Render(h.KRWValues())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if c.Renderer.Name() == "bars" {
		for i := range usdRows {
			lvl := c.Renderer.Height() - 1 - i
			b.WriteString(fmt.Sprintf("USD %s  %d\n", usdRows[i], lvl))
			b.WriteString(fmt.Sprintf("KRW %s  %d\n", krwRows[i], lvl))
		}
		return b.String(), nil
	}

	b.WriteString("USD\n")
	for _, row := range usdRows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	b.WriteString("\nKRW\n")
	for _, row := range krwRows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Write saves the composed document to the report path.
func (c *Composer) Write(content string) error {
	if err := os.WriteFile(c.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
