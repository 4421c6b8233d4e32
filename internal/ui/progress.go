package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ProgressBar renders a terminal progress bar with download statistics.
type ProgressBar struct {
	out        io.Writer
	label      string
	total      int64
	current    int64
	startTime  time.Time
	lastUpdate time.Time
	isTTY      bool
	lastPct    float64 // for non-TTY threshold updates
	colors     *ColorConfig
	indent     string
	bar        progress.Model
	lastFrame  uint64 // xxhash of the last line written to a TTY
	now        func() time.Time
}

// NewProgressBar creates a new progress bar for tracking download progress.
// If total is <= 0, the progress bar will show bytes downloaded without percentage.
func NewProgressBar(out io.Writer, total int64) *ProgressBar {
	if out == nil {
		out = os.Stdout
	}

	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	colors := NewColorConfigFromGlobal()
	opts := []progress.Option{progress.WithDefaultGradient(), progress.WithoutPercentage()}
	if !colors.Enabled {
		opts = append(opts, progress.WithColorProfile(termenv.Ascii))
	}

	return &ProgressBar{
		out:     out,
		label:   "Downloading",
		total:   total,
		isTTY:   isTTY,
		lastPct: -1,
		colors:  colors,
		indent:  "  ",
		bar:     progress.New(opts...),
		now:     time.Now,
	}
}

// SetLabel sets the word shown before non-TTY progress lines.
func (p *ProgressBar) SetLabel(label string) { p.label = label }

// SetTotal sets the expected size once it becomes known.
func (p *ProgressBar) SetTotal(total int64) { p.total = total }

// Update updates the progress bar with the current byte count.
func (p *ProgressBar) Update(current int64) {
	if p.startTime.IsZero() {
		p.startTime = p.now()
	}
	p.current = current

	// Max 10 redraws/sec on a TTY.
	now := p.now()
	if p.isTTY && !p.lastUpdate.IsZero() && now.Sub(p.lastUpdate) < 100*time.Millisecond {
		return
	}
	p.lastUpdate = now

	if p.total <= 0 {
		if p.isTTY {
			p.writeFrame(fmt.Sprintf("\r%s%s... %s\033[K", p.indent, p.label, FormatBytes(current)))
		}
		return
	}

	pct := float64(current) / float64(p.total) * 100
	if pct > 100 {
		pct = 100
	}

	if p.isTTY {
		p.renderTTY(pct)
		return
	}
	threshold := float64(int(pct/10) * 10)
	if threshold > p.lastPct {
		p.lastPct = threshold
		fmt.Fprintf(p.out, "%s%s... %.0f%%\n", p.indent, p.label, threshold)
	}
}

func (p *ProgressBar) renderTTY(pct float64) {
	elapsed := p.now().Sub(p.startTime).Seconds()
	var speed float64
	if elapsed > 0 {
		speed = float64(p.current) / elapsed
	}

	eta := "--"
	if p.current >= p.total {
		eta = "0s"
	} else if speed > 0 {
		eta = formatDuration(float64(p.total-p.current) / speed)
	}

	width := 80
	if f, ok := p.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	// "<indent><bar> 100.0%  999.9 MiB/999.9 MiB  999.9 MiB/s  ETA 99m59s"
	p.bar.Width = min(max(width-60-len(p.indent), 10), 40)

	p.writeFrame(fmt.Sprintf("\r%s%s %5.1f%%  %s/%s  %s  ETA %s\033[K",
		p.indent,
		p.bar.ViewAs(pct/100),
		pct,
		FormatBytes(p.current),
		FormatBytes(p.total),
		FormatSpeed(speed),
		eta,
	))
}

// writeFrame skips frames identical to the previous one.
func (p *ProgressBar) writeFrame(frame string) {
	h := xxhash.Sum64String(frame)
	if h == p.lastFrame {
		return
	}
	p.lastFrame = h
	fmt.Fprint(p.out, frame)
}

// Finish completes the progress bar and moves to the next line.
func (p *ProgressBar) Finish() {
	if p.isTTY {
		if p.total > 0 {
			p.current = p.total
			p.renderTTY(100)
		}
		fmt.Fprintln(p.out)
		flushStdin()
		return
	}
	switch {
	case p.total > 0 && p.lastPct < 100:
		fmt.Fprintf(p.out, "%s%s... 100%%\n", p.indent, p.label)
	case p.total <= 0:
		fmt.Fprintf(p.out, "%s%s... %s\n", p.indent, p.label, FormatBytes(p.current))
	}
}
