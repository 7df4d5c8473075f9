// Package progress reports phase-by-phase feedback while the CLI
// generates a course: one phase for week breakdowns, one for day content.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter tracks one generation phase. Step advances by one and labels
// the current item; callers never track counts themselves.
type Reporter interface {
	Start(total int)
	Step(message string)
	Finish()
}

// NewReporter returns a reporter for the named phase: an interactive
// progress bar, or line-by-line output when running under CI.
func NewReporter(phase string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Phase: phase, Out: os.Stderr}
	}
	return &TerminalReporter{phase: phase}
}

// TerminalReporter draws a single progress bar for the phase.
type TerminalReporter struct {
	phase string
	bar   *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(r.phase),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per step, suitable for CI logs.
type CIReporter struct {
	Phase string
	Out   io.Writer

	total int
	done  int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.Out, "%s: %d steps\n", r.Phase, total)
}

func (r *CIReporter) Step(message string) {
	r.done++
	fmt.Fprintf(r.Out, "%s [%d/%d] %s\n", r.Phase, r.done, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "%s: done\n", r.Phase)
}
