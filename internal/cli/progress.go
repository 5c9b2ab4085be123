package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/primes/internal/engine"
)

// redrawInterval is how often the indicator refreshes its elapsed time.
const redrawInterval = 250 * time.Millisecond

var spinnerFrames = []string{"|", "/", "-", "\\"}

// indicator draws "Processing..." lines from progress snapshots. It runs on
// its own goroutine and only ever sees copies of engine.Progress.
type indicator struct {
	w       io.Writer
	updates chan engine.Progress
	done    chan struct{}
	start   time.Time
	frame   int
	width   int
	last    *engine.Progress
}

func newIndicator(w io.Writer) *indicator {
	return &indicator{
		w:       w,
		updates: make(chan engine.Progress, 1),
		done:    make(chan struct{}),
		start:   time.Now(),
	}
}

// observe is the engine's ProgressFunc. It never blocks the scan; a
// snapshot is dropped if the previous one has not been drawn yet.
func (ind *indicator) observe(p engine.Progress) {
	select {
	case ind.updates <- p:
	default:
	}
}

func (ind *indicator) run() error {
	tick := time.NewTicker(redrawInterval)
	defer tick.Stop()
	for {
		select {
		case p := <-ind.updates:
			ind.last = &p
			ind.draw()
		case <-tick.C:
			ind.draw()
		case <-ind.done:
			select {
			case p := <-ind.updates:
				ind.last = &p
				ind.draw()
			default:
			}
			return ind.clear()
		}
	}
}

func (ind *indicator) draw() {
	if ind.last == nil {
		return
	}
	p := ind.last
	line := fmt.Sprintf("%s Processing... %s %d", spinnerFrames[ind.frame%len(spinnerFrames)], p.Op, p.Current)
	if p.Target > 0 {
		line += fmt.Sprintf("/%d", p.Target)
	}
	line += fmt.Sprintf(" (%d found, %s)", p.Found, time.Since(ind.start).Round(100*time.Millisecond))
	ind.frame++
	pad := ""
	if len(line) < ind.width {
		pad = strings.Repeat(" ", ind.width-len(line))
	}
	ind.width = len(line)
	fmt.Fprintf(ind.w, "\r%s%s", line, pad)
}

func (ind *indicator) clear() error {
	if ind.width == 0 {
		return nil
	}
	_, err := fmt.Fprintf(ind.w, "\r%s\r", strings.Repeat(" ", ind.width))
	return err
}

// withProgress calls fn on the current goroutine, passing it a ProgressFunc
// that feeds an indicator on w. The indicator is stopped and joined before
// withProgress returns. When enabled is false fn receives nil.
func withProgress(w io.Writer, enabled bool, fn func(engine.ProgressFunc) (*engine.Result, error)) (*engine.Result, error) {
	if !enabled {
		return fn(nil)
	}

	ind := newIndicator(w)
	var g errgroup.Group
	g.Go(ind.run)

	res, err := fn(ind.observe)

	close(ind.done)
	if werr := g.Wait(); werr != nil {
		logrus.WithError(werr).Warn("progress indicator failed")
	}
	return res, err
}
