package engine

// DefaultProgressEvery is the iteration cadence of progress notifications.
const DefaultProgressEvery = 10_000

// Progress is a snapshot of a running scan.
type Progress struct {
	Op      Operation
	Current uint64
	// Target is the bound of the scan, or 0 when the scan is open-ended.
	Target uint64
	Found  int
}

// ProgressFunc observes long-running scans. It is called synchronously from
// the scanning loop and must not touch the cache.
type ProgressFunc func(Progress)

type ticker struct {
	fn     ProgressFunc
	every  uint64
	op     Operation
	target uint64
	n      uint64
}

func (e *Engine) ticker(op Operation, target uint64) *ticker {
	return &ticker{fn: e.progress, every: e.progressEvery, op: op, target: target}
}

func (t *ticker) step(current uint64, found int) {
	t.n++
	if t.fn == nil || t.n%t.every != 0 {
		return
	}
	t.fn(Progress{Op: t.op, Current: current, Target: t.target, Found: found})
}
