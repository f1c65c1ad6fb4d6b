package solver

import "time"

// progressTicker reports progress of long enumerations at exponentially
// spaced solution counts (1, 2, 4, 8, …). The next reporting threshold is
// cached, so the hot search loop pays a single comparison per solution.
type progressTicker struct {
	start time.Time
	next  uint64
}

func startProgress() *progressTicker {
	return &progressTicker{start: time.Now(), next: 1}
}

func (p *progressTicker) tick(count uint64) {
	if count < p.next {
		return
	}
	tracer().Infof("%d solutions after %v", count, time.Since(p.start))
	p.next <<= 1
}
