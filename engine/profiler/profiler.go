package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// DefaultInterval is how often a Profiler reports.
const DefaultInterval = time.Second

// Profiler counts loop iterations and reports the rate together with memory statistics.
// The sandbox runs one per loop: "render" for frames and "tick" for simulation steps.
type Profiler struct {
	mu             *sync.Mutex
	label          string
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	lastRate       float64
	logEnabled     bool
}

// ProfilerBuilderOption is a functional option for configuring a Profiler.
type ProfilerBuilderOption func(*Profiler)

// WithLabel names the loop in the log line.
//
// Parameters:
//   - label: loop name, e.g. "render"
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithLabel(label string) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.label = label
	}
}

// WithInterval sets the reporting interval. Non-positive values keep DefaultInterval.
//
// Parameters:
//   - d: reporting interval
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithInterval(d time.Duration) ProfilerBuilderOption {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithLogging turns the periodic log line on or off. Rates are measured either way.
//
// Parameters:
//   - enabled: whether to log
//
// Returns:
//   - ProfilerBuilderOption: option function to apply
func WithLogging(enabled bool) ProfilerBuilderOption {
	return func(p *Profiler) {
		p.logEnabled = enabled
	}
}

// NewProfiler creates a new Profiler. It logs every DefaultInterval unless configured otherwise.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		mu:             &sync.Mutex{},
		label:          "render",
		lastTime:       time.Now(),
		updateInterval: DefaultInterval,
		logEnabled:     true,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Tick should be called once per loop iteration.
// When the interval has elapsed it computes the rate and logs it along with heap usage,
// allocation rate, GC pauses and total memory.
//
// Returns:
//   - bool: true if a report was produced this tick
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.lastRate = float64(p.frameCount) / elapsed.Seconds()

	if p.logEnabled {
		runtime.ReadMemStats(&p.memStats)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a ring of the last 256 pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		log.Printf("[Profiler] %s: %.2f/s | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			p.label, p.lastRate, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
	}

	p.frameCount = 0
	p.lastTime = currentTime
	return true
}

// Rate returns the iterations per second measured at the last report, or 0 before the first one.
func (p *Profiler) Rate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastRate
}

// Label returns the loop name.
func (p *Profiler) Label() string {
	return p.label
}
