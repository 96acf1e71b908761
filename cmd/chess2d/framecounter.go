package main

import (
	"fmt"
	"time"
)

// FrameCounter measures the rate at which frames are presented.
type FrameCounter struct {
	start  time.Time
	frames uint64
}

// Reset starts a new measurement at now.
func (f *FrameCounter) Reset(now time.Time) {
	f.start = now
	f.frames = 0
}

// Tick records one presented frame.
func (f *FrameCounter) Tick() {
	f.frames++
}

// Rate returns the frames per second since the last reset.
func (f *FrameCounter) Rate(now time.Time) float64 {
	elapsed := now.Sub(f.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(f.frames) / elapsed
}

// prettyRate returns a human-readable version of the given frame rate.
func prettyRate(v float64) string {
	return fmt.Sprintf("%.1f fps", v)
}
