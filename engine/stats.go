package engine

import (
	"fmt"
	"time"
)

// FrameStats accumulates render timings across frames
type FrameStats struct {
	Frames int
	Total  time.Duration
	Last   time.Duration
	Max    time.Duration
}

func (s *FrameStats) Record(d time.Duration) {
	s.Frames++
	s.Total += d
	s.Last = d
	if d > s.Max {
		s.Max = d
	}
}

// Average returns the mean render time, zero before the first frame
func (s FrameStats) Average() time.Duration {
	if s.Frames == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Frames)
}

func (s FrameStats) String() string {
	return fmt.Sprintf("frames=%d avg=%v last=%v max=%v", s.Frames, s.Average(), s.Last, s.Max)
}
