package loop

import "time"

// FrameClock paces the loop at a fixed frame rate by sleeping off whatever
// is left of each frame.
type FrameClock struct {
	frame time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameClock creates a clock ticking fps times per second.
func NewFrameClock(fps int) *FrameClock {
	return &FrameClock{
		frame: time.Second / time.Duration(fps),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Tick blocks until one frame has passed since the previous Tick. The first
// call returns immediately.
func (c *FrameClock) Tick() {
	now := c.now()
	if !c.last.IsZero() {
		if elapsed := now.Sub(c.last); elapsed < c.frame {
			c.sleep(c.frame - elapsed)
			now = c.now()
		}
	}
	c.last = now
}

// Sleep blocks for d.
func (c *FrameClock) Sleep(d time.Duration) {
	c.sleep(d)
}
