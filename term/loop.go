package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/mgutz/logxi/v1"

	"github.com/phanxgames/bloom"
)

var logger = log.New("term")

// SetLogLevel sets the level of the terminal logger.
func SetLogLevel(level int) {
	logger.SetLevel(level)
}

// Loop drives bloom frames from a ticker and dispatches terminal events. Both
// are handled on the goroutine that calls Run, so engine state needs no
// locking.
type Loop struct {
	screen   tcell.Screen
	frames   bloom.FrameQueue
	interval time.Duration
	epoch    time.Time

	// OnKey receives every key that does not quit the loop.
	OnKey func(ev *tcell.EventKey)
	// OnResize runs after the screen has been resynced to a new size.
	OnResize func(w, h int)
}

// NewLoop creates a loop ticking fps times per second. fps below 1 is
// treated as 1.
func NewLoop(screen tcell.Screen, fps int) *Loop {
	if fps < 1 {
		fps = 1
	}
	return &Loop{
		screen:   screen,
		interval: time.Second / time.Duration(fps),
		epoch:    time.Now(),
	}
}

// RequestFrame implements bloom.FrameDriver.
func (l *Loop) RequestFrame(fn bloom.FrameFunc) {
	l.frames.RequestFrame(fn)
}

// Now returns the time since the loop was created.
func (l *Loop) Now() time.Duration {
	return time.Since(l.epoch)
}

// Step runs pending frame callbacks at now and shows the screen. It returns
// the number of callbacks run.
func (l *Loop) Step(now time.Duration) int {
	n := l.frames.Flush(now)
	l.screen.Show()
	return n
}

// Run ticks until ctx is done, the user quits (q, Esc or Ctrl-C), or the
// screen stops delivering events. Quitting returns nil.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(events)
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	logger.Debug("terminal loop started", "interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if l.Handle(ev) {
				logger.Debug("terminal loop quit")
				return nil
			}
		case <-ticker.C:
			l.Step(l.Now())
		}
	}
}

// Handle dispatches one event and reports whether it asks the loop to quit.
func (l *Loop) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return true
		}
		if l.OnKey != nil {
			l.OnKey(ev)
		}
	case *tcell.EventResize:
		l.screen.Sync()
		if l.OnResize != nil {
			w, h := ev.Size()
			l.OnResize(w, h)
		}
	}
	return false
}

// IsQuit reports whether ev is one of the quit keys.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
