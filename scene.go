package bloom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, the frame request
// queue, running tweens and render buffers. It implements FrameDriver: frame
// callbacks requested during one Update run at the start of the next, before
// that frame is drawn.
type Scene struct {
	root *Node

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	frames   FrameQueue
	clock    func() time.Duration
	updateFn func() error
	tweens   []*TweenGroup

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	commands []RenderCommand
	pointer  pointerState

	injectQueue     []syntheticPointerEvent
	screenshotQueue []string
	script          *ScriptRunner
}

// NewScene creates a new scene with a pre-created root container. Its clock
// starts at zero now.
func NewScene() *Scene {
	epoch := time.Now()
	return &Scene{
		root:          NewContainer("root"),
		clock:         func() time.Duration { return time.Since(epoch) },
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Now returns the scene clock: time since the scene was created, unless a
// clock was injected with SetClock.
func (s *Scene) Now() time.Duration {
	return s.clock()
}

// SetClock replaces the scene clock. Tests use it to step time by hand.
func (s *Scene) SetClock(fn func() time.Duration) {
	s.clock = fn
}

// RequestFrame implements FrameDriver.
func (s *Scene) RequestFrame(fn FrameFunc) {
	s.frames.RequestFrame(fn)
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (s *Scene) PendingFrames() int {
	return s.frames.Pending()
}

// SetUpdateFunc registers fn to run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFn = fn
}

// AddTween advances g every Update until it reports Done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// Update advances an attached script, processes input, runs frame
// callbacks, advances tweens, then calls the update func.
func (s *Scene) Update() error {
	if s.script != nil {
		s.script.step(s)
	}
	if !s.processInjectedInput() {
		s.processInput()
	}
	return s.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step is Update without input polling: it runs pending frame callbacks at
// the current clock, advances tweens by dt seconds, then calls the update
// func.
func (s *Scene) Step(dt float32) error {
	s.frames.Flush(s.clock())

	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live

	if s.updateFn != nil {
		return s.updateFn()
	}
	return nil
}

// Commands traverses the tree and returns this frame's render commands. The
// returned slice is reused by the next call.
func (s *Scene) Commands() []RenderCommand {
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1, false)
	return s.commands
}

// Draw traverses the scene tree and draws it onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.Commands()
	s.submit(screen)
	s.flushScreenshots(screen)
}
