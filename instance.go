package bloom

import "time"

// Instance is one live bloom grid: its cells, resolved config, logical start
// time and active flag. The caller that created it owns it; the scheduler
// only iterates it.
type Instance struct {
	id        InstanceID
	sched     *Scheduler
	grid      Grid
	config    Config
	start     time.Duration
	started   bool
	active    bool
	destroyed bool
}

// ID returns the scheduler-assigned identifier.
func (in *Instance) ID() InstanceID {
	return in.id
}

// Config returns a copy of the resolved config.
func (in *Instance) Config() Config {
	return in.config.Clone()
}

// Active reports whether the instance is being animated.
func (in *Instance) Active() bool {
	return in.active
}

// Destroyed reports whether Destroy has been called.
func (in *Instance) Destroyed() bool {
	return in.destroyed
}

// StartTime returns the logical clock anchor and whether it is set yet.
func (in *Instance) StartTime() (time.Duration, bool) {
	return in.start, in.started
}

// Start resumes animation. The logical clock is not reset, so the pattern
// continues at the phase wall-clock time dictates. No-op when already
// active or destroyed.
func (in *Instance) Start() {
	if in.active || in.destroyed {
		return
	}
	in.active = true
	in.sched.ensureRunning()
}

// Stop pauses animation and blanks every cell immediately. Calling it again
// is harmless.
func (in *Instance) Stop() {
	if in.destroyed {
		return
	}
	in.active = false
	blankGrid(in.grid)
}

// Destroy stops the instance, removes it from the scheduler and detaches its
// grid from the host. Later calls to any method are no-ops.
func (in *Instance) Destroy() {
	if in.destroyed {
		return
	}
	in.Stop()
	in.sched.Deregister(in.id)
	in.grid.Detach()
	in.destroyed = true
	in.grid = nil
	logger.Debug("instance destroyed", "instance", in.id)
}

// render computes and applies the state for now, anchoring the logical clock
// on first use.
func (in *Instance) render(ip Interpolator, now time.Duration) {
	if !in.started {
		in.start = now
		in.started = true
	}
	st := ip.Compute(in.config, now-in.start)
	applyGrid(in.grid, &st)
}
