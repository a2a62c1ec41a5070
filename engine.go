package bloom

import "time"

// EngineConfig configures NewEngine.
type EngineConfig struct {
	// Driver delivers frame callbacks. Required.
	Driver FrameDriver
	// Gamut is the result of a one-time capability probe (see DetectGamut).
	Gamut Gamut
	// Presets resolves named references. Defaults to DefaultPresets().
	Presets *Presets
}

// Engine is the public entry point: it resolves configs, mounts grids on
// hosts and registers the resulting instances with one shared Scheduler.
type Engine struct {
	presets *Presets
	sched   *Scheduler
}

// NewEngine creates an engine with its own scheduler. Panics if cfg.Driver
// is nil.
func NewEngine(cfg EngineConfig) *Engine {
	presets := cfg.Presets
	if presets == nil {
		presets = DefaultPresets()
	}
	return &Engine{
		presets: presets,
		sched:   NewScheduler(cfg.Driver, NewInterpolator(cfg.Gamut)),
	}
}

// Create resolves in, attaches a grid to host and starts animating it. The
// logical clock is anchored on the first frame the instance is drawn. On a
// resolve error nothing is attached.
func (e *Engine) Create(host Host, in Input) (*Instance, error) {
	return e.create(host, in, 0, false)
}

// CreateAt is Create with an explicit logical start time on the driver's
// clock. Instances sharing a start time and config stay phase-locked.
func (e *Engine) CreateAt(host Host, in Input, start time.Duration) (*Instance, error) {
	return e.create(host, in, start, true)
}

func (e *Engine) create(host Host, in Input, start time.Duration, started bool) (*Instance, error) {
	cfg, err := e.presets.Resolve(in)
	if err != nil {
		return nil, err
	}
	inst := &Instance{
		grid:    host.AttachGrid(),
		config:  cfg,
		start:   start,
		started: started,
		active:  true,
	}
	e.sched.Register(inst)
	logger.Debug("instance created", "instance", inst.id, "frames", len(cfg.Pattern))
	return inst, nil
}

// Presets returns the tables used for named references.
func (e *Engine) Presets() *Presets {
	return e.presets
}

// Scheduler returns the engine's shared frame loop.
func (e *Engine) Scheduler() *Scheduler {
	return e.sched
}
