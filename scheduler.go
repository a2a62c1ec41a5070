package bloom

import (
	"time"

	log "github.com/mgutz/logxi/v1"
)

var logger = log.New("bloom")

// SetLogLevel sets the level of the engine logger, e.g. log.LevelDebug to
// trace instance creation and the frame loop stopping.
func SetLogLevel(level int) {
	logger.SetLevel(level)
}

// InstanceID identifies an instance within its Scheduler.
type InstanceID uint32

// Scheduler is the shared frame loop. It keeps a registry of live instances
// and, while the registry is non-empty, holds one pending frame request on
// its driver. Each driven step recomputes every active instance.
//
// A Scheduler is not safe for concurrent use; it belongs to the goroutine
// running the host loop.
type Scheduler struct {
	driver    FrameDriver
	interp    Interpolator
	instances map[InstanceID]*Instance
	order     []InstanceID // registration order
	nextID    InstanceID
	running   bool
	steps     uint64
}

// NewScheduler creates a stopped scheduler that requests frames from driver
// and colors cells with interp.
func NewScheduler(driver FrameDriver, interp Interpolator) *Scheduler {
	if driver == nil {
		panic("bloom: scheduler requires a frame driver")
	}
	return &Scheduler{
		driver:    driver,
		interp:    interp,
		instances: make(map[InstanceID]*Instance),
	}
}

// Register adds inst to the registry, assigns its id, and starts the loop if
// it was stopped.
func (s *Scheduler) Register(inst *Instance) InstanceID {
	s.nextID++
	id := s.nextID
	inst.id = id
	inst.sched = s
	s.instances[id] = inst
	s.order = append(s.order, id)
	s.ensureRunning()
	return id
}

// Deregister removes the instance with id. The loop keeps its pending
// request and stops at the next step that finds the registry empty.
func (s *Scheduler) Deregister(id InstanceID) {
	if _, ok := s.instances[id]; !ok {
		return
	}
	delete(s.instances, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Tick recomputes every registered active instance for timestamp now, in
// registration order. A panic while updating one instance deactivates that
// instance and does not affect the others.
func (s *Scheduler) Tick(now time.Duration) {
	for _, id := range s.order {
		inst := s.instances[id]
		if inst == nil || !inst.active {
			continue
		}
		s.update(inst, now)
	}
}

// Len returns the number of registered instances.
func (s *Scheduler) Len() int {
	return len(s.instances)
}

// Running reports whether a frame request is pending on the driver.
func (s *Scheduler) Running() bool {
	return s.running
}

// Steps returns how many driven steps have run.
func (s *Scheduler) Steps() uint64 {
	return s.steps
}

// Interpolator returns the color interpolator used for every instance.
func (s *Scheduler) Interpolator() Interpolator {
	return s.interp
}

func (s *Scheduler) ensureRunning() {
	if s.running || len(s.instances) == 0 {
		return
	}
	s.running = true
	s.driver.RequestFrame(s.step)
}

// step is the driver callback: one tick, then either another request or a
// transition to stopped.
func (s *Scheduler) step(now time.Duration) {
	s.steps++
	s.Tick(now)
	if len(s.instances) > 0 {
		s.driver.RequestFrame(s.step)
		return
	}
	s.running = false
	logger.Debug("frame loop stopped", "steps", s.steps)
}

func (s *Scheduler) update(inst *Instance, now time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			inst.active = false
			logger.Warn("instance update failed, deactivating", "instance", inst.id, "err", r)
		}
	}()
	inst.render(s.interp, now)
}
