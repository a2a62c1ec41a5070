package playground

import (
	log "github.com/mgutz/logxi/v1"

	"github.com/phanxgames/bloom"
)

var logger = log.New("playground")

// SetLogLevel sets the level of the playground logger.
func SetLogLevel(level int) {
	logger.SetLevel(level)
}

// Preview keeps one live instance in step with an Editor. Each edit replaces
// the instance outright: the old one is destroyed and a new one created, so
// the preview always restarts its cycle from the edited config.
type Preview struct {
	engine *bloom.Engine
	host   bloom.Host
	inst   *bloom.Instance
	rev    uint64
	synced bool
}

// NewPreview mounts previews on host through engine.
func NewPreview(engine *bloom.Engine, host bloom.Host) *Preview {
	return &Preview{engine: engine, host: host}
}

// Sync rebuilds the instance if the editor changed since the last call. When
// the editor's config does not build, the previous instance keeps running
// and the error is returned.
func (p *Preview) Sync(ed *Editor) error {
	rev := ed.Revision()
	if p.synced && rev == p.rev {
		return nil
	}
	p.rev, p.synced = rev, true

	cfg, err := ed.Build()
	if err != nil {
		logger.Debug("preview kept previous config", "err", err)
		return err
	}

	if p.inst != nil {
		p.inst.Destroy()
		p.inst = nil
	}
	inst, err := p.engine.Create(p.host, bloom.Resolved(cfg))
	if err != nil {
		return err
	}
	p.inst = inst
	logger.Debug("preview rebuilt", "revision", rev, "frames", len(cfg.Pattern))
	return nil
}

// Instance returns the live instance, or nil before the first successful
// Sync.
func (p *Preview) Instance() *bloom.Instance {
	return p.inst
}

// Close destroys the live instance.
func (p *Preview) Close() {
	if p.inst != nil {
		p.inst.Destroy()
		p.inst = nil
	}
}
