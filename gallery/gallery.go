// Package gallery shows every built-in bloom preset side by side. Animation
// preset i is paired with color preset i; clicking (or pressing the tile's
// key) toggles a tile between running and stopped.
package gallery

import (
	"time"

	log "github.com/mgutz/logxi/v1"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/phanxgames/bloom"
)

var logger = log.New("gallery")

// SetLogLevel sets the level of the gallery logger.
func SetLogLevel(level int) {
	logger.SetLevel(level)
}

// Entry pairs an animation preset with a color preset under a display title.
type Entry struct {
	Title     string
	Animation string
	Swatch    string
}

// Entries pairs the i-th animation of p with its i-th color. The shorter
// table bounds the result.
func Entries(p *bloom.Presets) []Entry {
	anims, swatches := p.AnimationNames(), p.SwatchNames()
	n := len(anims)
	if len(swatches) < n {
		n = len(swatches)
	}
	out := make([]Entry, n)
	for i := range out {
		out[i] = Entry{Title: Title(anims[i]), Animation: anims[i], Swatch: swatches[i]}
	}
	return out
}

var titler = cases.Title(language.English)

// Title turns a preset name into a label: "loading" becomes "Loading".
func Title(name string) string {
	return titler.String(name)
}

// Options controls how tiles are started.
type Options struct {
	// PhaseLocked anchors every tile on Start so preset offsets keep them
	// apart. Otherwise each tile starts its cycle on its own first frame.
	PhaseLocked bool
	// Start is the shared logical start time on the engine driver's clock.
	Start time.Duration
}

// Tile is one running gallery entry.
type Tile struct {
	Entry    Entry
	Instance *bloom.Instance
}

// Gallery owns one instance per entry.
type Gallery struct {
	tiles []*Tile
}

// HostFunc returns the host tile i is mounted on.
type HostFunc func(i int, e Entry) bloom.Host

// New creates one instance per entry. If any entry fails to resolve, the
// instances already created are destroyed.
func New(engine *bloom.Engine, entries []Entry, hosts HostFunc, opts Options) (*Gallery, error) {
	g := &Gallery{tiles: make([]*Tile, 0, len(entries))}
	for i, e := range entries {
		in := bloom.Named(e.Animation, e.Swatch)
		var (
			inst *bloom.Instance
			err  error
		)
		if opts.PhaseLocked {
			inst, err = engine.CreateAt(hosts(i, e), in, opts.Start)
		} else {
			inst, err = engine.Create(hosts(i, e), in)
		}
		if err != nil {
			g.Close()
			return nil, errors.Wrapf(err, "gallery: tile %q", e.Title)
		}
		g.tiles = append(g.tiles, &Tile{Entry: e, Instance: inst})
	}
	logger.Debug("gallery ready", "tiles", len(g.tiles), "phaseLocked", opts.PhaseLocked)
	return g, nil
}

// Len returns the number of tiles.
func (g *Gallery) Len() int {
	return len(g.tiles)
}

// Tile returns tile i.
func (g *Gallery) Tile(i int) *Tile {
	return g.tiles[i]
}

// Toggle stops a running tile or restarts a stopped one and returns whether
// it is now running. Out-of-range indices report false.
func (g *Gallery) Toggle(i int) bool {
	if i < 0 || i >= len(g.tiles) {
		return false
	}
	inst := g.tiles[i].Instance
	if inst.Active() {
		inst.Stop()
	} else {
		inst.Start()
	}
	logger.Debug("tile toggled", "tile", g.tiles[i].Entry.Title, "running", inst.Active())
	return inst.Active()
}

// Close destroys every tile.
func (g *Gallery) Close() {
	for _, t := range g.tiles {
		t.Instance.Destroy()
	}
}
