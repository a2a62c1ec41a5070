package bloom

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrBadScript is returned by LoadScript for scripts that cannot run.
var ErrBadScript = errors.New("bloom: bad script")

// scriptStep is one action of a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected clicks, waits and screenshots across
// frames, for unattended captures of a running scene. Attach it with
// Scene.SetScript.
//
//	{"steps": [
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "all-running"},
//	  {"action": "click", "x": 120, "y": 90},
//	  {"action": "screenshot", "label": "first-stopped"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script. Unknown actions are rejected up front.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, errors.Wrap(ErrBadScript, err.Error())
	}
	if len(sc.Steps) == 0 {
		return nil, errors.Wrap(ErrBadScript, "no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "click", "screenshot", "wait":
		default:
			return nil, errors.Wrapf(ErrBadScript, "step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches r to the scene. It advances once per Update, before
// input is processed.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Injected clicks drain before the next step.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	logger.Debug("script step", "action", st.Action, "index", r.cursor-1)

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
