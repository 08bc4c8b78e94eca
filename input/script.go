package input

// ScriptHook replays a fixed key sequence, advancing one code per Pump
// Used by the headless bench and by tests in place of a platform hook
type ScriptHook struct {
	codes []Code
	pos   int
	loop  bool

	latest Code
	seen   bool

	installErr error
	installed  bool
}

// NewScriptHook creates a hook that replays codes; loop restarts at the end
func NewScriptHook(loop bool, codes ...Code) *ScriptHook {
	return &ScriptHook{codes: codes, loop: loop}
}

// FailInstall makes Install return err
func (h *ScriptHook) FailInstall(err error) {
	h.installErr = err
}

func (h *ScriptHook) Install() error {
	if h.installErr != nil {
		return h.installErr
	}
	h.installed = true
	return nil
}

func (h *ScriptHook) Pump() {
	if len(h.codes) == 0 {
		return
	}
	if h.pos >= len(h.codes) {
		if !h.loop {
			return
		}
		h.pos = 0
	}
	h.latest = h.codes[h.pos]
	h.seen = true
	h.pos++
}

func (h *ScriptHook) Latest() (Code, bool) {
	return h.latest, h.seen
}

func (h *ScriptHook) Uninstall() {
	h.installed = false
}

// Installed reports whether the hook is currently attached
// Only meaningful once the owning sampler has exited
func (h *ScriptHook) Installed() bool {
	return h.installed
}
