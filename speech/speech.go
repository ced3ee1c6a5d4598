// Package speech owns the single spoken-utterance slot. Only one utterance
// may be active per browsing context; starting a new one retires the previous
// one first.
package speech

import "sync"

type State int

const (
	Idle State = iota
	Speaking
	Paused
)

func (s State) String() string {
	switch s {
	case Speaking:
		return "speaking"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Synthesizer abstracts the underlying speech API. Speak must invoke done
// when the utterance finishes naturally, never synchronously from within
// Speak itself; Cancel must be synchronous.
type Synthesizer interface {
	Speak(text string, done func()) error
	Pause() error
	Resume() error
	Cancel()
}

// Controller drives the utterance slot through Idle, Speaking and Paused.
type Controller struct {
	mu    sync.Mutex
	synth Synthesizer
	state State
	gen   int
	onEnd func()
}

func NewController(synth Synthesizer) *Controller {
	return &Controller{synth: synth}
}

// Speak cancels any utterance in progress and starts a new one. onEnd fires
// when the new utterance finishes naturally, not when it is displaced.
func (c *Controller) Speak(text string, onEnd func()) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.synth.Cancel()
	c.gen++
	gen := c.gen

	if err := c.synth.Speak(text, func() { c.finished(gen) }); err != nil {
		c.state = Idle
		return err
	}

	c.state = Speaking
	c.onEnd = onEnd
	return nil
}

// finished handles natural end of an utterance. A stale generation means the
// utterance was displaced or stopped and its callback must be ignored.
func (c *Controller) finished(gen int) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.state = Idle
	onEnd := c.onEnd
	c.onEnd = nil
	c.mu.Unlock()

	if onEnd != nil {
		onEnd()
	}
}

// Pause suspends the current utterance. It is a no-op unless speaking.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Speaking {
		return nil
	}
	if err := c.synth.Pause(); err != nil {
		return err
	}
	c.state = Paused
	return nil
}

// Resume continues a paused utterance. It is a no-op unless paused.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Paused {
		return nil
	}
	if err := c.synth.Resume(); err != nil {
		return err
	}
	c.state = Speaking
	return nil
}

// Stop retires the slot from any state.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Controller) stopLocked() {
	c.synth.Cancel()
	c.gen++
	c.state = Idle
	c.onEnd = nil
}

// State reports the current slot state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// HandleVisibilityChange stops speech when the tab is hidden.
func (c *Controller) HandleVisibilityChange(hidden bool) {
	if !hidden {
		return
	}
	c.Stop()
}

// HandleUnload stops speech when the document is unloaded or navigated away
// from.
func (c *Controller) HandleUnload() {
	c.Stop()
}
