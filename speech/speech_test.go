package speech

import "testing"

// fakeSynth records calls and lets tests fire the natural-end callback.
type fakeSynth struct {
	spoken  []string
	cancels int
	pauses  int
	resumes int
	done    func()
}

func (s *fakeSynth) Speak(text string, done func()) error {
	s.spoken = append(s.spoken, text)
	s.done = done
	return nil
}

func (s *fakeSynth) Pause() error  { s.pauses++; return nil }
func (s *fakeSynth) Resume() error { s.resumes++; return nil }
func (s *fakeSynth) Cancel()       { s.cancels++ }

func TestSpeak_CancelsPriorUtterance(t *testing.T) {
	synth := &fakeSynth{}
	c := NewController(synth)

	c.Speak("first", nil)
	c.Speak("second", nil)

	if synth.cancels != 2 {
		t.Errorf("expected cancel before each utterance, got %d", synth.cancels)
	}
	if len(synth.spoken) != 2 || synth.spoken[1] != "second" {
		t.Errorf("unexpected spoken sequence: %v", synth.spoken)
	}
	if c.State() != Speaking {
		t.Errorf("expected Speaking, got %v", c.State())
	}
}

func TestPauseResumeStop(t *testing.T) {
	synth := &fakeSynth{}
	c := NewController(synth)

	// Pause and resume are no-ops outside their source states.
	c.Pause()
	c.Resume()
	if synth.pauses != 0 || synth.resumes != 0 {
		t.Error("pause/resume must not reach the synthesizer while idle")
	}

	c.Speak("hello", nil)
	c.Pause()
	if c.State() != Paused {
		t.Fatalf("expected Paused, got %v", c.State())
	}

	c.Pause()
	if synth.pauses != 1 {
		t.Error("pausing while paused must be a no-op")
	}

	c.Resume()
	if c.State() != Speaking {
		t.Fatalf("expected Speaking after resume, got %v", c.State())
	}

	c.Stop()
	if c.State() != Idle {
		t.Fatalf("expected Idle after stop, got %v", c.State())
	}
}

func TestNaturalEnd_FiresCallbackAndIdles(t *testing.T) {
	synth := &fakeSynth{}
	c := NewController(synth)

	ended := false
	c.Speak("hello", func() { ended = true })
	synth.done()

	if !ended {
		t.Error("expected the onEnd callback to fire")
	}
	if c.State() != Idle {
		t.Errorf("expected Idle after natural end, got %v", c.State())
	}
}

func TestStaleEndCallbackIgnored(t *testing.T) {
	synth := &fakeSynth{}
	c := NewController(synth)

	firstEnded := false
	c.Speak("first", func() { firstEnded = true })
	firstDone := synth.done

	c.Speak("second", nil)
	firstDone()

	if firstEnded {
		t.Error("a displaced utterance must not fire its callback")
	}
	if c.State() != Speaking {
		t.Errorf("stale callback must not change state, got %v", c.State())
	}
}

func TestExternalTriggersForceIdle(t *testing.T) {
	tests := []struct {
		name    string
		trigger func(c *Controller)
	}{
		{name: "tab hidden", trigger: func(c *Controller) { c.HandleVisibilityChange(true) }},
		{name: "unload", trigger: func(c *Controller) { c.HandleUnload() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synth := &fakeSynth{}
			c := NewController(synth)
			c.Speak("hello", nil)
			cancelsBefore := synth.cancels

			tt.trigger(c)

			if c.State() != Idle {
				t.Errorf("expected Idle, got %v", c.State())
			}
			if synth.cancels != cancelsBefore+1 {
				t.Error("expected the in-progress utterance to be cancelled")
			}
		})
	}
}

func TestVisibilityShownIsNoOp(t *testing.T) {
	synth := &fakeSynth{}
	c := NewController(synth)
	c.Speak("hello", nil)

	c.HandleVisibilityChange(false)

	if c.State() != Speaking {
		t.Errorf("becoming visible must not stop speech, got %v", c.State())
	}
}
