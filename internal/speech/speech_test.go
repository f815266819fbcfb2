package speech

import "testing"

func TestNoopSpeakIsSafe(t *testing.T) {
	var s Speaker = Noop{}
	s.Speak("hello", "en-US")
}

func TestMissingSynthesizerIsSilent(t *testing.T) {
	c := NewCommand("definitely-not-a-real-synth-binary", nil)
	c.Speak("xin chào", "vi-VN")
	if c.path != "" {
		t.Errorf("unexpected resolved path %q", c.path)
	}
}

func TestEmptyTextIsIgnored(t *testing.T) {
	c := NewCommand("", nil)
	c.Speak("", "en-US")
}
