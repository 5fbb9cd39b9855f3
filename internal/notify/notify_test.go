package notify

import "testing"

func TestLoadPreferencesEnvOverrides(t *testing.T) {
	t.Setenv("LAB1GK_NOTIFY_TITLE", "My Sketcher")
	t.Setenv("LAB1GK_NOTIFY_COPY_TEXT", "%s is on the clipboard")

	prefs := LoadPreferences()
	if prefs.Title != "My Sketcher" {
		t.Errorf("Title = %q, want %q", prefs.Title, "My Sketcher")
	}
	if got := prefs.Events[EventCopy].Template; got != "%s is on the clipboard" {
		t.Errorf("copy template = %q", got)
	}
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	n.Enable(EventCopy, true)
	n.Copy("sketch", nil) // must not panic
}

func TestDisabledEventDoesNotDispatch(t *testing.T) {
	n := New(DefaultPreferences())
	if n.enabledFor(EventCopy) {
		t.Error("copy event enabled by default")
	}
	n.Enable(EventCopy, true)
	if !n.enabledFor(EventCopy) {
		t.Error("copy event not enabled after Enable")
	}
}
