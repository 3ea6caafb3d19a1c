package core

import "testing"

func TestActionForByte(t *testing.T) {
	tests := []struct {
		b      byte
		action Action
		ok     bool
	}{
		{'w', ActionUp, true},
		{'s', ActionDown, true},
		{'a', ActionLeft, true},
		{'d', ActionRight, true},
		{'q', ActionQuit, true},
		{0x03, ActionQuit, true},
		{'W', ActionNone, false},
		{'x', ActionNone, false},
		{'\n', ActionNone, false},
	}

	for _, tc := range tests {
		action, ok := ActionForByte(tc.b)
		if action != tc.action || ok != tc.ok {
			t.Errorf("ActionForByte(%q) = (%v, %v), expected (%v, %v)", tc.b, action, ok, tc.action, tc.ok)
		}
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionQuit, DirRight, false},
		{ActionNone, DirRight, false},
	}

	for _, tc := range tests {
		dir, ok := tc.action.Direction()
		if ok != tc.ok || (ok && dir != tc.dir) {
			t.Errorf("%v.Direction() = (%v, %v), expected (%v, %v)", tc.action, dir, ok, tc.dir, tc.ok)
		}
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Action != ActionNone {
		t.Error("Zero frame should carry no action")
	}
	if f.Has(ActionNone) {
		t.Error("Has(ActionNone) should always be false")
	}

	f.Set(ActionLeft)
	f.Set(ActionUp)
	if !f.Has(ActionUp) || f.Has(ActionLeft) {
		t.Errorf("Set should replace the action, got %v", f.Action)
	}

	f.Clear()
	if f.Action != ActionNone {
		t.Error("Frame should carry no action after Clear")
	}
}
