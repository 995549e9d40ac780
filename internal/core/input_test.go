package core

import "testing"

func TestInputFramePressedImpliesHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	if !f.IsPressed(ActionJump) || !f.IsDown(ActionJump) {
		t.Error("a pressed action should also be held")
	}

	f.Hold(ActionFire)
	if f.IsPressed(ActionFire) {
		t.Error("Hold should not register a press")
	}
	if !f.IsDown(ActionFire) {
		t.Error("Hold should register the action as down")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSwap)

	c := f.Clone()
	f.Clear()

	if f.IsDown(ActionSwap) || f.Has(ActionSwap) {
		t.Error("Clear should drop all actions")
	}
	if !c.Has(ActionSwap) {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.IsDown(ActionJump) || f.IsPressed(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionSwap.String() != "Swap" {
		t.Errorf("ActionSwap.String() = %q", ActionSwap.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
