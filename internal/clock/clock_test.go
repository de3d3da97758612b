package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() returned time outside expected range: got %v, expected between %v and %v", actual, before, after)
	}
}

func TestFakeClock_Now(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	clock := NewFakeClock(fixedTime)

	if actual := clock.Now(); !actual.Equal(fixedTime) {
		t.Errorf("FakeClock.Now() = %v, want %v", actual, fixedTime)
	}

	// Time does not move on its own.
	time.Sleep(1 * time.Millisecond)
	if actual := clock.Now(); !actual.Equal(fixedTime) {
		t.Errorf("FakeClock.Now() drifted to %v, want %v", actual, fixedTime)
	}
}

func TestFakeClock_Advance(t *testing.T) {
	initialTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewFakeClock(initialTime)

	clock.Advance(90 * time.Second)

	expected := initialTime.Add(90 * time.Second)
	if actual := clock.Now(); !actual.Equal(expected) {
		t.Errorf("After Advance, Now() = %v, want %v", actual, expected)
	}
}
