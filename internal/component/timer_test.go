package component

import "testing"

func TestRepeatingTimerFiresOncePerPeriod(t *testing.T) {
	timer := NewRepeatingTimer(1.0)

	timer.Tick(0.5)
	if timer.JustFinished() {
		t.Fatal("timer finished after half a period")
	}
	timer.Tick(0.5)
	if !timer.JustFinished() {
		t.Fatal("timer did not finish after a full period")
	}
	if timer.Remaining != 1.0 {
		t.Errorf("Remaining = %v, want 1.0", timer.Remaining)
	}
	timer.Tick(0.25)
	if timer.JustFinished() {
		t.Error("JustFinished must reset on the next tick")
	}
}

func TestRepeatingTimerLargeStep(t *testing.T) {
	timer := NewRepeatingTimer(1.0)
	timer.Tick(2.5)
	if !timer.JustFinished() {
		t.Fatal("expected the timer to finish")
	}
	if timer.Remaining != 0.5 {
		t.Errorf("Remaining = %v, want 0.5", timer.Remaining)
	}
}

func TestOneShotTimer(t *testing.T) {
	timer := NewOneShotTimer(1.0)
	timer.Tick(0.75)
	if timer.Finished() || timer.JustFinished() {
		t.Fatal("finished too early")
	}
	timer.Tick(0.75)
	if !timer.JustFinished() || !timer.Finished() {
		t.Fatal("expected the timer to finish")
	}
	if timer.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0", timer.Remaining)
	}
	timer.Tick(1)
	if timer.JustFinished() {
		t.Error("one-shot timer fired twice")
	}
	if timer.Remaining != 0 {
		t.Errorf("Remaining went negative: %v", timer.Remaining)
	}
}

func TestTimerIgnoresNonPositiveStep(t *testing.T) {
	timer := NewRepeatingTimer(1.0)
	timer.Tick(0)
	timer.Tick(-1)
	if timer.Remaining != 1.0 || timer.JustFinished() {
		t.Errorf("timer moved on a non-positive step: %+v", timer)
	}
}
