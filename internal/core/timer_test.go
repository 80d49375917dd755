package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedPeriodFiresOncePerPeriod(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedPeriod(42 * time.Millisecond)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	clock.advance(20 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not fire before the period elapses")
	}
	clock.advance(22 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should fire once the period elapses")
	}
	if fs.ShouldStep() {
		t.Fatal("should not fire twice without time passing")
	}
}

func TestFixedPeriodClampsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedPeriod(10 * time.Millisecond)
	fs.now = clock.now
	fs.ShouldStep()

	clock.advance(time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("expected a stalled timer to fire at most twice, got %d", fired)
	}
}

func TestNewFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.Period(); got != time.Second/60 {
		t.Fatalf("expected default period of 1/60s, got %v", got)
	}
	fs.SetPeriod(-time.Second)
	if got := fs.Period(); got != time.Second/60 {
		t.Fatalf("expected non-positive period to fall back to 1/60s, got %v", got)
	}
}
