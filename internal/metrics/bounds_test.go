package metrics

import (
	"testing"

	"github.com/san-kum/attractor/internal/dynamo"
)

func TestBounds(t *testing.T) {
	b := NewBounds()
	b.Observe(dynamo.State{1, -5, 2}, 0)
	b.Observe(dynamo.State{3, 0, -1}, 0.01)

	if b.Value() != 5 {
		t.Errorf("expected 5, got %f", b.Value())
	}

	b.Reset()
	if b.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", b.Value())
	}
}

func TestExcursion(t *testing.T) {
	e := NewExcursion()
	e.Observe(dynamo.State{0, 0, 0}, 0)
	e.Observe(dynamo.State{3, 4, 0}, 0.01)
	e.Observe(dynamo.State{1, 0, 0}, 0.02)

	if e.Value() != 5 {
		t.Errorf("expected 5, got %f", e.Value())
	}
}
