package cursor

import (
	"math"
	"math/rand"
	"testing"
)

func TestNew(t *testing.T) {
	c := New(12)
	if c.Value() != 0 || c.Max() != 12 {
		t.Fatalf("New(12) = (%d, %d), want (0, 12)", c.Value(), c.Max())
	}
	if c.AtEnd() {
		t.Error("fresh cursor should not be at end")
	}

	c = New(-3)
	if c.Max() != 0 || !c.AtEnd() {
		t.Errorf("New(-3) = (%d, %d), want (0, 0) at end", c.Value(), c.Max())
	}
}

func TestRetreatSaturatesAtZero(t *testing.T) {
	c := New(10)
	c.Retreat(5)
	if c.Value() != 0 {
		t.Errorf("Retreat(5) from 0 = %d, want 0", c.Value())
	}

	c.Advance(3)
	c.Retreat(1)
	if c.Value() != 2 {
		t.Errorf("value = %d, want 2", c.Value())
	}
	c.Retreat(3)
	if c.Value() != 0 {
		t.Errorf("Retreat past zero = %d, want 0", c.Value())
	}
}

func TestAdvanceSaturatesAtMax(t *testing.T) {
	c := New(10)
	c.End()
	c.Advance(5)
	if c.Value() != 10 {
		t.Errorf("Advance(5) from max = %d, want 10", c.Value())
	}

	c.Home()
	c.Advance(9)
	c.Advance(1)
	if !c.AtEnd() {
		t.Errorf("value = %d, want at end", c.Value())
	}
}

func TestNegativeSteps(t *testing.T) {
	c := New(4)
	c.Advance(-1)
	if c.Value() != 0 {
		t.Errorf("Advance(-1) from 0 = %d, want 0", c.Value())
	}
	c.Retreat(-2)
	if c.Value() != 2 {
		t.Errorf("Retreat(-2) from 0 = %d, want 2", c.Value())
	}
}

func TestExtremeSteps(t *testing.T) {
	c := New(6)
	c.Advance(3)

	c.Advance(math.MinInt)
	if c.Value() != 0 {
		t.Errorf("Advance(MinInt) = %d, want 0", c.Value())
	}
	c.Retreat(math.MinInt)
	if c.Value() != 6 {
		t.Errorf("Retreat(MinInt) = %d, want 6", c.Value())
	}
	c.Retreat(math.MaxInt)
	if c.Value() != 0 {
		t.Errorf("Retreat(MaxInt) = %d, want 0", c.Value())
	}
	c.Advance(math.MaxInt)
	if c.Value() != 6 {
		t.Errorf("Advance(MaxInt) = %d, want 6", c.Value())
	}
}

func TestRandomWalkStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c := New(24)
	for i := 0; i < 10000; i++ {
		n := r.Intn(80) - 40
		switch r.Intn(4) {
		case 0:
			c.Advance(n)
		case 1:
			c.Retreat(n)
		case 2:
			c.Home()
		case 3:
			c.End()
		}
		if c.Value() < 0 || c.Value() > c.Max() {
			t.Fatalf("step %d: value %d out of [0, %d]", i, c.Value(), c.Max())
		}
	}
}
