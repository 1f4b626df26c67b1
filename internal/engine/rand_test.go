package engine

import "testing"

// draw is one scripted Intn call: the bound the engine must ask for and the
// value to return.
type draw struct{ n, v int }

// roll scripts randint(lo, hi) returning value.
func roll(lo, hi, value int) draw { return draw{n: hi - lo + 1, v: value - lo} }

// scriptedRand replays draws in order and fails the test on any surprise,
// which pins down the draw order as well as the values.
type scriptedRand struct {
	t      *testing.T
	script []draw
}

func newScripted(t *testing.T, script ...draw) *scriptedRand {
	return &scriptedRand{t: t, script: script}
}

func (s *scriptedRand) Intn(n int) int {
	s.t.Helper()
	if len(s.script) == 0 {
		s.t.Fatalf("unexpected draw Intn(%d)", n)
	}
	d := s.script[0]
	s.script = s.script[1:]
	if d.n != n {
		s.t.Fatalf("draw Intn(%d), script expected Intn(%d)", n, d.n)
	}
	return d.v
}

func (s *scriptedRand) done() {
	s.t.Helper()
	if len(s.script) > 0 {
		s.t.Fatalf("%d scripted draws left unused", len(s.script))
	}
}

func TestDamageRange(t *testing.T) {
	cases := map[int][2]int{
		25:    {22, 27},
		12:    {10, 13},
		35:    {31, 38},
		55:    {49, 60},
		69420: {62478, 76362},
	}
	for base, want := range cases {
		lo, hi := damageRange(base)
		if lo != want[0] || hi != want[1] {
			t.Fatalf("damageRange(%d) = [%d,%d], want [%d,%d]", base, lo, hi, want[0], want[1])
		}
	}
}

func TestRandint_Bounds(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 10000; i++ {
		v := randint(rng, 3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("randint out of range: %d", v)
		}
	}
	if v := randint(rng, 4, 4); v != 4 {
		t.Fatalf("expected degenerate range to return 4, got %d", v)
	}
}
