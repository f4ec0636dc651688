package lang

import "testing"

func TestLCG_FirstStep(t *testing.T) {
	r := lcg{seed: DefaultSeed}
	r.next()

	// (12345 * 1664525 + 1013904223) mod 2^32
	const want = 87628868
	if r.seed != want {
		t.Errorf("expected seed %d after one step, got %d", want, r.seed)
	}
}

func TestLCG_ValuesInUnitInterval(t *testing.T) {
	r := lcg{seed: DefaultSeed}

	for i := range 1000 {
		v := r.next()
		if v < 0 || v >= 1 {
			t.Fatalf("value %d out of [0, 1): %v", i, v)
		}
	}
}

func TestLCG_Deterministic(t *testing.T) {
	a := lcg{seed: DefaultSeed}
	b := lcg{seed: DefaultSeed}

	for i := range 100 {
		if av, bv := a.next(), b.next(); av != bv {
			t.Fatalf("sequences diverge at step %d: %v != %v", i, av, bv)
		}
	}
}

func TestInterp_RandomUsesSharedGenerator(t *testing.T) {
	// RANDOM, SHUFFLE, and SAMPLE draw from one generator, so a RANDOM
	// call advances the sequence the others see.
	withCall, _ := run(t, `
STORE r RANDOM()
RANGE 1 TO 5 nums
SAMPLE nums pick
`)
	without, _ := run(t, `
RANGE 1 TO 5 nums
SAMPLE nums pick
`)

	gen := lcg{seed: DefaultSeed}
	first := gen.next()
	second := gen.next()

	if withCall.variables["r"] != first {
		t.Errorf("RANDOM does not match the generator: %v", withCall.variables["r"])
	}

	pickAt := func(v float64) float64 {
		return float64(min(int(v*5), 4) + 1)
	}

	if got, want := withCall.variables["pick"], pickAt(second); got != want {
		t.Errorf("sample after RANDOM: expected %v, got %v", want, got)
	}

	if got, want := without.variables["pick"], pickAt(first); got != want {
		t.Errorf("sample without RANDOM: expected %v, got %v", want, got)
	}
}

func TestInterp_SeedOption(t *testing.T) {
	in := New(WithSeed(99), WithConsole(&memConsole{}))
	if err := in.Run(`STORE r RANDOM()`); err != nil {
		t.Fatalf("run error: %v", err)
	}

	r := lcg{seed: 99}
	if in.variables["r"] != r.next() {
		t.Errorf("seed option ignored: %v", in.variables["r"])
	}
}
