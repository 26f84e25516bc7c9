package randdist

import (
	"math"
	"testing"

	"github.com/fsbench-sim/fsbench-sim/vars"
)

func newUniform(seed, min, mean uint64) *Dist {
	d := New()
	d.SetUniform()
	d.SetParam(vars.ParamSeed, vars.IntLiteral(seed))
	d.SetParam(vars.ParamMin, vars.IntLiteral(min))
	d.SetParam(vars.ParamMean, vars.IntLiteral(mean))
	return d
}

func TestUniform_BoundsAndMean(t *testing.T) {
	d := newUniform(42, 1000, 5000)
	n := 10000
	var sum float64
	for i := 0; i < n; i++ {
		v := d.SampleDouble()
		if v < 1000 || v > 9000 {
			t.Fatalf("sample %d: %.1f outside [1000, 9000]", i, v)
		}
		sum += v
	}
	mean := sum / float64(n)
	if math.Abs(mean-5000)/5000 > 0.05 {
		t.Errorf("uniform mean = %.1f, want ≈ 5000 (within 5%%)", mean)
	}
}

func TestGamma_MeanMatchesParam(t *testing.T) {
	d := New()
	d.SetGamma()
	d.SetParam(vars.ParamSeed, vars.IntLiteral(42))
	d.SetParam(vars.ParamMin, vars.IntLiteral(1024))
	d.SetParam(vars.ParamMean, vars.IntLiteral(16384))
	d.SetParam(vars.ParamShape, vars.IntLiteral(1500))

	n := 10000
	var sum float64
	for i := 0; i < n; i++ {
		v := d.SampleDouble()
		if v < 1024 {
			t.Fatalf("sample %d: %.1f below min 1024", i, v)
		}
		sum += v
	}
	mean := sum / float64(n)
	if math.Abs(mean-16384)/16384 > 0.05 {
		t.Errorf("gamma mean = %.1f, want ≈ 16384 (within 5%%)", mean)
	}
}

func TestTabular_RespectsSegmentBounds(t *testing.T) {
	d := New()
	d.SetTable([]Segment{
		{Weight: 80, Min: 0, Max: 100},
		{Weight: 20, Min: 1000, Max: 2000},
	})
	d.SetParam(vars.ParamSeed, vars.IntLiteral(7))

	n := 10000
	low := 0
	for i := 0; i < n; i++ {
		v := d.SampleDouble()
		switch {
		case v >= 0 && v <= 100:
			low++
		case v >= 1000 && v <= 2000:
		default:
			t.Fatalf("sample %d: %.1f outside both segments", i, v)
		}
	}
	frac := float64(low) / float64(n)
	if math.Abs(frac-0.8) > 0.05 {
		t.Errorf("low segment fraction = %.3f, want ≈ 0.80 (within 0.05)", frac)
	}
}

func TestRounding_QuantizesToMultiple(t *testing.T) {
	d := newUniform(42, 1000, 5000)
	d.SetParam(vars.ParamRound, vars.IntLiteral(512))
	for i := 0; i < 1000; i++ {
		v := d.SampleInt()
		if v%512 != 0 {
			t.Fatalf("sample %d: %d not a multiple of 512", i, v)
		}
	}
}

func TestSeed_DeterministicSequences(t *testing.T) {
	a := newUniform(99, 0, 500)
	b := newUniform(99, 0, 500)
	for i := 0; i < 100; i++ {
		if av, bv := a.SampleDouble(), b.SampleDouble(); av != bv {
			t.Fatalf("draw %d: %v != %v with identical seeds", i, av, bv)
		}
	}
}

func TestSetParam_SeedChangeReseeds(t *testing.T) {
	d := newUniform(1, 0, 500)
	first := d.SampleDouble()
	d.SetParam(vars.ParamSeed, vars.IntLiteral(1))
	if again := d.SampleDouble(); again != first {
		t.Errorf("reseed with same seed: first draw %v, want %v", again, first)
	}
}

func TestUntypedDistribution_SamplesZero(t *testing.T) {
	d := New()
	if v := d.SampleDouble(); v != 0 {
		t.Errorf("untyped sample = %v, want 0", v)
	}
	if d.Family() != "" {
		t.Errorf("untyped family = %q, want empty", d.Family())
	}
}

func TestDelayedBinding_ParamsReadAtSampleTime(t *testing.T) {
	d := New()
	d.SetUniform()
	d.SetParam(vars.ParamSeed, vars.IntLiteral(42))
	d.SetParam(vars.ParamMin, vars.IntLiteral(100))
	d.SetParam(vars.ParamMean, vars.IntLiteral(100))

	// min == mean collapses the range to a point.
	if v := d.SampleDouble(); v != 100 {
		t.Errorf("degenerate uniform sample = %v, want 100", v)
	}
}

func TestRegister_FactoryInstalled(t *testing.T) {
	if vars.NewDistributionFunc == nil {
		t.Fatal("init did not register the distribution factory")
	}
	if _, ok := vars.NewDistributionFunc().(*Dist); !ok {
		t.Fatal("factory does not produce a *Dist")
	}
}
