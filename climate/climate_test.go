package climate

import (
	"math"
	"math/rand"
	"testing"
)

func newTestModel(t *testing.T, seed int64) *Model {
	t.Helper()
	m, err := NewModel(seed, Config{})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	m1 := newTestModel(t, 12345)
	m2 := newTestModel(t, 12345)
	for i := 0; i < 200; i++ {
		x, z := i*313-5000, i*177-9000
		if a, b := m1.Temperature(x, z), m2.Temperature(x, z); a != b {
			t.Fatalf("Temperature(%d, %d) differs across models with equal seed: %v vs %v", x, z, a, b)
		}
		if a, b := m1.Humidity(x, z), m2.Humidity(x, z); a != b {
			t.Fatalf("Humidity(%d, %d) differs across models with equal seed: %v vs %v", x, z, a, b)
		}
	}
}

func TestRangeInvariant(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 42)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		x := r.Intn(4_000_000) - 2_000_000
		z := r.Intn(4_000_000) - 2_000_000
		if v := m.Temperature(x, z); v < 0 || v > 1 {
			t.Fatalf("Temperature(%d, %d) = %v outside [0,1]", x, z, v)
		}
		if v := m.Humidity(x, z); v < 0 || v > 1 {
			t.Fatalf("Humidity(%d, %d) = %v outside [0,1]", x, z, v)
		}
	}
}

// TestLatitudeClamp verifies the latitude term saturates at 1 far from the
// equator instead of driving temperature negative. With the default weight
// of 0.7, a fully polar column can draw at most 0.3 from noise.
func TestLatitudeClamp(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 7)
	for _, z := range []int{1_000_000, -1_000_000, 50_000_000} {
		for x := -500; x <= 500; x += 100 {
			v := m.Temperature(x, z)
			if v < 0 {
				t.Fatalf("polar temperature negative at (%d, %d): %v", x, z, v)
			}
			if v > 0.3+1e-9 {
				t.Fatalf("polar temperature exceeds noise share at (%d, %d): %v", x, z, v)
			}
		}
	}
}

func TestEquatorWarmerThanPoles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 99)
	var equator, pole float64
	const n = 200
	for i := 0; i < n; i++ {
		equator += m.Temperature(i*257, 0)
		pole += m.Temperature(i*257, 9_500)
	}
	if equator/n <= pole/n {
		t.Fatalf("mean equator temperature %v not above mean near-pole temperature %v", equator/n, pole/n)
	}
}

// TestDecorrelation verifies temperature and humidity use independent seeds.
// A shared seed would push the Pearson correlation towards 1.
func TestDecorrelation(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 2024)
	r := rand.New(rand.NewSource(9))

	const n = 1000
	var temps, humids [n]float64
	for i := 0; i < n; i++ {
		// Stay near the equator so the latitude gradient does not
		// dominate the noise component under test.
		x := r.Intn(200_000) - 100_000
		z := r.Intn(2_000) - 1_000
		temps[i] = m.Temperature(x, z)
		humids[i] = m.Humidity(x, z)
	}

	if r := pearson(temps[:], humids[:]); math.Abs(r) > 0.5 {
		t.Fatalf("temperature and humidity correlate too strongly: r = %v", r)
	}
}

func pearson(a, b []float64) float64 {
	n := float64(len(a))
	var sumA, sumB float64
	for i := range a {
		sumA += a[i]
		sumB += b[i]
	}
	meanA, meanB := sumA/n, sumB/n

	var cov, varA, varB float64
	for i := range a {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}
	return cov / math.Sqrt(varA*varB)
}
