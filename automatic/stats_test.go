package automatic

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

func fuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestAggregate(t *testing.T) {
	is := is.New(t)
	type tc struct {
		vals  []float64
		mean  float64
		stdev float64
	}
	cases := []tc{
		{[]float64{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]float64{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]float64{1}, 1, 0},
		{[]float64{}, 0, 0},
		{[]float64{1, 1}, 1, 0},
	}
	for _, c := range cases {
		a := &Aggregate{}
		for _, v := range c.vals {
			a.Push(v)
		}
		is.Equal(a.N(), len(c.vals))
		is.True(fuzzyEqual(a.Mean(), c.mean))
		is.True(fuzzyEqual(a.Stdev(), c.stdev))
	}
}

func TestAggregateMinMax(t *testing.T) {
	is := is.New(t)
	a := &Aggregate{}
	for _, v := range []float64{5, -2, 9, 3} {
		a.Push(v)
	}
	is.Equal(a.Min(), -2.0)
	is.Equal(a.Max(), 9.0)
}
