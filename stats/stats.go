// stats/stats.go
// Package: stats
package stats

import (
	"errors"
	"math"
	"slices"
)

// ErrEmptyInput is returned when a statistic is undefined for an empty row.
var ErrEmptyInput = errors.New("stats: empty input")

// ErrInvalidQuantile is returned when the requested quantile is NaN.
var ErrInvalidQuantile = errors.New("stats: invalid quantile")

// Sum returns the total of all values.
func Sum(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum, nil
}

// Mean returns the sum of all values divided by the count.
// It never mutates its input.
func Mean(values []float64) (float64, error) {
	sum, err := Sum(values)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(values)), nil
}

// Median sorts a copy of the input ascending and returns the middle
// element, or the mean of the two central elements when the count is
// even. The caller's slice keeps its original order.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	cp := slices.Clone(values)
	slices.Sort(cp)
	n := len(cp)
	if n%2 == 0 {
		return (cp[n/2-1] + cp[n/2]) / 2, nil
	}
	return cp[n/2], nil
}

// MinMax returns the smallest and largest value.
func MinMax(values []float64) (min, max float64, err error) {
	if len(values) == 0 {
		return 0, 0, ErrEmptyInput
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, nil
}

// Quantile returns the q-quantile (0..1) of a slice (copy-safe),
// interpolating linearly between the surrounding order statistics.
func Quantile(values []float64, q float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if math.IsNaN(q) {
		return 0, ErrInvalidQuantile
	}
	cp := slices.Clone(values)
	slices.Sort(cp)
	if q <= 0 {
		return cp[0], nil
	}
	if q >= 1 {
		return cp[len(cp)-1], nil
	}
	pos := q * float64(len(cp)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return cp[l], nil
	}
	frac := pos - float64(l)
	return cp[l]*(1-frac) + cp[r]*frac, nil
}

// MeanStd returns the mean and population standard deviation.
func MeanStd(values []float64) (mean, std float64, err error) {
	mean, err = Mean(values)
	if err != nil {
		return 0, 0, err
	}
	var varsum float64
	for _, v := range values {
		d := v - mean
		varsum += d * d
	}
	return mean, math.Sqrt(varsum / float64(len(values))), nil
}
