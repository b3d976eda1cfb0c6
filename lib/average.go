// Package lib supplies convenience types for other gostack packages.
// Package shall not import packages other than golang's standard
// packages.
package lib

import "math"

// Average accumulate int64 samples and compute running statistical
// summaries, zero value is ready to use.
type Average struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	seeded bool
}

// Add a sample.
func (av *Average) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.seeded == false || sample < av.minval {
		av.minval, av.seeded = sample, true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Samples return the number of samples accumulated so far.
func (av *Average) Samples() int64 {
	return av.n
}

// Min return the smallest sample, 0 before the first sample.
func (av *Average) Min() int64 {
	return av.minval
}

// Max return the largest sample.
func (av *Average) Max() int64 {
	return av.maxval
}

// Sum return the running total of all samples.
func (av *Average) Sum() int64 {
	return av.sum
}

// Mean return the statistical mean, 0 without samples.
func (av *Average) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance return the statistical variance, 0 without samples.
func (av *Average) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	n, mean := float64(av.n), float64(av.Mean())
	return (av.sumsq / n) - (mean * mean)
}

// Sd return the standard deviation, 0 without samples.
func (av *Average) Sd() float64 {
	if av.n == 0 {
		return 0
	}
	return math.Sqrt(av.Variance())
}

// Stats return summaries as a settings-compatible map.
func (av *Average) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":  av.Samples(),
		"min":      av.Min(),
		"max":      av.Max(),
		"mean":     av.Mean(),
		"variance": av.Variance(),
		"stddev":   av.Sd(),
	}
}
