// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: dock/redistribute.go
// Summary: Proportional redistribution of sibling fractions.
// Usage: Run after every insert, delete and manual resize so siblings sum to one.

package dock

import "math"

// driftEpsilon is the residual below which rounding drift is left alone.
const driftEpsilon = 1e-12

// DefaultSumTolerance is the accepted deviation of a container's children from 1.
const DefaultSumTolerance = 1e-9

// Redistribute rescales the adjustable entries of fractions so the whole set
// sums to one. Entries with fixed[i] set keep their value. When the adjustable
// entries sum to zero the remaining space is split evenly between them.
// The input slice is not modified.
func Redistribute(fractions []float64, fixed []bool) []float64 {
	out := append([]float64(nil), fractions...)
	if len(out) == 0 {
		return out
	}

	fixedSum, adjustableSum := 0.0, 0.0
	adjustable := 0
	last := -1
	for i, f := range out {
		if i < len(fixed) && fixed[i] {
			fixedSum += f
			continue
		}
		adjustableSum += f
		adjustable++
		last = i
	}
	if adjustable == 0 {
		return out
	}

	remaining := math.Max(0, 1-fixedSum)
	if adjustableSum <= 0 {
		each := remaining / float64(adjustable)
		for i := range out {
			if i < len(fixed) && fixed[i] {
				continue
			}
			out[i] = each
		}
	} else {
		scale := remaining / adjustableSum
		for i := range out {
			if i < len(fixed) && fixed[i] {
				continue
			}
			out[i] *= scale
		}
	}

	foldDrift(out, last)
	return out
}

// normalize scales every entry in place so the set sums to one, splitting
// evenly when the set sums to zero.
func normalize(out []float64) []float64 {
	total := 0.0
	for _, f := range out {
		total += f
	}
	for i := range out {
		if total <= 0 {
			out[i] = 1 / float64(len(out))
		} else {
			out[i] /= total
		}
	}
	foldDrift(out, len(out)-1)
	return out
}

// foldDrift adds any residual from 1 to out[into], without going negative.
func foldDrift(out []float64, into int) {
	if into < 0 || into >= len(out) {
		return
	}
	total := 0.0
	for _, f := range out {
		total += f
	}
	drift := 1 - total
	if math.Abs(drift) > driftEpsilon {
		out[into] = clampFraction(out[into] + drift)
	}
}

// insertShares returns the scaled fractions of the existing children and the
// share of a child appended to them. A hint in (0,1] is taken as the new
// child's share; no hint means a fair 1/(n+1) share.
func insertShares(existing []float64, hint float64) ([]float64, float64) {
	n := len(existing)
	if n == 0 {
		return nil, 1
	}

	share := 1 / float64(n+1)
	if hint > 0 {
		share = clampFraction(hint)
	}

	sum := 0.0
	for _, f := range existing {
		sum += f
	}

	out := make([]float64, n)
	if sum <= 0 {
		each := (1 - share) / float64(n)
		for i := range out {
			out[i] = each
		}
	} else {
		scale := (1 - share) / sum
		for i, f := range existing {
			out[i] = f * scale
		}
	}
	return out, share
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func sumsToOne(fractions []float64, tolerance float64) bool {
	total := 0.0
	for _, f := range fractions {
		total += f
	}
	return math.Abs(total-1) <= tolerance
}
