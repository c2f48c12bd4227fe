// SPDX-License-Identifier: MIT

// Package simulate produces synthetic calibration data: target layouts and
// observed clicks that miss their targets by a systematic distortion plus
// bounded uniform jitter.
//
// A Generator is deterministic for a given seed, so a simulated calibration
// run can be reproduced exactly. A Generator is not safe for concurrent use;
// give each goroutine its own.
//
//	g := simulate.NewGenerator(42, simulate.WithJitter(8))
//	samples := g.Samples(simulate.CalibrationTargets())
//	res, err := calibration.Fit(samples, transform.KindAffine)
package simulate
