// SPDX-License-Identifier: MIT

// Package metrics measures pointer error before and after calibration.
//
// Every function is pure. Aggregates over empty input are 0, and the
// improvement percentage is reported together with a definedness flag: when
// the error before calibration is zero there is nothing to improve, and the
// result is (NoImprovement, false) rather than NaN or Inf.
package metrics
