// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix construction and
// numeric policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that applies defaults then overrides.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: options fields are unexported; public APIs consume ...Option.

package sparse

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on Set and
// on ingestion paths (Parse, FromDocument). When enabled, NaN and ±Inf
// values are rejected with ErrNaNInf instead of being stored.
const DefaultValidateNaNInf = true

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

// options is the internal carrier of construction-time policy.
type options struct {
	validateNaNInf bool // reject NaN/±Inf in Set when true
}

// defaultOptions returns the documented zero-config behavior.
func defaultOptions() options {
	return options{validateNaNInf: DefaultValidateNaNInf}
}

// WithValidateNaNInf enables or disables the finite-only numeric policy.
// Keep it ON for data flows ingesting untrusted text; disable only in
// controlled pipelines that deliberately traffic in non-finite values.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *options) { o.validateNaNInf = enabled }
}

// gatherOptions applies defaults, then user overrides in call order.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
