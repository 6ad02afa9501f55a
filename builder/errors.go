// SPDX-License-Identifier: MIT
// Package: polarity/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Implementations attach context via %w wrapping with a method tag,
//     e.g. "Caveman: nCaves=0 < min=1: <sentinel>".
//   - Factories never panic.

package builder

import "errors"

// ErrConfiguration indicates invalid build parameters: a cave count,
// clique size, ring size, or neighborhood radius outside its documented
// domain. Deterministic and non-retryable — the caller's configuration
// is wrong, not the environment.
//
// Usage: if errors.Is(err, ErrConfiguration) { /* reject the run config */ }.
var ErrConfiguration = errors.New("builder: invalid topology configuration")
