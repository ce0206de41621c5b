// Package environment selects the configuration record compiled into the binary.
// The development record is the default; build with -tags production for the
// production record.
package environment

import "aggregat4/cspenv/internal/domain"

// Current returns the compiled record. The result is a copy, so callers cannot
// alter what later calls observe.
func Current() domain.Environment {
	return current()
}
