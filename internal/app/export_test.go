package app

import "github.com/shinolab/autd3-link-soem/internal/core/domain"

// HasPlanner reports whether intent is dispatchable.
func HasPlanner(intent domain.Intent) bool {
	_, ok := planners[intent]
	return ok
}
