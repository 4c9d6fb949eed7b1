package pool

import (
	"github.com/hupe1980/cutpool/resource"
)

// minGrowthFactor is the floor applied to Options.GrowthFactor.
const minGrowthFactor = 1.1

// Options configure a pool.
type Options struct {
	// AutoGrow lets Insert raise the capacity when the pool is full.
	// When false, a full pool rejects Insert with ErrPoolFull.
	AutoGrow bool

	// GrowthFactor scales the capacity on auto-grow. Values below 1.1
	// are raised to 1.1.
	GrowthFactor float64

	// Governor charges backing pages against a shared memory budget.
	// Nil means unlimited.
	Governor *resource.Governor
}

// DefaultOptions are the options used when none are given.
var DefaultOptions = Options{
	AutoGrow:     true,
	GrowthFactor: 2.0,
}
