package session

import "github.com/dgraph-io/ristretto"

// NewCache creates a normal-form cache bounded by maxCost bytes. Each entry
// costs the length of its key plus the length of its rendered normal form;
// entries larger than maxCost are never stored.
func NewCache(maxCost int64) (*ristretto.Cache, error) {
	return ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * (maxCost/64 + 1),
		MaxCost:            maxCost,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
}
