package catalog

// Lookup resolves a product id to an isolated config instance. The returned
// config is always a deep clone of the canonical table entry, so callers may
// mutate it freely without corrupting other calculator instances.
//
// Unknown ids never fail: they resolve to the first-registered product and
// matched reports false so callers can log the fallback.
func Lookup(productID string) (cfg ProductConfig, matched bool) {
	for _, p := range products {
		if p.ProductID == productID {
			return p.Clone(), true
		}
	}
	return products[0].Clone(), false
}

// DefaultProductID returns the id unknown lookups fall back to.
func DefaultProductID() string {
	return products[0].ProductID
}

// All returns isolated clones of every product config, in registration order.
func All() []ProductConfig {
	out := make([]ProductConfig, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}
