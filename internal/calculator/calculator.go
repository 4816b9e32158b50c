// Package calculator holds the interaction state between a calculator UI and
// the pricing engine: current dimensions, the feature selection, and the last
// computed price.
package calculator

import (
	"errors"
	"sort"

	"github.com/kaniou/kaniou.be/internal/catalog"
	"github.com/kaniou/kaniou.be/internal/pricing"
)

// ErrMissingDimensions is returned by Calculate when width or height is not
// positive. Pricing is never attempted in that case.
var ErrMissingDimensions = errors.New("vul breedte en hoogte in")

// Dimension names a user-editable dimension field.
type Dimension string

const (
	Width  Dimension = "width"
	Height Dimension = "height"
)

// ResultFunc receives every successful calculation together with a snapshot
// of the input that produced it.
type ResultFunc func(price int, input pricing.Input)

// Calculator is a single calculator session. It is not safe for concurrent
// use; every session owns its config clone, so no two sessions share state.
type Calculator struct {
	cfg      catalog.ProductConfig
	width    float64
	height   float64
	selected map[string]bool

	price     int
	hasResult bool

	onResult ResultFunc
}

// New starts a session on the given config, initialized to the product's
// default dimensions and an empty selection.
func New(cfg catalog.ProductConfig) *Calculator {
	return &Calculator{
		cfg:      cfg,
		width:    cfg.DefaultWidth,
		height:   cfg.DefaultHeight,
		selected: make(map[string]bool),
	}
}

// OnResult registers an optional callback invoked after each successful
// Calculate.
func (c *Calculator) OnResult(fn ResultFunc) {
	c.onResult = fn
}

// Config returns the session's config clone, e.g. for rendering bounds and
// feature checkboxes.
func (c *Calculator) Config() catalog.ProductConfig {
	return c.cfg
}

// SetDimension stores a raw dimension value. Bounds are advisory and enforced
// by UI steppers, not here. Any change drops the held result.
func (c *Calculator) SetDimension(d Dimension, value float64) {
	switch d {
	case Width:
		c.width = value
	case Height:
		c.height = value
	default:
		return
	}
	c.hasResult = false
}

// ToggleFeature adds the id to the selection if absent and removes it if
// present. Any change drops the held result.
func (c *Calculator) ToggleFeature(featureID string) {
	if c.selected[featureID] {
		delete(c.selected, featureID)
	} else {
		c.selected[featureID] = true
	}
	c.hasResult = false
}

// Input returns a snapshot of the current session input. Feature ids are
// sorted so snapshots compare stably.
func (c *Calculator) Input() pricing.Input {
	ids := make([]string, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return pricing.Input{Width: c.width, Height: c.height, Features: ids}
}

// Calculate prices the current input, rounds half up to whole euros, stores
// the result, and notifies the registered callback. With a non-positive width
// or height it returns ErrMissingDimensions and leaves any previously stored
// result untouched.
func (c *Calculator) Calculate() (int, error) {
	if c.width <= 0 || c.height <= 0 {
		return 0, ErrMissingDimensions
	}

	input := c.Input()
	c.price = pricing.Round(pricing.Compute(input, c.cfg))
	c.hasResult = true

	if c.onResult != nil {
		c.onResult(c.price, input)
	}

	return c.price, nil
}

// Result returns the stored price and whether the session currently holds
// one. Editing a dimension or toggling a feature clears it.
func (c *Calculator) Result() (int, bool) {
	return c.price, c.hasResult
}
