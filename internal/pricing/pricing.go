package pricing

import (
	"math"

	"github.com/kaniou/kaniou.be/internal/catalog"
)

// Input represents the user-entered calculator state priced by Compute.
// Width and Height are in centimeters. Features holds selected feature ids;
// duplicates are tolerated and count once, ids missing from the product's
// catalog contribute nothing.
type Input struct {
	Width    float64  `json:"width"`
	Height   float64  `json:"height"`
	Features []string `json:"features"`
}

const (
	// minLinearWidthCm is the billing floor for linear-meter products: any
	// curtain narrower than one meter is priced as one meter.
	minLinearWidthCm = 100.0

	// minAreaM2 is the billing floor for area products.
	minAreaM2 = 0.5

	// areaAddonScale discounts area-scaled add-ons relative to the full
	// effective area.
	areaAddonScale = 0.8
)

// pleatSurcharges lists the mutually exclusive pleat styles for linear-meter
// products in precedence order: when several are selected at once, the first
// match wins and the rest are ignored.
var pleatSurcharges = []struct {
	id  string
	pct float64
}{
	{"dubbele_plooi", 0.10},
	{"driedubbele_plooi", 0.15},
	{"wave_plooi", 0.20},
}

// areaScaledFeatures marks feature ids whose price scales with the effective
// area instead of being a flat add-on.
var areaScaledFeatures = map[string]bool{
	"verduisterend": true,
	"isolerend":     true,
}

// Compute prices the given input against a product config. It is pure: same
// arguments always yield the same unrounded price, and neither input nor
// config is mutated. Non-positive dimensions do not panic; callers are
// expected to have rejected them (see the calculator package).
func Compute(input Input, cfg catalog.ProductConfig) float64 {
	selected := selectionSet(input.Features)

	switch cfg.Policy {
	case catalog.PolicyLinearMeter:
		return computeLinearMeter(input, selected, cfg)
	case catalog.PolicyArea:
		return computeArea(input, selected, cfg)
	}
	return 0
}

func computeLinearMeter(input Input, selected map[string]bool, cfg catalog.ProductConfig) float64 {
	effectiveWidth := math.Max(input.Width, minLinearWidthCm)
	price := cfg.BasePrice * (effectiveWidth / 100.0)

	if pct, ok := pleatSurchargeFor(selected, cfg); ok {
		price *= 1.0 + pct
	}

	for _, f := range cfg.Features {
		if !selected[f.ID] || isPleatStyle(f.ID) {
			continue
		}
		price += f.UnitPrice
	}

	return price
}

func computeArea(input Input, selected map[string]bool, cfg catalog.ProductConfig) float64 {
	effectiveArea := math.Max(input.Width*input.Height/10000.0, minAreaM2)
	price := cfg.BasePrice * effectiveArea

	for _, f := range cfg.Features {
		if !selected[f.ID] {
			continue
		}
		if areaScaledFeatures[f.ID] {
			price += f.UnitPrice * effectiveArea * areaAddonScale
		} else {
			price += f.UnitPrice
		}
	}

	return price
}

// pleatSurchargeFor returns the surcharge of the highest-precedence pleat
// style that is both selected and present in the product's catalog.
func pleatSurchargeFor(selected map[string]bool, cfg catalog.ProductConfig) (float64, bool) {
	for _, s := range pleatSurcharges {
		if !selected[s.id] {
			continue
		}
		if _, ok := cfg.Feature(s.id); ok {
			return s.pct, true
		}
	}
	return 0, false
}

func isPleatStyle(id string) bool {
	for _, s := range pleatSurcharges {
		if s.id == id {
			return true
		}
	}
	return false
}

func selectionSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

// Round converts an unrounded price to whole euros, rounding half up:
// 123.49 becomes 123, 123.5 becomes 124.
func Round(price float64) int {
	return int(math.Floor(price + 0.5))
}
