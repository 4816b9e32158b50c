package catalog

// Feature is an optional add-on within one product's catalog. The meaning of
// UnitPrice depends on the product's policy: a flat amount for most features,
// a per-square-meter rate for area-scaled ones.
type Feature struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	UnitPrice   float64 `json:"unitPrice"`
	Description string  `json:"description,omitempty"`
}

// Policy names the pricing rule a product is calculated with.
type Policy string

const (
	// PolicyLinearMeter prices by width in linear meters with a minimum-width
	// clamp and at most one pleat-style surcharge.
	PolicyLinearMeter Policy = "linear_meter"
	// PolicyArea prices by surface in square meters with a minimum-area clamp
	// and a mix of flat and area-scaled add-ons.
	PolicyArea Policy = "area"
)

// ProductConfig is the full parameter set for one product's calculator.
// Dimensions are in centimeters, prices in euros.
type ProductConfig struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	BasePrice   float64 `json:"basePrice"`

	MinWidth  float64 `json:"minWidth"`
	MaxWidth  float64 `json:"maxWidth"`
	MinHeight float64 `json:"minHeight"`
	MaxHeight float64 `json:"maxHeight"`

	DefaultWidth  float64 `json:"defaultWidth"`
	DefaultHeight float64 `json:"defaultHeight"`

	Policy   Policy    `json:"policy"`
	Features []Feature `json:"features"`
}

// Clone returns a deep copy: the features slice and every Feature in it are
// newly allocated, so mutation through the copy never reaches the original.
func (c ProductConfig) Clone() ProductConfig {
	out := c
	out.Features = make([]Feature, len(c.Features))
	copy(out.Features, c.Features)
	return out
}

// Feature looks up a catalog entry by id.
func (c ProductConfig) Feature(id string) (Feature, bool) {
	for _, f := range c.Features {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}
