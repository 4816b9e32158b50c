// Package orders defines the order-status lifecycle used by the public
// tracking endpoint and the admin panel.
package orders

// Status is one step in the order lifecycle. Orders only move forward:
// received -> measuring -> production -> ready -> delivered.
type Status string

const (
	StatusReceived   Status = "received"
	StatusMeasuring  Status = "measuring"
	StatusProduction Status = "production"
	StatusReady      Status = "ready"
	StatusDelivered  Status = "delivered"
)

// lifecycle lists every status in order.
var lifecycle = []Status{
	StatusReceived,
	StatusMeasuring,
	StatusProduction,
	StatusReady,
	StatusDelivered,
}

// Lifecycle returns the full status sequence, first to last.
func Lifecycle() []Status {
	out := make([]Status, len(lifecycle))
	copy(out, lifecycle)
	return out
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s.rank() >= 0
}

// CanAdvanceTo reports whether an order in status s may move to next.
// Standing still and moving backwards are both rejected.
func (s Status) CanAdvanceTo(next Status) bool {
	from, to := s.rank(), next.rank()
	return from >= 0 && to >= 0 && to > from
}

func (s Status) rank() int {
	for i, v := range lifecycle {
		if v == s {
			return i
		}
	}
	return -1
}
