package physics

import "overlap3d/internal/components"

// AllLayers is the layer mask with every bit set.
const AllLayers uint32 = 0xFFFFFFFF

// TriggerInteraction controls whether trigger colliders participate in a
// query. The zero value includes them.
type TriggerInteraction int

const (
	TriggersInclude TriggerInteraction = iota
	TriggersIgnore
)

// QueryFilter restricts which colliders an overlap query can return.
// The zero value matches everything: an unset LayerMask is treated as
// AllLayers, never as "no layers", and triggers are included.
type QueryFilter struct {
	LayerMask uint32
	Triggers  TriggerInteraction
}

// DefaultFilter matches every layer and includes trigger colliders.
func DefaultFilter() QueryFilter {
	return QueryFilter{LayerMask: AllLayers, Triggers: TriggersInclude}
}

// normalized widens a zero-value mask to all layers.
func (f QueryFilter) normalized() QueryFilter {
	if f.LayerMask == 0 {
		f.LayerMask = AllLayers
	}
	return f
}

// Accepts reports whether a collider passes the layer and trigger checks.
// Callers are expected to normalize the filter first.
func (f QueryFilter) Accepts(c components.Collider) bool {
	if c.Trigger() && f.Triggers == TriggersIgnore {
		return false
	}
	return f.LayerMask&c.LayerBit() != 0
}
