package align

// None marks the absence of a highlight index.
const None = -1

// Coordinator translates pointer positions into the pair of token indices
// to visually emphasize. It owns the per-column layout box arrays and the
// transient highlight state for one verse pair; when the verse changes the
// owner discards the Coordinator and builds a fresh one, so box arrays are
// always sized exactly to the current token counts and can never go stale
// in place.
//
// The Coordinator is not safe for concurrent use. It is designed to live
// inside a Bubble Tea model where pointer samples and layout reports
// arrive on the single update loop.
type Coordinator struct {
	sourceLen int
	targetLen int
	mappings  []WordMapping

	sourceBoxes []*Box
	targetBoxes []*Box

	activeSource int
	activeTarget int
}

// NewCoordinator builds a coordinator for a source sequence of sourceLen
// tokens and a target sequence of targetLen tokens. If explicit is
// non-empty it is used as the mapping table after bounds sanitizing;
// otherwise a proportional fallback alignment is synthesized.
func NewCoordinator(sourceLen, targetLen int, explicit []WordMapping) *Coordinator {
	mappings := SanitizeMappings(explicit, sourceLen, targetLen)
	if mappings == nil {
		mappings = BuildMapping(sourceLen, targetLen)
	}
	return &Coordinator{
		sourceLen:    sourceLen,
		targetLen:    targetLen,
		mappings:     mappings,
		sourceBoxes:  make([]*Box, max(sourceLen, 0)),
		targetBoxes:  make([]*Box, max(targetLen, 0)),
		activeSource: None,
		activeTarget: None,
	}
}

// Mappings returns the active mapping table (explicit or synthesized).
func (c *Coordinator) Mappings() []WordMapping {
	return c.mappings
}

// SetBox records the layout rectangle for one token, reported by the
// rendering surface once it has measured it. Out-of-range indices are
// ignored; the box array length is fixed at construction.
func (c *Coordinator) SetBox(origin Origin, index int, box Box) {
	boxes := c.boxes(origin)
	if index < 0 || index >= len(boxes) {
		return
	}
	boxes[index] = &box
}

// PointerMove processes one pointer sample over the given column and
// reports whether the highlight changed. A sample that lands on a gap
// between words keeps the current highlight rather than flickering off;
// a sample over an already-highlighted token is a no-op.
func (c *Coordinator) PointerMove(origin Origin, x, y int) bool {
	idx, ok := FindTokenAt(c.boxes(origin), x, y)
	if !ok {
		return false
	}

	switch origin {
	case OriginSource:
		if idx == c.activeSource {
			return false
		}
		c.activeSource = idx
		c.activeTarget = None
		if t, ok := MapCounterpart(SourceToTarget, idx, c.mappings); ok && t < c.targetLen {
			c.activeTarget = t
		}
	case OriginTarget:
		if idx == c.activeTarget {
			return false
		}
		c.activeTarget = idx
		c.activeSource = None
		if s, ok := MapCounterpart(TargetToSource, idx, c.mappings); ok && s < c.sourceLen {
			c.activeSource = s
		}
	default:
		return false
	}
	return true
}

// Release ends the gesture and clears the highlight unconditionally.
// Reports whether there was a highlight to clear.
func (c *Coordinator) Release() bool {
	if c.activeSource == None && c.activeTarget == None {
		return false
	}
	c.activeSource = None
	c.activeTarget = None
	return true
}

// Highlight returns the active pair of indices. Either side may be None:
// both when idle, one when the hit token has no mapped counterpart.
func (c *Coordinator) Highlight() (source, target int) {
	return c.activeSource, c.activeTarget
}

// Highlighting reports whether any token is currently emphasized.
func (c *Coordinator) Highlighting() bool {
	return c.activeSource != None || c.activeTarget != None
}

func (c *Coordinator) boxes(origin Origin) []*Box {
	if origin == OriginSource {
		return c.sourceBoxes
	}
	return c.targetBoxes
}
