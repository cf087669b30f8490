package nav

import "math"

// MovementHelper serializes break/place/look/move sub-operations against the
// single shared host resource: a real client (or simulated one) can only dig
// one block, or hold one look target, at a time. Every Movement tick goes
// through the same helper instance so concurrent edges never issue
// conflicting control intents.
type MovementHelper struct {
	host Host

	digQueue   []digRequest
	activeDig  *digRequest
	placeQueue []placeRequest
	activePlace *placeRequest
}

type digRequest struct {
	owner any
	block Cell
	fut   Future
}

type placeRequest struct {
	owner any
	spec  PlaceSpec
	fut   Future
}

// NewMovementHelper wraps host, the single point of contact for control
// intents and break/place sub-ops during execution.
func NewMovementHelper(host Host) *MovementHelper {
	return &MovementHelper{host: host}
}

// TickBreaking drives the dig sub-op for block on behalf of owner, starting
// it if it is not already the active dig. Returns (done, err); done is true
// once the block is broken (or the dig is confirmed impossible).
func (h *MovementHelper) TickBreaking(owner any, block Cell) (bool, error) {
	if h.activeDig == nil || h.activeDig.owner != owner || h.activeDig.block != block {
		if h.activeDig != nil {
			h.host.StopDigging()
		}
		h.activeDig = &digRequest{owner: owner, block: block, fut: h.host.Dig(block, true)}
	}
	done, err := h.activeDig.fut.Poll()
	if done {
		h.activeDig = nil
	}
	return done, err
}

// TickPlacing drives a PlaceSpec sub-op on behalf of owner, the same way
// TickBreaking drives digs.
func (h *MovementHelper) TickPlacing(owner any, spec PlaceSpec) (bool, error) {
	if h.activePlace == nil || h.activePlace.owner != owner || h.activePlace.spec != spec {
		h.activePlace = &placeRequest{owner: owner, spec: spec, fut: h.host.PlaceBlock(spec.Reference, spec.Face)}
	}
	done, err := h.activePlace.fut.Poll()
	if done {
		h.activePlace = nil
	}
	return done, err
}

// MoveToward sets forward/sprint/jump controls to walk the agent toward
// target's block center, and looks at it. sprint requests sprinting if the
// caller's policy allows it; jump requests a single jump input this tick.
func (h *MovementHelper) MoveToward(target Cell, sprint, jump, sneak bool) {
	ax, _, az := h.host.AgentPosition()
	tx, _, tz := target.Center()
	dx := tx - ax
	dz := tz - az
	yaw := math.Atan2(-dx, dz) * 180 / math.Pi
	h.host.Look(yaw, h.host.Pitch(), false)

	h.host.SetControl("forward", true)
	h.host.SetControl("sprint", sprint)
	h.host.SetControl("sneak", sneak)
	h.host.SetControl("jump", jump)
}

// IsAtPosition reports whether the agent's feet are within tolerance of
// target's center on the horizontal plane and within half a block
// vertically — close enough to consider the edge's motion complete.
func (h *MovementHelper) IsAtPosition(target Cell, tolerance float64) bool {
	ax, ay, az := h.host.AgentPosition()
	tx, ty, tz := target.Center()
	dx := ax - tx
	dz := az - tz
	if math.Hypot(dx, dz) > tolerance {
		return false
	}
	return math.Abs(ay-ty) < 0.5
}

// StopAllControls clears every movement control, used when an edge finishes
// or is aborted so the next edge starts from a clean slate.
func (h *MovementHelper) StopAllControls() {
	h.host.SetControl("forward", false)
	h.host.SetControl("sprint", false)
	h.host.SetControl("sneak", false)
	h.host.SetControl("jump", false)
}

// Host exposes the wrapped host for edges that need raw access (e.g. to
// read velocity for landing checks).
func (h *MovementHelper) Host() Host { return h.host }
