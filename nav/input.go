package nav

// Priority orders competing control requests: a higher-priority source wins
// the tick even if a lower-priority source also requested the same control.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMovement
	PriorityFallOverride
	PriorityEmergency
)

type controlRequest struct {
	active   bool
	priority Priority
}

// InputHelper arbitrates control-state requests from multiple concurrent
// sources (the active movement, the fall-override subsystem, a panic
// stop) down to the single set of controls actually sent to the host each
// tick, the way MovementHelper's raw SetControl calls would otherwise race
// against each other if two edges both held references to the same host.
type InputHelper struct {
	host     Host
	pending  map[string]controlRequest
	lastSent map[string]bool
}

func NewInputHelper(host Host) *InputHelper {
	return &InputHelper{
		host:     host,
		pending:  map[string]controlRequest{},
		lastSent: map[string]bool{},
	}
}

// Request registers a control intent for this tick at the given priority.
// Calling Request multiple times for the same control in one tick keeps
// only the highest-priority request.
func (ih *InputHelper) Request(control string, active bool, priority Priority) {
	existing, ok := ih.pending[control]
	if ok && existing.priority > priority {
		return
	}
	ih.pending[control] = controlRequest{active: active, priority: priority}
}

// Flush applies every pending request to the host and clears them for the
// next tick, only issuing a SetControl call when the value actually changed
// since last tick.
func (ih *InputHelper) Flush() {
	for control, req := range ih.pending {
		if ih.lastSent[control] != req.active {
			ih.host.SetControl(control, req.active)
			ih.lastSent[control] = req.active
		}
	}
	for control, last := range ih.lastSent {
		if _, stillPending := ih.pending[control]; !stillPending && last {
			ih.host.SetControl(control, false)
			ih.lastSent[control] = false
		}
	}
	ih.pending = map[string]controlRequest{}
}

// RotationHelper slews the agent's look direction toward a target yaw/pitch
// at a bounded rate per tick, instead of snapping instantly, so rotation
// reads as a smooth turn the way MoveToward's look calls are meant to drive
// it — a higher-priority requester can still force an instant snap.
type RotationHelper struct {
	host Host

	targetYaw, targetPitch   float64
	maxDegreesPerTick        float64
	requestedThisTick        bool
	requestedPriority        Priority
	currentPriority          Priority
}

func NewRotationHelper(host Host) *RotationHelper {
	return &RotationHelper{host: host, maxDegreesPerTick: 25}
}

// Request asks the rotation helper to turn toward (yaw, pitch) this tick.
// force bypasses slewing and snaps immediately, used by short, precise
// interactions (placing a block against a specific face).
func (rh *RotationHelper) Request(yaw, pitch float64, priority Priority, force bool) {
	if rh.requestedThisTick && rh.requestedPriority > priority {
		return
	}
	rh.targetYaw = yaw
	rh.targetPitch = pitch
	rh.requestedThisTick = true
	rh.requestedPriority = priority
	rh.currentPriority = priority
	if force {
		rh.maxDegreesPerTick = 1e9
	}
}

// Tick advances the current look direction one step toward the last
// requested target and resets for the next tick's requests.
func (rh *RotationHelper) Tick() {
	if !rh.requestedThisTick {
		return
	}
	yaw, pitch := rh.host.Yaw(), rh.host.Pitch()
	newYaw := stepToward(yaw, rh.targetYaw, rh.maxDegreesPerTick)
	newPitch := stepToward(pitch, rh.targetPitch, rh.maxDegreesPerTick)
	rh.host.Look(newYaw, newPitch, false)
	rh.requestedThisTick = false
	rh.maxDegreesPerTick = 25
}

func stepToward(current, target, maxStep float64) float64 {
	delta := normalizeAngle(target - current)
	if delta > maxStep {
		delta = maxStep
	}
	if delta < -maxStep {
		delta = -maxStep
	}
	return current + delta
}

func normalizeAngle(deg float64) float64 {
	for deg > 180 {
		deg -= 360
	}
	for deg < -180 {
		deg += 360
	}
	return deg
}
