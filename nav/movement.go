package nav

// Status reports a movement edge's progress to the executor each tick.
type Status int

const (
	StatusPrepping Status = iota
	StatusRunning
	StatusWaiting
	StatusSuccess
	StatusFailed
	StatusUnreachable
)

func (s Status) String() string {
	switch s {
	case StatusPrepping:
		return "PREPPING"
	case StatusRunning:
		return "RUNNING"
	case StatusWaiting:
		return "WAITING"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailed:
		return "FAILED"
	case StatusUnreachable:
		return "UNREACHABLE"
	default:
		return "UNKNOWN"
	}
}

// phase is the internal per-edge execution state, distinct from the Status
// reported outward — several phases (Breaking, Placing, Moving, Waiting) can
// all report StatusRunning.
type phase int

const (
	phaseNotStarted phase = iota
	phaseBreaking
	phasePlacing
	phaseMoving
	phaseWaiting
	phaseFinished
)

// Movement is implemented by every edge variant (Traverse, Ascend, Fall,
// Parkour, ...). A movement is stateless between plans: CalculateCost is
// called many times during search against throwaway instances, while
// Tick/GetValidPositions/Reset are only ever called on the single instance
// the executor picked to run.
type Movement interface {
	// Name identifies the edge kind for logging and the fall-override switch.
	Name() string
	// Src and Dest are the cells this edge connects.
	Src() Cell
	Dest() Cell
	// CalculateCost returns the tick cost of this edge under ctx, or
	// (CostInf, nil) if the edge is not presently possible. The returned
	// ToBreak/ToPlace lists describe blocks the edge must clear/place before
	// it can be walked, so the executor can schedule them ahead of motion.
	CalculateCost(ctx *CalculationContext) EdgeCost
	// GetValidPositions lists cells the agent may occupy mid-edge without
	// the edge being considered to have failed. The executor does not
	// consult it.
	GetValidPositions() []Cell
	// Tick advances execution by one game tick and reports progress.
	Tick(ctx *CalculationContext, helper *MovementHelper) Status
	// Reset clears any in-progress sub-op state, called once before the
	// first Tick and again if the executor aborts and retries the edge.
	Reset()
	// CanAcceptFallOverride reports whether, while this edge is Running in
	// mid-air, the executor may commit early to the next planned edge
	// instead of waiting to land first (see the fall override subsystem).
	CanAcceptFallOverride() bool
}

// EdgeCost is the result of CalculateCost: a tick cost plus the break/place
// prerequisites the executor must satisfy before the edge can run.
type EdgeCost struct {
	Cost    float64
	ToBreak []Cell
	ToPlace []PlaceSpec
}

// Infeasible is the canonical "this edge cannot be taken" result.
func Infeasible() EdgeCost { return EdgeCost{Cost: CostInf} }

// PlaceSpec names a block that must be placed at Target, referenced off
// Reference using Face, before an edge can be walked (e.g. a scaffold block
// under a Pillar edge, or a bridge block under a Traverse-over-gap edge).
type PlaceSpec struct {
	Target    Cell
	Reference Cell
	Face      Vec3
}

// baseMovement is embedded by every concrete edge to share the bookkeeping
// the executor and fall-override subsystem need: source/destination cells,
// the current phase, and pending sub-op futures.
type baseMovement struct {
	src, dest Cell
	ph        phase

	breakFutures []Future
	placeFutures []Future
	breakIdx     int
	placeIdx     int

	ticksInPhase int
	ticksMoving  int
}

func (m *baseMovement) Src() Cell  { return m.src }
func (m *baseMovement) Dest() Cell { return m.dest }

func (m *baseMovement) Reset() {
	m.ph = phaseNotStarted
	m.breakFutures = nil
	m.placeFutures = nil
	m.breakIdx = 0
	m.placeIdx = 0
	m.ticksInPhase = 0
	m.ticksMoving = 0
}

func (m *baseMovement) CanAcceptFallOverride() bool { return false }

// tickBreakPlace drives the shared break-then-place prelude common to
// nearly every edge. It returns (done, status): done is true only when a
// sub-op has failed, with status StatusFailed. Otherwise it returns
// (false, StatusRunning); once the break and place lists are exhausted it
// also moves the edge to phaseMoving so the caller proceeds to motion.
func (m *baseMovement) tickBreakPlace(helper *MovementHelper, toBreak []Cell, toPlace []PlaceSpec) (bool, Status) {
	if m.ph == phaseNotStarted {
		m.ph = phaseBreaking
	}
	if m.ph == phaseBreaking {
		if m.breakIdx >= len(toBreak) {
			m.ph = phasePlacing
		} else {
			done, err := helper.TickBreaking(m, toBreak[m.breakIdx])
			if err != nil {
				return true, StatusFailed
			}
			if done {
				m.breakIdx++
			}
			return false, StatusRunning
		}
	}
	if m.ph == phasePlacing {
		if m.placeIdx >= len(toPlace) {
			m.ph = phaseMoving
			return false, StatusRunning
		}
		done, err := helper.TickPlacing(m, toPlace[m.placeIdx])
		if err != nil {
			return true, StatusFailed
		}
		if done {
			m.placeIdx++
		}
		return false, StatusRunning
	}
	return false, StatusRunning
}
