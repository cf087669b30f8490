package nav

// Parkour covers a 2-4 block horizontal gap (same Y) with a sprint-jump and
// no mid-air support, costed against the same sprint-jump trajectory table
// the teacher's SimulateJumps builds, collapsed here into a distance-indexed
// tick cost since the core doesn't need to replay the full trajectory to
// cost the edge (only to execute it, via the straight-line MoveToward).
type Parkour struct {
	baseMovement
	gap int32
}

func NewParkour(from, to Cell) *Parkour {
	gap := from.ChebyshevTo(to)
	return &Parkour{baseMovement{src: from, dest: to}, gap}
}

func (m *Parkour) Name() string { return "Parkour" }

func (m *Parkour) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !ctx.Settings.AllowParkour {
		return Infeasible()
	}
	if m.gap < 2 || m.gap > 4 {
		return Infeasible()
	}
	if m.gap >= 4 && !ctx.Settings.AllowSprint {
		return Infeasible()
	}
	var cost float64
	if m.gap <= 3 {
		cost = WalkOneBlockCost * float64(m.gap)
	} else {
		cost = SprintOneBlockCost * float64(m.gap)
	}
	cost += ctx.Settings.JumpPenalty

	floor := ctx.GetBlockAt(m.dest.Down())
	if !ctx.CanWalkOn(floor) {
		return Infeasible()
	}
	if !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest)) || !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest.Up())) {
		return Infeasible()
	}
	// every cell strictly between src and dest must have clear head room —
	// no block to land on mid-jump, or it isn't a parkour gap at all.
	dx := sign32(m.dest.X - m.src.X)
	dz := sign32(m.dest.Z - m.src.Z)
	for i := int32(1); i < m.gap; i++ {
		mid := m.src.Offset(dx*i, 0, dz*i)
		if !ctx.CanWalkThrough(ctx.GetBlockAt(mid)) {
			return Infeasible()
		}
		if ctx.CanWalkOn(ctx.GetBlockAt(mid.Down())) {
			return Infeasible()
		}
	}
	cost *= float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost}
}

func (m *Parkour) GetValidPositions() []Cell {
	dx := sign32(m.dest.X - m.src.X)
	dz := sign32(m.dest.Z - m.src.Z)
	positions := []Cell{m.src}
	for i := int32(1); i <= m.gap; i++ {
		positions = append(positions, m.src.Offset(dx*i, 0, dz*i))
	}
	return positions
}

func (m *Parkour) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	if m.ph == phaseNotStarted {
		m.ph = phaseMoving
		m.ticksMoving = 0
	}
	m.ticksMoving++
	jump := m.ticksMoving == 1
	helper.MoveToward(m.dest, true, jump, false)
	if helper.IsAtPosition(m.dest, 0.25) && helper.Host().OnGround() {
		helper.StopAllControls()
		return StatusSuccess
	}
	if m.ticksMoving > 40 {
		return StatusFailed
	}
	return StatusRunning
}

// ParkourAscend is a Parkour that also gains one block of height at landing,
// the jump-over-a-rising-gap case.
type ParkourAscend struct {
	Parkour
}

func NewParkourAscend(from, to Cell) *ParkourAscend {
	return &ParkourAscend{*NewParkour(from, to)}
}

func (m *ParkourAscend) Name() string { return "ParkourAscend" }

func (m *ParkourAscend) CalculateCost(ctx *CalculationContext) EdgeCost {
	if !ctx.Settings.AllowParkour || !ctx.Settings.AllowSprint {
		return Infeasible()
	}
	if m.dest.Y != m.src.Y+1 {
		return Infeasible()
	}
	if m.gap < 1 || m.gap > 3 {
		return Infeasible()
	}

	floor := ctx.GetBlockAt(m.dest.Down())
	if !ctx.CanWalkOn(floor) {
		return Infeasible()
	}
	if !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest)) || !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest.Up())) {
		return Infeasible()
	}
	if !ctx.CanWalkThrough(ctx.GetBlockAt(m.src.Up().Up())) {
		return Infeasible()
	}

	dx := sign32(m.dest.X - m.src.X)
	dz := sign32(m.dest.Z - m.src.Z)

	// reject unless a gap actually exists in the intermediate column; this
	// over-rejects short ascends across a flat run (see SPEC open question),
	// preserved intentionally rather than loosened.
	hasGap := false
	for i := int32(1); i < m.gap; i++ {
		mid := m.src.Offset(dx*i, 0, dz*i)
		if !ctx.CanWalkOn(ctx.GetBlockAt(mid.Down())) {
			hasGap = true
		}
	}
	if !hasGap {
		return Infeasible()
	}

	midIdx := m.gap / 2
	if midIdx < 1 {
		midIdx = 1
	}
	mid := m.src.Offset(dx*midIdx, 0, dz*midIdx)
	if !ctx.CanWalkThrough(ctx.GetBlockAt(mid)) || !ctx.CanWalkThrough(ctx.GetBlockAt(mid.Up())) {
		return Infeasible()
	}

	cost := SprintOneBlockCost*float64(m.gap) + JumpOneBlockCost + 1.5*ctx.Settings.JumpPenalty
	cost *= float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost}
}

// Fall is an uncontrolled vertical drop onto a floor below, with a landing
// safety cost (fall damage) the cost table already folds in past 3 blocks,
// or a water-bucket MLG (place water to land safely, then reclaim it) when
// the destination floor is dry, the fall is otherwise damaging, and the
// agent carries a bucket. Accepts mid-fall commitment to the next planned
// edge (see GetFallCost and the fall-override subsystem in executor.go).
type Fall struct {
	baseMovement
	drop int32

	mlgPlaced       bool
	mlgGroundTicks  int
	mlgDone         bool
	mlgPlaceFuture  Future
	mlgPickupFuture Future
}

func NewFall(from, to Cell) *Fall {
	return &Fall{baseMovement: baseMovement{src: from, dest: to}, drop: from.Y - to.Y}
}

func (m *Fall) Name() string { return "Fall" }

func (m *Fall) CalculateCost(ctx *CalculationContext) EdgeCost {
	if m.drop <= 0 || m.drop > 256 {
		return Infeasible()
	}
	floor := ctx.GetBlockAt(m.dest.Down())
	landsInWater := ctx.IsWater(floor)
	if !landsInWater && !ctx.CanWalkOn(floor) {
		return Infeasible()
	}
	if !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest)) || !ctx.CanWalkThrough(ctx.GetBlockAt(m.dest.Up())) {
		return Infeasible()
	}
	for y := m.src.Y - 1; y > m.dest.Y; y-- {
		col := C(m.dest.X, y, m.dest.Z)
		if !ctx.CanWalkThrough(ctx.GetBlockAt(col)) {
			return Infeasible()
		}
	}

	var cost float64
	switch {
	case m.drop <= 3:
		cost = WalkOffBlockCost + GetFallCost(int(m.drop), false)
	case landsInWater:
		cost = WalkOffBlockCost + GetFallCost(int(m.drop), true)
	case m.usesWaterBucket(ctx):
		cost = WalkOffBlockCost + GetFallCost(int(m.drop), true) + 2*PlaceOneBlockCost
	default:
		cost = WalkOffBlockCost + GetFallCost(int(m.drop), false)
	}
	cost *= float64(ctx.GetFavoring(m.dest.X, m.dest.Y, m.dest.Z))
	return EdgeCost{Cost: cost}
}

// usesWaterBucket reports whether this Fall would use the water-bucket MLG:
// allowed by settings, a water bucket is held, and the destination cell is
// open so the placed water has somewhere to go.
func (m *Fall) usesWaterBucket(ctx *CalculationContext) bool {
	if !ctx.Settings.AllowWaterBucket {
		return false
	}
	if _, ok := ctx.FindItem("minecraft:water_bucket"); !ok {
		return false
	}
	return ctx.CanWalkThrough(ctx.GetBlockAt(m.dest))
}

func (m *Fall) GetValidPositions() []Cell {
	positions := make([]Cell, 0, m.drop+1)
	for y := m.src.Y; y >= m.dest.Y; y-- {
		positions = append(positions, C(m.dest.X, y, m.dest.Z))
	}
	return positions
}

func (m *Fall) Tick(ctx *CalculationContext, helper *MovementHelper) Status {
	if m.ph == phaseNotStarted {
		m.ph = phaseMoving
	}

	floor := ctx.GetBlockAt(m.dest.Down())
	useBucket := m.drop > 3 && !ctx.IsWater(floor) && m.usesWaterBucket(ctx)
	m.ticksMoving++

	if useBucket && !m.mlgDone {
		m.tickWaterBucket(ctx, helper)
	}

	helper.MoveToward(m.dest, false, false, false)
	if helper.Host().OnGround() && helper.IsAtPosition(m.dest, 0.3) {
		if useBucket && !m.mlgDone {
			return StatusRunning
		}
		helper.StopAllControls()
		return StatusSuccess
	}
	return StatusRunning
}

// tickWaterBucket drives the MLG sub-sequence: place water once low enough
// or once the edge has run long, then after landing and a short settle wait
// for the flow to stabilize, reclaim it with an empty bucket. Leaves the
// water behind (not fatal) if no empty bucket turns up for the pickup.
func (m *Fall) tickWaterBucket(ctx *CalculationContext, helper *MovementHelper) {
	host := helper.Host()

	if !m.mlgPlaced {
		if m.mlgPlaceFuture != nil {
			if done, _ := m.mlgPlaceFuture.Poll(); done {
				m.mlgPlaced = true
			}
			return
		}
		if host.OnGround() {
			return
		}
		_, y, _ := host.AgentPosition()
		heightAboveGround := y - float64(m.dest.Y)
		if heightAboveGround > 2.5 && m.ticksMoving <= 40 {
			return
		}
		item, ok := ctx.FindItem("minecraft:water_bucket")
		if !ok {
			m.mlgDone = true
			return
		}
		if err := host.Equip(item.Name, item.SlotIndex); err != nil {
			return
		}
		host.Look(host.Yaw(), 90, true)
		m.mlgPlaceFuture = host.PlaceBlock(m.dest.Down(), Vec3{Y: 1})
		return
	}

	if !host.OnGround() {
		return
	}
	m.mlgGroundTicks++
	if m.mlgGroundTicks < 3 {
		return
	}

	if m.mlgPickupFuture != nil {
		if done, _ := m.mlgPickupFuture.Poll(); done {
			m.mlgDone = true
		}
		return
	}
	item, ok := ctx.FindItem("minecraft:bucket")
	if !ok {
		m.mlgDone = true
		return
	}
	if err := host.Equip(item.Name, item.SlotIndex); err != nil {
		return
	}
	host.Look(host.Yaw(), 90, true)
	m.mlgPickupFuture = host.ActivateBlock(m.dest)
}

func (m *Fall) Reset() {
	m.baseMovement.Reset()
	m.mlgPlaced = false
	m.mlgGroundTicks = 0
	m.mlgDone = false
	m.mlgPlaceFuture = nil
	m.mlgPickupFuture = nil
}

func (m *Fall) CanAcceptFallOverride() bool { return true }

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
