package nav

// Settings are the policy knobs mapped from the host's configuration. All
// fields are clamped to sane ranges by Clamp so a malformed config
// file can never produce an unbounded search or a negative cost.
type Settings struct {
	CanDig           bool
	CanPlace         bool
	AllowSprint      bool
	AllowParkour     bool
	AllowWaterBucket bool
	JumpPenalty      float64 // non-negative tick offset
	PathingRange     int     // [1, 256]
	AvoidBlocks      map[string]bool
}

// DefaultSettings returns a conservative, always-valid settings value.
func DefaultSettings() Settings {
	return Settings{
		CanDig:           true,
		CanPlace:         true,
		AllowSprint:      true,
		AllowParkour:     true,
		AllowWaterBucket: false,
		JumpPenalty:      0,
		PathingRange:     100,
		AvoidBlocks:      map[string]bool{},
	}
}

// Clamp normalizes out-of-range values in place.
func (s *Settings) Clamp() {
	if s.JumpPenalty < 0 {
		s.JumpPenalty = 0
	}
	if s.PathingRange < 1 {
		s.PathingRange = 1
	}
	if s.PathingRange > 256 {
		s.PathingRange = 256
	}
	if s.AvoidBlocks == nil {
		s.AvoidBlocks = map[string]bool{}
	}
}

// FavoringFunc returns a per-cell cost multiplier >= 1.0, letting callers
// bias the search toward or away from regions without breaking
// admissibility (a multiplier below 1 would let the search underestimate a
// real edge's cost). A nil FavoringFunc is treated as "no bias".
type FavoringFunc func(x, y, z int32) float32

// CalculationContext is the read-only snapshot of world + policy consumed by
// every movement edge's cost check. It is rebuilt once per planning pass and
// must not be mutated while a plan is in flight.
type CalculationContext struct {
	World    WorldView
	Settings Settings
	Favoring FavoringFunc

	// Inventory/Entities are optional; nil means "no items" / "no entities"
	// respectively, which is a safe (if suboptimal) default for cost checks
	// that only use them to break ties or avoid crowds.
	Inventory InventoryView
	Entities  EntitiesView

	// Host is the opaque handle movement edges use to drive control intents
	// and async break/place sub-ops during execution. It is never consulted
	// during calculate_cost.
	Host Host
}

// GetBlock returns the block info at (x,y,z), or the empty/air default if
// the world has no data loaded there yet.
func (c *CalculationContext) GetBlock(x, y, z int32) BlockInfo {
	if info, ok := c.World.GetBlock(x, y, z); ok {
		return info
	}
	return BlockInfo{Name: "minecraft:air", BoundingBox: BoxEmpty}
}

func (c *CalculationContext) GetBlockAt(cell Cell) BlockInfo {
	return c.GetBlock(cell.X, cell.Y, cell.Z)
}

// CanWalkOn reports whether the agent can stand on top of this block.
func (c *CalculationContext) CanWalkOn(b BlockInfo) bool {
	if c.Settings.AvoidBlocks[b.Name] {
		return false
	}
	return b.BoundingBox == BoxBlock || (b.BoundingBox == BoxOther && !c.IsLava(b))
}

// CanWalkThrough reports whether the agent's body can occupy this block.
func (c *CalculationContext) CanWalkThrough(b BlockInfo) bool {
	if b.BoundingBox == BoxEmpty {
		return true
	}
	if c.IsWater(b) {
		return true
	}
	return false
}

func (c *CalculationContext) IsWater(b BlockInfo) bool {
	return b.Name == "minecraft:water" || b.Name == "minecraft:bubble_column"
}

func (c *CalculationContext) IsLava(b BlockInfo) bool {
	return b.Name == "minecraft:lava"
}

// GetBreakTime returns the tick cost to break this block with the best
// available tool, or CostInf if it cannot be broken at all (unbreakable, or
// digging is disabled).
func (c *CalculationContext) GetBreakTime(b BlockInfo) float64 {
	if !c.Settings.CanDig {
		return CostInf
	}
	if b.Hardness < 0 {
		return CostInf
	}
	tool := c.GetBestTool(b)
	if tool == nil {
		return GetBreakCost(b.Hardness, 1.0, 0)
	}
	return GetBreakCost(b.Hardness, tool.SpeedMultiplier, tool.EfficiencyLevel)
}

// GetFavoring returns the per-cell multiplier (always >= 1.0) for (x,y,z).
func (c *CalculationContext) GetFavoring(x, y, z int32) float32 {
	if c.Favoring == nil {
		return 1.0
	}
	f := c.Favoring(x, y, z)
	if f < 1.0 {
		return 1.0
	}
	return f
}

// FindItem returns the first inventory stack named itemName and whether it
// was found, used by edges (e.g. Fall's water-bucket MLG) that need to know
// a specific item is held rather than just the best tool for a block.
func (c *CalculationContext) FindItem(itemName string) (InventoryItem, bool) {
	if c.Inventory == nil {
		return InventoryItem{}, false
	}
	for _, item := range c.Inventory.InventoryItems() {
		if item.Name == itemName && item.Count > 0 {
			return item, true
		}
	}
	return InventoryItem{}, false
}

// GetBestTool returns the best tool in inventory for breaking b, or nil to
// mean "use bare hands". Tool effectiveness is looked up from the local
// toolEffectiveness table (see tools.go); go-mclib/data does not model
// mining speeds, so this table is maintained here the same way the teacher
// repo keeps its local dangerCosts/terrain tables.
func (c *CalculationContext) GetBestTool(b BlockInfo) *ToolRef {
	if c.Inventory == nil {
		return nil
	}
	var best *ToolRef
	for _, item := range c.Inventory.InventoryItems() {
		mult, ok := toolEffectiveness(item.Name, b.Name)
		if !ok {
			continue
		}
		if best == nil || mult > best.SpeedMultiplier {
			best = &ToolRef{ItemName: item.Name, SlotIndex: item.SlotIndex, SpeedMultiplier: mult}
		}
	}
	return best
}
