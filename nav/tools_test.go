package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolEffectivenessPickaxeOnStone(t *testing.T) {
	mult, ok := toolEffectiveness("minecraft:iron_pickaxe", "minecraft:stone")
	require.True(t, ok, "iron pickaxe should be effective on stone")
	assert.Greater(t, mult, 1.0, "pickaxe multiplier should exceed bare-hand speed")
}

func TestToolEffectivenessWrongCategory(t *testing.T) {
	_, ok := toolEffectiveness("minecraft:iron_pickaxe", "minecraft:oak_log")
	assert.False(t, ok, "pickaxe should not be effective on logs")
}

func TestToolEffectivenessUnknownItem(t *testing.T) {
	_, ok := toolEffectiveness("minecraft:stick", "minecraft:stone")
	assert.False(t, ok, "a non-tool item should never report effectiveness")
}

func TestToolTierOrdering(t *testing.T) {
	wood, woodMult, _ := toolTier("minecraft:wooden_pickaxe")
	diamond, diamondMult, _ := toolTier("minecraft:diamond_pickaxe")
	assert.Equal(t, "wooden", wood)
	assert.Equal(t, "diamond", diamond)
	assert.Greater(t, diamondMult, woodMult)
}

func TestGetBestToolPicksFastest(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	host.items = []InventoryItem{
		{Name: "minecraft:wooden_pickaxe", SlotIndex: 0},
		{Name: "minecraft:diamond_pickaxe", SlotIndex: 1},
		{Name: "minecraft:oak_axe", SlotIndex: 2},
	}
	ctx := testContext(world, host)
	ctx.Inventory = host

	best := ctx.GetBestTool(BlockInfo{Name: "minecraft:stone", Hardness: 1.5})
	require.NotNil(t, best, "expected a tool to be selected")
	assert.Equal(t, "minecraft:diamond_pickaxe", best.ItemName)
}

func TestGetBestToolNilWithEmptyInventory(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Inventory = host
	assert.Nil(t, ctx.GetBestTool(BlockInfo{Name: "minecraft:stone", Hardness: 1.5}))
}

func TestGetBreakTimeDiggingDisabled(t *testing.T) {
	world := newFakeWorld()
	host := newFakeHost(world)
	ctx := testContext(world, host)
	ctx.Settings.CanDig = false
	assert.Equal(t, CostInf, ctx.GetBreakTime(BlockInfo{Name: "minecraft:stone", Hardness: 1.5}))
}
