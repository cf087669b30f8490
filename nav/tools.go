package nav

import "strings"

// toolEffectiveness reports the mining speed multiplier of itemName against
// blockName, matching the category table vanilla uses (pickaxes on
// stone/ore, axes on wood, shovels on dirt/sand/gravel/snow). go-mclib/data
// does not expose mining speeds, so — the same way the pathfinder's own
// terrain/danger tables are hand-maintained — this table is local.
func toolEffectiveness(itemName, blockName string) (float64, bool) {
	tier, mult, ok := toolTier(itemName)
	if !ok {
		return 0, false
	}
	if !blockMatchesCategory(blockName, toolCategory(itemName)) {
		return 0, false
	}
	_ = tier
	return mult, true
}

func toolCategory(itemName string) string {
	switch {
	case strings.HasSuffix(itemName, "_pickaxe"):
		return "pickaxe"
	case strings.HasSuffix(itemName, "_axe"):
		return "axe"
	case strings.HasSuffix(itemName, "_shovel"):
		return "shovel"
	case strings.HasSuffix(itemName, "_hoe"):
		return "hoe"
	case strings.HasSuffix(itemName, "_sword"):
		return "sword"
	case itemName == "minecraft:shears":
		return "shears"
	default:
		return ""
	}
}

var tierMultiplier = map[string]float64{
	"wooden":   2.0,
	"golden":   12.0,
	"stone":    4.0,
	"iron":     6.0,
	"diamond":  8.0,
	"netherite": 9.0,
}

func toolTier(itemName string) (string, float64, bool) {
	for tier, mult := range tierMultiplier {
		if strings.HasPrefix(itemName, "minecraft:"+tier+"_") {
			return tier, mult, true
		}
	}
	return "", 0, false
}

var pickaxeBlocks = map[string]bool{
	"minecraft:stone": true, "minecraft:cobblestone": true, "minecraft:deepslate": true,
	"minecraft:iron_ore": true, "minecraft:gold_ore": true, "minecraft:diamond_ore": true,
	"minecraft:coal_ore": true, "minecraft:obsidian": true, "minecraft:netherrack": true,
	"minecraft:blackstone": true, "minecraft:basalt": true, "minecraft:ice": true,
	"minecraft:packed_ice": true, "minecraft:blue_ice": true,
}

var axeBlocks = map[string]bool{
	"minecraft:oak_log": true, "minecraft:oak_planks": true, "minecraft:spruce_log": true,
	"minecraft:birch_log": true, "minecraft:jungle_log": true, "minecraft:acacia_log": true,
	"minecraft:dark_oak_log": true, "minecraft:crimson_stem": true, "minecraft:warped_stem": true,
}

var shovelBlocks = map[string]bool{
	"minecraft:dirt": true, "minecraft:grass_block": true, "minecraft:sand": true,
	"minecraft:gravel": true, "minecraft:soul_sand": true, "minecraft:soul_soil": true,
	"minecraft:snow": true, "minecraft:snow_block": true, "minecraft:mud": true,
	"minecraft:clay": true,
}

var hoeBlocks = map[string]bool{
	"minecraft:hay_block": true, "minecraft:nether_wart_block": true, "minecraft:sculk": true,
	"minecraft:sculk_catalyst": true, "minecraft:sculk_shrieker": true,
}

func blockMatchesCategory(blockName, category string) bool {
	switch category {
	case "pickaxe":
		return pickaxeBlocks[blockName]
	case "axe":
		return axeBlocks[blockName]
	case "shovel":
		return shovelBlocks[blockName]
	case "hoe":
		return hoeBlocks[blockName]
	case "sword":
		return blockName == "minecraft:cobweb"
	case "shears":
		return blockName == "minecraft:cobweb" || strings.Contains(blockName, "leaves") || strings.Contains(blockName, "wool")
	default:
		return false
	}
}
