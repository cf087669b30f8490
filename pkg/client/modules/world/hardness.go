package world

import "github.com/go-mclib/client/nav"

// hardnessTable mirrors the pattern physics.blockFriction uses for block
// behavior lookups go-mclib/data doesn't expose itself: a local map from
// block name to the vanilla hardness value, consulted by GetBlockInfo to
// fill in nav.BlockInfo.Hardness.
var hardnessTable = map[string]float64{
	"minecraft:stone":       1.5,
	"minecraft:cobblestone": 2.0,
	"minecraft:dirt":        0.5,
	"minecraft:grass_block": 0.6,
	"minecraft:sand":        0.5,
	"minecraft:gravel":      0.6,
	"minecraft:oak_log":     2.0,
	"minecraft:oak_planks":  2.0,
	"minecraft:obsidian":    50.0,
	"minecraft:netherrack":  0.4,
	"minecraft:ice":         0.5,
	"minecraft:packed_ice":  0.5,
	"minecraft:glass":       0.3,
	"minecraft:deepslate":   3.0,
	"minecraft:iron_ore":    3.0,
	"minecraft:diamond_ore": 3.0,
	"minecraft:bedrock":     -1.0,
	"minecraft:water":       -1.0,
	"minecraft:lava":        -1.0,
	"minecraft:air":         0.0,
}

func hardnessFor(name string) float64 {
	if h, ok := hardnessTable[name]; ok {
		return h
	}
	return 1.5 // default: treat unknown solids like stone
}

// boundingBoxTable names blocks whose collision shape isn't a full cube —
// the "BoxOther" bucket movement edges special-case (doors, slabs, fences,
// fluids). Anything not air and not listed here is assumed BoxBlock.
var boundingBoxTable = map[string]nav.BoundingBoxClass{
	"minecraft:air":          nav.BoxEmpty,
	"minecraft:cave_air":     nav.BoxEmpty,
	"minecraft:void_air":     nav.BoxEmpty,
	"minecraft:water":        nav.BoxOther,
	"minecraft:lava":         nav.BoxOther,
	"minecraft:ladder":       nav.BoxOther,
	"minecraft:vine":         nav.BoxOther,
	"minecraft:torch":        nav.BoxOther,
	"minecraft:wall_torch":   nav.BoxOther,
	"minecraft:oak_door":     nav.BoxOther,
	"minecraft:iron_door":    nav.BoxOther,
	"minecraft:oak_fence_gate": nav.BoxOther,
	"minecraft:oak_trapdoor":  nav.BoxOther,
	"minecraft:oak_slab":     nav.BoxOther,
	"minecraft:cobweb":       nav.BoxOther,
	"minecraft:bubble_column": nav.BoxOther,
}

func boundingBoxFor(name string) nav.BoundingBoxClass {
	if bb, ok := boundingBoxTable[name]; ok {
		return bb
	}
	return nav.BoxBlock
}
