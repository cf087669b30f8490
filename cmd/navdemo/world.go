package main

import (
	"github.com/go-mclib/client/pkg/client/modules/world"
	"github.com/go-mclib/data/pkg/data/blocks"
	"github.com/go-mclib/data/pkg/data/chunks"
)

// course describes the synthetic terrain this demo plans across: a flat
// run with a parkour gap, a pillar-up step, and a shallow pool, so a single
// NavigateTo exercises several of the movement edge catalog's families.
type course struct {
	minX, maxX int
	minZ, maxZ int
	groundY    int
}

var demoCourse = course{minX: -2, maxX: 40, minZ: -2, maxZ: 4, groundY: 63}

// buildWorld loads every chunk column the course spans into w and fills it
// with a flat stone/dirt/grass base plus a handful of obstacles. There is no
// server here, so every block is written directly via SetBlockState instead
// of being parsed off the wire (contrast client/chunk_parser.go, which only
// ever decodes bytes a real connection received).
func buildWorld(w *world.Module) {
	loadChunks(w, demoCourse)

	grass := int32(blocks.BlockID("minecraft:grass_block"))
	dirt := int32(blocks.BlockID("minecraft:dirt"))
	stone := int32(blocks.BlockID("minecraft:stone"))
	water := int32(blocks.BlockID("minecraft:water"))

	for x := demoCourse.minX; x <= demoCourse.maxX; x++ {
		for z := demoCourse.minZ; z <= demoCourse.maxZ; z++ {
			w.SetBlockState(x, demoCourse.groundY, z, grass)
			w.SetBlockState(x, demoCourse.groundY-1, z, dirt)
			w.SetBlockState(x, demoCourse.groundY-2, z, stone)
		}
	}

	// Parkour gap: a three-block-wide chasm across the walkway, open to the
	// void below so the only legal crossing is a Parkour edge.
	for x := 10; x <= 12; x++ {
		for z := demoCourse.minZ; z <= demoCourse.maxZ; z++ {
			w.SetBlockState(x, demoCourse.groundY, z, 0)
			w.SetBlockState(x, demoCourse.groundY-1, z, 0)
		}
	}

	// Pillar-up step: a raised block the agent must Ascend (or Pillar, if
	// approached without a run-up) onto before continuing.
	for x := 20; x <= 21; x++ {
		for z := demoCourse.minZ; z <= demoCourse.maxZ; z++ {
			w.SetBlockState(x, demoCourse.groundY+1, z, stone)
		}
	}

	// Shallow pool forcing a SwimHorizontal/WaterEntry/WaterExit sequence.
	for x := 28; x <= 31; x++ {
		for z := demoCourse.minZ; z <= demoCourse.maxZ; z++ {
			w.SetBlockState(x, demoCourse.groundY, z, water)
			w.SetBlockState(x, demoCourse.groundY+1, z, water)
		}
	}
}

// loadChunks installs an empty column, with every section the course's Y
// range touches allocated, for each chunk the course's X/Z bounds cover.
// SetBlockState silently no-ops against an unloaded chunk or an unallocated
// section (see world.Module.SetBlockState / chunks.ChunkColumn.SetBlockState),
// so the sections have to exist before buildWorld starts writing blocks.
func loadChunks(w *world.Module, c course) {
	cxMin, czMin := chunks.ChunkPos(c.minX, c.minZ)
	cxMax, czMax := chunks.ChunkPos(c.maxX, c.maxZ)

	loMin := chunks.SectionIndex(c.groundY - 4)
	loMax := chunks.SectionIndex(c.groundY + 4)

	for cx := cxMin; cx <= cxMax; cx++ {
		for cz := czMin; cz <= czMax; cz++ {
			col := &chunks.ChunkColumn{X: cx, Z: cz}
			for i := loMin; i <= loMax; i++ {
				if i < 0 || i >= len(col.Sections) {
					continue
				}
				col.Sections[i] = chunks.NewEmptySection()
			}
			w.LoadChunk(cx, cz, col)
		}
	}
}
