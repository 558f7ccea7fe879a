package village

import (
	"github.com/StoreStation/StructCraft/pkg/piece"
	"github.com/StoreStation/StructCraft/pkg/world"
)

// Prefab voxel content is synthesized in code by the builders below.
// Every builder returns a fresh prefab; the style registry constructs
// each one exactly once and pools share them read-only afterwards.
//
// Connector conventions: wells carry four type-2 connectors (roads
// attach on all sides), buildings carry one type -1 connector at the
// door. The first connector of a prefab doubles as its ground anchor,
// so builders put it one block above the floor layer.

// wellPalette selects the material set for a well prefab.
type wellPalette struct {
	base   uint16
	pillar uint16
	roof   uint16
}

// buildWell creates a 4x4 well: a solid base sunk into the surface, a
// rim with a water pool, corner pillars and a slab roof.
func buildWell(pal wellPalette) *piece.Prefab {
	p := piece.NewPrefab(piece.Vec3{X: 4, Y: 5, Z: 4}, true)

	for x := 0; x < 4; x++ {
		for z := 0; z < 4; z++ {
			p.SetBlock(x, 0, z, pal.base)
			p.SetBlock(x, 4, z, pal.roof)

			isCorner := (x == 0 || x == 3) && (z == 0 || z == 3)
			isInner := (x == 1 || x == 2) && (z == 1 || z == 2)
			switch {
			case isInner:
				p.SetBlock(x, 1, z, world.BlockStillWater)
			default:
				p.SetBlock(x, 1, z, pal.base)
			}
			if isCorner {
				p.SetBlock(x, 2, z, pal.pillar)
				p.SetBlock(x, 3, z, pal.pillar)
			}
		}
	}

	p.AddConnector(0, 1, 1, piece.DirXM, 2)
	p.AddConnector(3, 1, 2, piece.DirXP, 2)
	p.AddConnector(1, 1, 0, piece.DirZM, 2)
	p.AddConnector(2, 1, 3, piece.DirZP, 2)
	return p
}

func plainsWell() *piece.Prefab {
	return buildWell(wellPalette{
		base:   world.BlockStoneBrick,
		pillar: world.BlockCobbleWall,
		roof:   world.BlockStoneSlab,
	})
}

func desertWell() *piece.Prefab {
	return buildWell(wellPalette{
		base:   world.BlockSandstone,
		pillar: world.BlockSmoothSandstone,
		roof:   world.BlockSandstoneSlab,
	})
}

// housePalette selects the material set for the house builders.
type housePalette struct {
	foundation uint16
	corner     uint16
	wall       uint16
	roofStair  uint16
	roofRidge  uint16
}

// buildCottage creates a 5x5 house with log corners, a centered door on
// the -Z face, windows, and a pitched roof. The door connector faces the
// road that attached the house.
func buildCottage(pal housePalette) *piece.Prefab {
	const w, h = 5, 3
	p := piece.NewPrefab(piece.Vec3{X: w, Y: 7, Z: w}, true)

	for x := 0; x < w; x++ {
		for z := 0; z < w; z++ {
			p.SetBlock(x, 0, z, pal.foundation)

			isCorner := (x == 0 || x == w-1) && (z == 0 || z == w-1)
			isWall := x == 0 || x == w-1 || z == 0 || z == w-1
			for y := 1; y <= h; y++ {
				switch {
				case isCorner:
					p.SetBlock(x, y, z, pal.corner)
				case isWall:
					block := pal.wall
					if z == 0 && x == 2 && y <= 2 {
						// Door, bottom then top half
						block = world.BlockWoodenDoor | 3
						if y == 2 {
							block = world.BlockWoodenDoor | 8
						}
					} else if y == 2 && (x == 2 || z == 2) {
						block = world.BlockGlass
					}
					p.SetBlock(x, y, z, block)
				}
			}
		}
	}

	// Pitched roof along Z, clipped to the footprint
	for z := 0; z < w; z++ {
		p.SetBlock(0, 4, z, pal.roofStair)
		p.SetBlock(w-1, 4, z, pal.roofStair|1)
		p.SetBlock(1, 5, z, pal.roofStair)
		p.SetBlock(w-2, 5, z, pal.roofStair|1)
		p.SetBlock(2, 6, z, pal.roofRidge)
	}
	for _, z := range []int{0, w - 1} {
		for x := 1; x < w-1; x++ {
			p.SetBlock(x, 4, z, pal.wall)
		}
		p.SetBlock(2, 5, z, pal.wall)
	}

	p.AddConnector(2, 1, 0, piece.DirZM, -1)
	return p
}

// buildLargeHall creates a 7x9 hall, the biggest plains building.
func buildLargeHall(pal housePalette) *piece.Prefab {
	const w, l, h = 7, 9, 4
	p := piece.NewPrefab(piece.Vec3{X: w, Y: 9, Z: l}, true)

	for x := 0; x < w; x++ {
		for z := 0; z < l; z++ {
			p.SetBlock(x, 0, z, pal.foundation)

			isCorner := (x == 0 || x == w-1) && (z == 0 || z == l-1)
			isWall := x == 0 || x == w-1 || z == 0 || z == l-1
			for y := 1; y <= h; y++ {
				switch {
				case isCorner:
					p.SetBlock(x, y, z, pal.corner)
				case isWall:
					block := pal.wall
					if z == 0 && x == 3 && y <= 2 {
						block = world.BlockWoodenDoor | 3
						if y == 2 {
							block = world.BlockWoodenDoor | 8
						}
					} else if y == 2 && (z == 0 || z == l-1) && (x == 1 || x == 5) {
						block = world.BlockGlass
					} else if y == 2 && (x == 0 || x == w-1) && (z == 2 || z == 4 || z == 6) {
						block = world.BlockGlass
					}
					p.SetBlock(x, y, z, block)
				}
			}
		}
	}

	for z := 0; z < l; z++ {
		p.SetBlock(0, 5, z, pal.roofStair)
		p.SetBlock(w-1, 5, z, pal.roofStair|1)
		p.SetBlock(1, 6, z, pal.roofStair)
		p.SetBlock(w-2, 6, z, pal.roofStair|1)
		p.SetBlock(2, 7, z, pal.roofStair)
		p.SetBlock(w-3, 7, z, pal.roofStair|1)
		p.SetBlock(3, 8, z, pal.roofRidge)
	}
	for _, z := range []int{0, l - 1} {
		for x := 1; x < w-1; x++ {
			p.SetBlock(x, 5, z, pal.wall)
		}
		for x := 2; x < w-2; x++ {
			p.SetBlock(x, 6, z, pal.wall)
		}
		p.SetBlock(3, 7, z, pal.wall)
	}

	p.AddConnector(3, 1, 0, piece.DirZM, -1)
	p.SetDefaultWeight(50)
	return p
}

// buildFarm creates a 7x7 fenced crop plot with a central water trench.
// Farms sit on top of the surface, so the anchor connector is on the
// floor layer.
func buildFarm(border, crop uint16) *piece.Prefab {
	const w = 7
	p := piece.NewPrefab(piece.Vec3{X: w, Y: 2, Z: w}, true)

	for x := 0; x < w; x++ {
		for z := 0; z < w; z++ {
			switch {
			case x == 0 || x == w-1 || z == 0 || z == w-1:
				p.SetBlock(x, 0, z, border)
			case x == w/2:
				p.SetBlock(x, 0, z, world.BlockStillWater)
			default:
				p.SetBlock(x, 0, z, world.BlockFarmland)
				p.SetBlock(x, 1, z, crop|7)
			}
		}
	}

	p.AddConnector(w/2, 0, 0, piece.DirZM, -1)
	return p
}

// buildFlatRoofHut creates a 5x5 sandstone hut with a flat slab roof,
// the smaller desert dwelling.
func buildFlatRoofHut() *piece.Prefab {
	const w, h = 5, 3
	p := piece.NewPrefab(piece.Vec3{X: w, Y: 5, Z: w}, true)

	for x := 0; x < w; x++ {
		for z := 0; z < w; z++ {
			p.SetBlock(x, 0, z, world.BlockSandstone)
			p.SetBlock(x, 4, z, world.BlockSandstoneSlab)

			isWall := x == 0 || x == w-1 || z == 0 || z == w-1
			for y := 1; y <= h; y++ {
				if !isWall {
					continue
				}
				block := world.BlockSandstone
				if z == 0 && x == 2 && y <= 2 {
					block = world.BlockWoodenDoor | 3
					if y == 2 {
						block = world.BlockWoodenDoor | 8
					}
				} else if y == 2 && (x == 2 || z == 2) {
					block = world.BlockGlass
				}
				p.SetBlock(x, y, z, block)
			}
		}
	}

	p.AddConnector(2, 1, 0, piece.DirZM, -1)
	return p
}

// buildAlchemistTower creates a two-story 5x5 sandstone tower.
func buildAlchemistTower() *piece.Prefab {
	const w = 5
	p := piece.NewPrefab(piece.Vec3{X: w, Y: 8, Z: w}, true)

	for x := 0; x < w; x++ {
		for z := 0; z < w; z++ {
			p.SetBlock(x, 0, z, world.BlockSandstone)
			p.SetBlock(x, 4, z, world.BlockSandstone) // second floor
			p.SetBlock(x, 7, z, world.BlockSmoothSandstone)

			isWall := x == 0 || x == w-1 || z == 0 || z == w-1
			for _, y := range []int{1, 2, 3, 5, 6} {
				if !isWall {
					continue
				}
				block := world.BlockSandstone
				if z == 0 && x == 2 && y <= 2 {
					block = world.BlockWoodenDoor | 3
					if y == 2 {
						block = world.BlockWoodenDoor | 8
					}
				} else if (y == 2 || y == 6) && (x == 2 || z == 2) {
					block = world.BlockGlass
				}
				p.SetBlock(x, y, z, block)
			}
		}
	}
	// Ladder well between floors stays open
	p.SetBlock(1, 4, 1, world.BlockAir)

	p.AddConnector(2, 1, 0, piece.DirZM, -1)
	p.SetDefaultWeight(60)
	return p
}

func plainsCottage() *piece.Prefab {
	return buildCottage(housePalette{
		foundation: world.BlockCobble,
		corner:     world.BlockLog,
		wall:       world.BlockPlanks,
		roofStair:  world.BlockOakStairs,
		roofRidge:  world.BlockOakSlab,
	})
}

func plainsHall() *piece.Prefab {
	return buildLargeHall(housePalette{
		foundation: world.BlockCobble,
		corner:     world.BlockLog,
		wall:       world.BlockPlanks,
		roofStair:  world.BlockOakStairs,
		roofRidge:  world.BlockOakSlab,
	})
}

func plainsFarm() *piece.Prefab {
	return buildFarm(world.BlockLog, world.BlockWheat)
}

func japaneseHouse() *piece.Prefab {
	return buildCottage(housePalette{
		foundation: world.BlockCobble,
		corner:     world.BlockSpruceLog,
		wall:       world.BlockSprucePlanks,
		roofStair:  world.BlockOakStairs,
		roofRidge:  world.BlockSpruceSlab,
	})
}

func japaneseHall() *piece.Prefab {
	return buildLargeHall(housePalette{
		foundation: world.BlockCobble,
		corner:     world.BlockSpruceLog,
		wall:       world.BlockBirchPlanks,
		roofStair:  world.BlockOakStairs,
		roofRidge:  world.BlockSpruceSlab,
	})
}

func desertHut() *piece.Prefab {
	return buildFlatRoofHut()
}

func desertFarm() *piece.Prefab {
	return buildFarm(world.BlockSandstone, world.BlockWheat)
}
