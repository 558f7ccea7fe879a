package world

// Block states use the packed 1.8 format: blockID << 4 | metadata.
const (
	BlockAir        uint16 = 0
	BlockStone      uint16 = 1 << 4
	BlockGrass      uint16 = 2 << 4
	BlockDirt       uint16 = 3 << 4
	BlockCobble     uint16 = 4 << 4
	BlockPlanks     uint16 = 5 << 4
	BlockBedrock    uint16 = 7 << 4
	BlockWater      uint16 = 8 << 4
	BlockStillWater uint16 = 9 << 4
	BlockSand       uint16 = 12 << 4
	BlockGravel     uint16 = 13 << 4
	BlockLog        uint16 = 17 << 4
	BlockGlass      uint16 = 20 << 4
	BlockSandstone  uint16 = 24 << 4
	BlockDeadBush   uint16 = 31 << 4
	BlockTorch      uint16 = 50 << 4
	BlockOakStairs  uint16 = 53 << 4
	BlockWoodenDoor uint16 = 64 << 4
	BlockStoneSlab  uint16 = 44 << 4
	BlockFarmland   uint16 = 60 << 4
	BlockWheat      uint16 = 59 << 4
	BlockFence      uint16 = 85 << 4
	BlockSnow       uint16 = 80 << 4
	BlockStoneBrick uint16 = 98 << 4
	BlockOakSlab    uint16 = 126 << 4
	BlockCobbleWall uint16 = 139 << 4

	// Metadata variants used by the prefab palettes.
	BlockSprucePlanks    uint16 = 5<<4 | 1
	BlockBirchPlanks     uint16 = 5<<4 | 2
	BlockSpruceLog       uint16 = 17<<4 | 1
	BlockBirchLog        uint16 = 17<<4 | 2
	BlockSmoothSandstone uint16 = 24<<4 | 2
	BlockSandstoneSlab   uint16 = 44<<4 | 1
	BlockSpruceSlab      uint16 = 126<<4 | 1
)

// IsWater reports whether the block state is flowing or still water.
func IsWater(state uint16) bool {
	id := state >> 4
	return id == 8 || id == 9
}
