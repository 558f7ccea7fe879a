package village

import "github.com/StoreStation/StructCraft/pkg/piece"

// Registry holds the long-lived style pools, grouped by biome family.
// Pools are initialized once and read-only afterwards, so one registry
// serves every village in the world.
type Registry struct {
	Desert []*PiecePool
	Plains []*PiecePool
}

// DefaultRegistry builds the five built-in styles: three desert
// variants and two plains variants.
func DefaultRegistry() *Registry {
	return &Registry{
		Desert: []*PiecePool{
			// Sandstone village
			NewPiecePool(
				[]*piece.Prefab{desertWell()},
				[]*piece.Prefab{desertHut(), buildAlchemistTower(), desertFarm()},
			),
			// Flat-roof huts only
			NewPiecePool(
				[]*piece.Prefab{desertWell()},
				[]*piece.Prefab{buildFlatRoofHut(), desertFarm()},
			),
			// Alchemist quarter
			NewPiecePool(
				[]*piece.Prefab{desertWell()},
				[]*piece.Prefab{buildAlchemistTower(), desertHut()},
			),
		},
		Plains: []*PiecePool{
			// Oak cottages
			NewPiecePool(
				[]*piece.Prefab{plainsWell()},
				[]*piece.Prefab{plainsCottage(), plainsHall(), plainsFarm()},
			),
			// Spruce and birch variant
			NewPiecePool(
				[]*piece.Prefab{plainsWell()},
				[]*piece.Prefab{japaneseHouse(), japaneseHall(), plainsFarm()},
			),
		},
	}
}
