package item

import "git.home.luguber.info/inful/lumberlib/internal/util/sets"

var leatherArmor = sets.New[Material](
	"LEATHER_HELMET",
	"LEATHER_CHESTPLATE",
	"LEATHER_LEGGINGS",
	"LEATHER_BOOTS",
	"LEATHER_HORSE_ARMOR",
)

// IsLeatherArmor reports whether m accepts a dye colour.
func IsLeatherArmor(m Material) bool { return leatherArmor.Has(m) }
