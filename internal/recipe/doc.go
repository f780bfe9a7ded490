// Package recipe describes item documents declaratively.
//
// A recipe is a YAML file naming a material, an amount and an ordered list of
// steps. Each step maps onto one item.Builder operation, so a recipe applied
// at a given platform level goes through the same capability gates and style
// translation as code calling the builder directly:
//
//	material: DIAMOND_SWORD
//	steps:
//	  - op: display_name
//	    text: "&#ff8800Blaze &lEdge"
//	  - op: append_lore
//	    lines: ["&7Forged in the nether"]
//	  - op: enchant
//	    enchant: FIRE_ASPECT
//	    level: 2
//
// Runner loads and builds recipes with metrics, and Watcher rebuilds when the
// file changes.
package recipe
