package core

import (
	"fmt"
	"math/rand"
)

// ItemType is the kind of collectible.
type ItemType uint8

const (
	ItemPill ItemType = iota
	ItemBandaid
	ItemSyringe
	ItemVaccine
)

// pillChance is the share of items spawned as pills; the rest split evenly.
const pillChance = 0.9

var rareItems = [...]ItemType{ItemBandaid, ItemSyringe, ItemVaccine}

// Value returns the points awarded for collecting the item.
func (t ItemType) Value() int {
	switch t {
	case ItemPill:
		return 10
	case ItemBandaid:
		return 50
	case ItemSyringe:
		return 100
	case ItemVaccine:
		return 200
	default:
		return 0
	}
}

// String returns the item type name.
func (t ItemType) String() string {
	switch t {
	case ItemPill:
		return "pill"
	case ItemBandaid:
		return "bandaid"
	case ItemSyringe:
		return "syringe"
	case ItemVaccine:
		return "vaccine"
	default:
		return "unknown"
	}
}

// Item is a collectible sitting on a tile.
type Item struct {
	ID        string
	Type      ItemType
	Tile      Tile
	Collected bool
}

// SpawnItems places one item on every path cell, in row-major order.
// Spawn cells never hold items.
func SpawnItems(m *Maze, rng *rand.Rand) []Item {
	tiles := m.FindCells(CellPath)
	items := make([]Item, len(tiles))
	for i, t := range tiles {
		typ := ItemPill
		if rng.Float64() >= pillChance {
			typ = rareItems[rng.Intn(len(rareItems))]
		}
		items[i] = Item{ID: fmt.Sprintf("item-%d", i), Type: typ, Tile: t}
	}
	return items
}

// CollectItems marks every uncollected item within the capture radius of
// player as collected and returns the summed value and number captured.
// Already collected items are never credited again.
func CollectItems(items []Item, player Position) (delta, captured int) {
	for i := range items {
		it := &items[i]
		if it.Collected {
			continue
		}
		if player.Dist(it.Tile.Position()) < CaptureRadius {
			it.Collected = true
			delta += it.Type.Value()
			captured++
		}
	}
	return delta, captured
}

// AllCollected reports whether no item remains. An empty set counts as
// collected.
func AllCollected(items []Item) bool {
	for i := range items {
		if !items[i].Collected {
			return false
		}
	}
	return true
}
