// Package block defines the static catalog of block kinds.
package block

import "fmt"

// ID identifies a block kind. Zero is reserved for empty space.
type ID uint8

// Block kind identifiers.
const (
	Empty ID = iota
	Grass
	Dirt
	Road
	Building
	Window
	Roof
	Tree
	Lamppost
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from a 0xRRGGBB value.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Uint32 returns the color as 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String formats the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%06x", c.Uint32())
}

// White is the color used for kinds without one.
var White = Hex(0xffffff)

// Kind is a registry entry.
type Kind struct {
	ID       ID
	Name     string
	Color    RGB
	HasColor bool
}

// kinds is indexed by ID.
var kinds = []Kind{
	{ID: Empty, Name: "empty"},
	{ID: Grass, Name: "grass", Color: Hex(0x55aa55), HasColor: true},
	{ID: Dirt, Name: "dirt", Color: Hex(0x806040), HasColor: true},
	{ID: Road, Name: "road", Color: Hex(0x222222), HasColor: true},
	{ID: Building, Name: "building", Color: Hex(0x888888), HasColor: true},
	{ID: Window, Name: "window", Color: Hex(0xaaccff), HasColor: true},
	{ID: Roof, Name: "roof", Color: Hex(0x444444), HasColor: true},
	{ID: Tree, Name: "tree", Color: Hex(0x228833), HasColor: true},
	{ID: Lamppost, Name: "lamppost", Color: Hex(0xffff99), HasColor: true},
}

var byName = func() map[string]ID {
	m := make(map[string]ID, len(kinds))
	for _, k := range kinds {
		m[k.Name] = k.ID
	}
	return m
}()

// Get returns the kind registered under id.
func Get(id ID) (Kind, bool) {
	if int(id) >= len(kinds) {
		return Kind{}, false
	}
	return kinds[id], true
}

// Lookup finds a kind by name.
func Lookup(name string) (Kind, bool) {
	id, ok := byName[name]
	if !ok {
		return Kind{}, false
	}
	return kinds[id], true
}

// IsValid reports whether id is registered.
func IsValid(id ID) bool {
	return int(id) < len(kinds)
}

// All returns every registered kind in ID order, including Empty.
func All() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ColorOf returns the kind color and whether the kind defines one.
// Unknown and colorless kinds report White, false.
func ColorOf(id ID) (RGB, bool) {
	k, ok := Get(id)
	if !ok || !k.HasColor {
		return White, false
	}
	return k.Color, true
}

// String returns the kind name, or "block(N)" for unknown ids.
func (id ID) String() string {
	if k, ok := Get(id); ok {
		return k.Name
	}
	return fmt.Sprintf("block(%d)", uint8(id))
}
