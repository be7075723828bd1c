package model

// SpellRange is the closed set of casting ranges, in cells.
type SpellRange int

const (
	RangeClose SpellRange = 1
	RangeNear  SpellRange = 6
	RangeFar   SpellRange = 20
)

// spellRanges maps spell names to their range class. Unknown spells fall
// back to close range. Self-targeted spells count as close.
var spellRanges = map[string]SpellRange{
	"Alarm":                RangeClose,
	"Burning Hands":        RangeClose,
	"Charm Person":         RangeNear,
	"Cure Wounds":          RangeClose,
	"Detect Magic":         RangeNear,
	"Feather Fall":         RangeClose,
	"Floating Disk":        RangeClose,
	"Hold Portal":          RangeNear,
	"Light":                RangeClose,
	"Mage Armor":           RangeClose,
	"Magic Missile":        RangeFar,
	"Protection From Evil": RangeClose,
	"Sleep":                RangeNear,
	"Turn Undead":          RangeNear,
}

// RangeOf returns a spell's range in cells.
func RangeOf(spell string) int {
	if r, ok := spellRanges[spell]; ok {
		return int(r)
	}
	return int(RangeClose)
}

// IsValidTarget reports whether pos is within the spell's range of the
// player, measured in Chebyshev distance.
func (d *Dungeon) IsValidTarget(pos Point, spell string) bool {
	return Chebyshev(pos, d.PlayerPos) <= RangeOf(spell)
}

// StartTargeting resets the target cursor onto the player for a fresh
// casting of the given spell.
func (d *Dungeon) StartTargeting(spell string) {
	d.TargetCursor = d.PlayerPos
}

// MoveTargetCursor nudges the target cursor one cell, refusing to leave
// the spell's range. Returns whether the cursor moved.
func (d *Dungeon) MoveTargetCursor(dir Direction, spell string) bool {
	next := d.TargetCursor.Add(dir.Delta())
	if !d.IsValidTarget(next, spell) {
		return false
	}
	d.TargetCursor = next
	return true
}
