package model

// Class is the closed set of character classes. Weapon and armor
// restrictions key off it.
type Class int

const (
	Fighter Class = iota
	Priest
	Thief
	Wizard
)

func (c Class) String() string {
	switch c {
	case Fighter:
		return "Fighter"
	case Priest:
		return "Priest"
	case Thief:
		return "Thief"
	case Wizard:
		return "Wizard"
	default:
		return "Adventurer"
	}
}

// Slot is the closed set of equipment slots. Keeping this an enum rather
// than free-form strings means an invalid slot cannot be named at all.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotShield
	SlotCount
)

// Item is a piece of gear. ACBase applies when worn as armor, ACBonus
// when held as a shield. Classes limits who may equip it; empty means
// anyone.
type Item struct {
	Name      string
	Slot      Slot
	ACBase    int
	ACBonus   int
	GearSlots int
	Classes   []Class
}

// Player is owned by the character-creation subsystem; the dungeon core
// mutates only the derived fields (AC and gear slots) and reads the rest.
type Player struct {
	Name  string
	Class Class

	Str, Dex, Con, Int, Wis, Cha int

	HP, MaxHP int
	Level     int

	Equipped  [SlotCount]*Item
	Inventory []Item

	AC            int
	GearSlotsUsed int
	GearSlotsMax  int
}

// Mod is the ability modifier for a score: (score-10)/2 rounded down.
func Mod(score int) int {
	n := score - 10
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}

// RecomputeDerived refreshes armor class and gear slot counts from the
// current stats, equipment and inventory. Called at dungeon load and
// after every equipment change.
func (p *Player) RecomputeDerived() {
	ac := 10
	if armor := p.Equipped[SlotArmor]; armor != nil {
		ac = armor.ACBase
	}
	ac += Mod(p.Dex)
	if shield := p.Equipped[SlotShield]; shield != nil {
		ac += shield.ACBonus
	}
	p.AC = ac

	used := 0
	for _, it := range p.Inventory {
		slots := it.GearSlots
		if slots < 1 {
			slots = 1
		}
		used += slots
	}
	p.GearSlotsUsed = used

	max := p.Str
	if max < 10 {
		max = 10
	}
	if p.Class == Fighter {
		if bonus := Mod(p.Con); bonus > 0 {
			max += bonus
		}
	}
	p.GearSlotsMax = max
}

// CanEquip enforces the class restriction tables: wizards wear no armor
// and carry no shields, and items may name the classes allowed to use
// them.
func (p *Player) CanEquip(it Item) bool {
	if p.Class == Wizard && (it.Slot == SlotArmor || it.Slot == SlotShield) {
		return false
	}
	if len(it.Classes) == 0 {
		return true
	}
	for _, c := range it.Classes {
		if c == p.Class {
			return true
		}
	}
	return false
}

// Equip moves an inventory item into its slot, displacing whatever was
// there back to the inventory. Returns false when the class may not use
// the item or the item is not carried.
func (p *Player) Equip(name string) bool {
	for i, it := range p.Inventory {
		if it.Name != name {
			continue
		}
		if !p.CanEquip(it) {
			return false
		}
		item := it
		if prev := p.Equipped[item.Slot]; prev != nil {
			p.Inventory = append(p.Inventory, *prev)
		}
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
		p.Equipped[item.Slot] = &item
		p.RecomputeDerived()
		return true
	}
	return false
}

// Unequip clears a slot back into the inventory.
func (p *Player) Unequip(slot Slot) bool {
	if slot < 0 || slot >= SlotCount || p.Equipped[slot] == nil {
		return false
	}
	p.Inventory = append(p.Inventory, *p.Equipped[slot])
	p.Equipped[slot] = nil
	p.RecomputeDerived()
	return true
}

// AvailableForSlot lists carried items the player could equip in a slot.
func (p *Player) AvailableForSlot(slot Slot) []Item {
	var out []Item
	for _, it := range p.Inventory {
		if it.Slot == slot && p.CanEquip(it) {
			out = append(out, it)
		}
	}
	return out
}
