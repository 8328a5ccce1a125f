// Package entity provides the concrete combatants: creatures spawned from
// the bestiary and player characters built from class presets.
package entity

import (
	"github.com/availlant/duelgrounds/internal/combat"
	"github.com/availlant/duelgrounds/internal/gamedata"
	"github.com/availlant/duelgrounds/internal/spatial"
)

// Category is the movement category a creature can adopt.
type Category int

const (
	Terrestrial Category = iota
	Aerial
	Aquatic
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Terrestrial:
		return "terrestrial"
	case Aerial:
		return "aerial"
	case Aquatic:
		return "aquatic"
	default:
		return "unknown"
	}
}

// ParseCategory maps a bestiary category tag to a Category.
// Unknown tags fall back to Terrestrial.
func ParseCategory(tag string) Category {
	switch tag {
	case "aerial":
		return Aerial
	case "aquatic":
		return Aquatic
	default:
		return Terrestrial
	}
}

// Creature is a hostile combatant spawned from a bestiary template.
type Creature struct {
	Def      *gamedata.CreatureDef // Owned copy of the template this creature was spawned from
	Category Category

	name            string
	pos             spatial.Pos
	speed           float64
	hp              int
	armor           float64
	armorDecayRate  float64
	precision       float64
	damage          float64
	damageVariation float64
	critProba       float64
	critMultiplier  float64
	dodgeProba      float64
	inAlert         bool
	isAttacking     bool
	isAlive         bool
}

// NewCreatureFromDef builds a creature from a bestiary template at the
// given position. The template itself is never mutated.
func NewCreatureFromDef(def gamedata.CreatureDef, pos spatial.Pos) *Creature {
	return &Creature{
		Def:             &def,
		Category:        ParseCategory(def.Category),
		name:            def.Name,
		pos:             pos,
		speed:           def.Speed,
		hp:              def.HP,
		armor:           def.Armor,
		armorDecayRate:  def.ArmorDecayRate,
		precision:       def.Precision,
		damage:          def.Damage,
		damageVariation: def.DamageVariation,
		critProba:       def.CritProba,
		critMultiplier:  def.CritMultiplier,
		dodgeProba:      def.DodgeProba,
		isAlive:         def.HP > 0,
	}
}

// Spawn looks up a bestiary key and places the creature at the default
// position. The error carries the unknown key.
func Spawn(key string) (*Creature, error) {
	def, err := gamedata.GetMob(key)
	if err != nil {
		return nil, err
	}
	return NewCreatureFromDef(def, spatial.Pos{}), nil
}

// Speed returns the creature's movement speed.
func (c *Creature) Speed() float64 { return c.speed }

// Pos returns the creature's position.
func (c *Creature) Pos() spatial.Pos { return c.pos }

// SetPos moves the creature to a new position.
func (c *Creature) SetPos(pos spatial.Pos) { c.pos = pos }

// GetName returns the creature's display name.
func (c *Creature) GetName() string { return c.name }

// GetHP returns current hit points.
func (c *Creature) GetHP() int { return c.hp }

// GetArmor returns the current armor value.
func (c *Creature) GetArmor() float64 { return c.armor }

// GetArmorDecayRate returns the k parameter of the armor mitigation.
func (c *Creature) GetArmorDecayRate() float64 { return c.armorDecayRate }

// GetPrecision returns the hit probability.
func (c *Creature) GetPrecision() float64 { return c.precision }

// GetDamage returns the central damage value.
func (c *Creature) GetDamage() float64 { return c.damage }

// GetDamageVariation returns the damage roll denominator.
func (c *Creature) GetDamageVariation() float64 { return c.damageVariation }

// GetCritProba returns the critical hit probability.
func (c *Creature) GetCritProba() float64 { return c.critProba }

// GetCritMultiplier returns the damage multiplier on crit.
func (c *Creature) GetCritMultiplier() float64 { return c.critMultiplier }

// GetDodgeProba returns the evasion probability.
func (c *Creature) GetDodgeProba() float64 { return c.dodgeProba }

// InAlert reports whether the creature is looking for trouble.
func (c *Creature) InAlert() bool { return c.inAlert }

// IsAttacking reports whether the creature is engaged.
func (c *Creature) IsAttacking() bool { return c.isAttacking }

// IsAlive reports whether the creature has HP remaining.
func (c *Creature) IsAlive() bool { return c.isAlive }

// SetHP replaces current hit points.
func (c *Creature) SetHP(hp int) { c.hp = hp }

// SetArmor replaces the armor value.
func (c *Creature) SetArmor(armor float64) { c.armor = armor }

// SetInAlert flips the alert flag.
func (c *Creature) SetInAlert(alert bool) { c.inAlert = alert }

// SetAttacking flips the attacking flag.
func (c *Creature) SetAttacking(attacking bool) { c.isAttacking = attacking }

// SetAlive flips the alive flag.
func (c *Creature) SetAlive(alive bool) { c.isAlive = alive }

// Kill zeroes armor and HP and marks the creature dead. Idempotent.
func (c *Creature) Kill() {
	c.armor = 0
	c.hp = 0
	c.inAlert = false
	c.isAttacking = false
	c.isAlive = false
}

// Ensure Creature implements the combat and spatial contracts.
var (
	_ combat.Combatant = (*Creature)(nil)
	_ spatial.Located  = (*Creature)(nil)
)
