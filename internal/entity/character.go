package entity

import (
	"fmt"

	"github.com/availlant/duelgrounds/internal/combat"
	"github.com/availlant/duelgrounds/internal/dice"
	"github.com/availlant/duelgrounds/internal/gamedata"
	"github.com/availlant/duelgrounds/internal/spatial"
)

// Class represents the class chosen by the player. Each class applies a
// full stat preset at construction.
type Class int

const (
	ClassWarrior Class = iota
	ClassArcher
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassWarrior:
		return "Warrior"
	case ClassArcher:
		return "Archer"
	default:
		return "Unknown"
	}
}

// ID returns the class identifier for data lookup.
func (c Class) ID() string {
	switch c {
	case ClassWarrior:
		return "warrior"
	case ClassArcher:
		return "archer"
	default:
		return "unknown"
	}
}

// Character is the combatant controlled by the player.
type Character struct {
	Class Class

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

// NewCharacter creates a character of the given class at the given
// position, applying the class preset from the embedded registry.
func NewCharacter(name string, class Class, pos spatial.Pos) (*Character, error) {
	def, err := gamedata.DefaultClasses().GetByID(class.ID())
	if err != nil {
		return nil, err
	}
	speed, err := dice.Normalize(def.Speed)
	if err != nil {
		return nil, fmt.Errorf("class '%s': %w", class.ID(), err)
	}
	return &Character{
		Class:           class,
		name:            name,
		pos:             pos,
		speed:           speed,
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
	}, nil
}

// Speed returns the character's movement speed.
func (c *Character) Speed() float64 { return c.speed }

// MoveTo places the character at new coordinates.
func (c *Character) MoveTo(x, y int32) { c.pos.MoveTo(x, y) }

// Pos returns the character's position.
func (c *Character) Pos() spatial.Pos { return c.pos }

// SetPos moves the character to a new position.
func (c *Character) SetPos(pos spatial.Pos) { c.pos = pos }

// GetName returns the character's name.
func (c *Character) GetName() string { return c.name }

// GetHP returns current hit points.
func (c *Character) GetHP() int { return c.hp }

// GetArmor returns the current armor value.
func (c *Character) GetArmor() float64 { return c.armor }

// GetArmorDecayRate returns the k parameter of the armor mitigation.
func (c *Character) GetArmorDecayRate() float64 { return c.armorDecayRate }

// GetPrecision returns the hit probability.
func (c *Character) GetPrecision() float64 { return c.precision }

// GetDamage returns the central damage value.
func (c *Character) GetDamage() float64 { return c.damage }

// GetDamageVariation returns the damage roll denominator.
func (c *Character) GetDamageVariation() float64 { return c.damageVariation }

// GetCritProba returns the critical hit probability.
func (c *Character) GetCritProba() float64 { return c.critProba }

// GetCritMultiplier returns the damage multiplier on crit.
func (c *Character) GetCritMultiplier() float64 { return c.critMultiplier }

// GetDodgeProba returns the evasion probability.
func (c *Character) GetDodgeProba() float64 { return c.dodgeProba }

// InAlert reports whether the character is looking for trouble.
func (c *Character) InAlert() bool { return c.inAlert }

// IsAttacking reports whether the character is engaged.
func (c *Character) IsAttacking() bool { return c.isAttacking }

// IsAlive reports whether the character has HP remaining.
func (c *Character) IsAlive() bool { return c.isAlive }

// SetHP replaces current hit points.
func (c *Character) SetHP(hp int) { c.hp = hp }

// SetArmor replaces the armor value.
func (c *Character) SetArmor(armor float64) { c.armor = armor }

// SetInAlert flips the alert flag.
func (c *Character) SetInAlert(alert bool) { c.inAlert = alert }

// SetAttacking flips the attacking flag.
func (c *Character) SetAttacking(attacking bool) { c.isAttacking = attacking }

// SetAlive flips the alive flag.
func (c *Character) SetAlive(alive bool) { c.isAlive = alive }

// Kill zeroes armor and HP and marks the character dead. Idempotent.
func (c *Character) Kill() {
	c.armor = 0
	c.hp = 0
	c.inAlert = false
	c.isAttacking = false
	c.isAlive = false
}

// Ensure Character implements the combat and spatial contracts.
var (
	_ combat.Combatant = (*Character)(nil)
	_ spatial.Located  = (*Character)(nil)
)
