// Package combat provides the turn-based combat system for Duelgrounds.
package combat

// Combatant is the interface for any entity that can attack, defend and
// die. Both creatures and player characters implement this interface; the
// resolver never inspects the concrete type.
type Combatant interface {
	// Identity
	GetName() string

	// Stats
	GetHP() int
	GetArmor() float64
	GetArmorDecayRate() float64
	GetPrecision() float64
	GetDamage() float64
	GetDamageVariation() float64
	GetCritProba() float64
	GetCritMultiplier() float64
	GetDodgeProba() float64

	// Flags
	InAlert() bool
	IsAttacking() bool
	IsAlive() bool

	// Mutations
	SetHP(hp int)
	SetArmor(armor float64)
	SetInAlert(alert bool)
	SetAttacking(attacking bool)
	SetAlive(alive bool)

	// Kill zeroes armor and HP, clears the alert and attacking flags and
	// marks the combatant dead. Idempotent.
	Kill()
}
