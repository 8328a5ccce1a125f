package combat

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/availlant/duelgrounds/internal/dice"
	"github.com/availlant/duelgrounds/internal/telemetry"
)

// Resolver drives attack and defense resolution for a duel. It owns the
// roller so that a seeded resolver replays the exact same fight.
type Resolver struct {
	roller   *dice.Roller
	reporter Reporter
}

// NewResolver creates a resolver drawing from the given roller and
// narrating through the given reporter.
func NewResolver(roller *dice.Roller, reporter Reporter) *Resolver {
	if reporter == nil {
		reporter = NopReporter{}
	}
	return &Resolver{
		roller:   roller,
		reporter: reporter,
	}
}

// proba runs a Bernoulli trial against a combatant stat. Stats are
// validated at load time, so a failed trial here is a programming bug.
func (r *Resolver) proba(p float64) bool {
	ok, err := r.roller.CheckProba(p)
	if err != nil {
		panic(fmt.Sprintf("combat: invalid probability %v: %v", p, err))
	}
	return ok
}

// Attack returns the outgoing damage of an attacker. The attacker is only
// read; the single side effect is on the roller.
//
// The precision trial comes first: a missed blow deals 0 damage and rolls
// nothing else. On a hit the base damage is drawn around the attacker's
// damage stat, then a crit trial may multiply it.
func (r *Resolver) Attack(attacker Combatant) float64 {
	if !r.proba(attacker.GetPrecision()) {
		r.reporter.Miss(attacker.GetName())
		return 0.0
	}

	damage := r.roller.CentredRand(attacker.GetDamage(), attacker.GetDamageVariation())

	if r.proba(attacker.GetCritProba()) {
		r.reporter.Crit(attacker.GetName())
		damage *= attacker.GetCritMultiplier()
	}
	return damage
}

// Defend applies incoming damage to a defender, mutating its armor and HP.
//
// A successful dodge nullifies the hit entirely. Otherwise armor absorbs
// an exponentially decayed fraction of the damage first; whatever spills
// past the armor is truncated to an integer and taken from HP. HP and
// armor never go below zero, and a combatant whose HP reaches zero is
// killed.
func (r *Resolver) Defend(defender Combatant, damage float64) {
	if r.proba(defender.GetDodgeProba()) {
		r.reporter.Dodge(defender.GetName())
		return
	}

	armor := defender.GetArmor()
	if armor > 0 {
		final := dice.ExpDecay(damage, armor, defender.GetArmorDecayRate())
		if final < armor {
			defender.SetArmor(armor - final)
			return
		}
		extra := final - armor
		defender.SetArmor(0)
		hp := defender.GetHP() - int(extra)
		if hp <= 0 {
			defender.Kill()
			return
		}
		defender.SetHP(hp)
		return
	}

	if defender.GetHP() > 0 {
		if damage < float64(defender.GetHP()) {
			defender.SetHP(defender.GetHP() - int(damage))
			return
		}
		defender.Kill()
		return
	}

	// Already dead, but just in case.
	defender.Kill()
}

// Battle makes two combatants exchange blows until one of them has no HP
// left. fighter1 always strikes first each round. It returns the winner
// and the number of rounds fought. The context is used for tracing only;
// the loop itself is synchronous.
func (r *Resolver) Battle(ctx context.Context, fighter1, fighter2 Combatant) (Combatant, int) {
	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "combat.battle")
	span.SetAttributes(
		attribute.String("fighter1", fighter1.GetName()),
		attribute.String("fighter2", fighter2.GetName()),
	)
	defer span.End()

	rounds := 0
	for {
		rounds++
		_, roundSpan := tracer.Start(ctx, "combat.round")
		roundSpan.SetAttributes(attribute.Int("round", rounds))

		r.strike(fighter1, fighter2)
		r.reporter.Divider()

		if fighter2.GetHP() <= 0 {
			roundSpan.End()
			r.reporter.Win(fighter1.GetName())
			span.SetAttributes(
				attribute.String("winner", fighter1.GetName()),
				attribute.Int("rounds", rounds),
			)
			return fighter1, rounds
		}

		r.strike(fighter2, fighter1)
		roundSpan.End()

		if fighter1.GetHP() <= 0 {
			r.reporter.Win(fighter2.GetName())
			span.SetAttributes(
				attribute.String("winner", fighter2.GetName()),
				attribute.Int("rounds", rounds),
			)
			return fighter2, rounds
		}

		r.reporter.Divider()
	}
}

// strike resolves a single blow from attacker to defender.
func (r *Resolver) strike(attacker, defender Combatant) {
	damage := r.Attack(attacker)
	r.reporter.Strike(attacker.GetName(), defender.GetName(), damage)
	r.Defend(defender, damage)
	r.reporter.Mitigation(defender.GetName(), defender.GetArmor(), defender.GetHP())
}
