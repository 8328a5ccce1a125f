// Package arena builds the duel scene and drives it to its outcome.
package arena

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel/attribute"

	"github.com/availlant/duelgrounds/internal/combat"
	"github.com/availlant/duelgrounds/internal/dice"
	"github.com/availlant/duelgrounds/internal/entity"
	"github.com/availlant/duelgrounds/internal/spatial"
	"github.com/availlant/duelgrounds/internal/telemetry"
	"github.com/availlant/duelgrounds/internal/ui"
)

// Config holds the duel setup options.
type Config struct {
	// Seed for the duel's random draws. A seed of 0 means a time-based
	// seed will be generated.
	Seed int64
	// Out receives the battle log. Defaults to os.Stdout.
	Out io.Writer
	// Color enables ANSI styling of the battle log.
	Color bool
	// CreatureKey selects the bestiary opponent. Defaults to "gobelin".
	CreatureKey string
	// CharacterName names the player character. Defaults to "Aldric".
	CharacterName string
}

// Arena wires the registries, the resolver and the reporter into a
// runnable duel between a character and a creature.
type Arena struct {
	cfg      Config
	reporter *ui.Reporter
	resolver *combat.Resolver
}

// New creates an arena from the given configuration.
func New(cfg Config) *Arena {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.CreatureKey == "" {
		cfg.CreatureKey = "gobelin"
	}
	if cfg.CharacterName == "" {
		cfg.CharacterName = "Aldric"
	}
	reporter := ui.NewReporter(cfg.Out, cfg.Color)
	return &Arena{
		cfg:      cfg,
		reporter: reporter,
		resolver: combat.NewResolver(dice.NewRoller(cfg.Seed), reporter),
	}
}

// Run builds the two fighters, prints their info banners and battles them
// to a terminal outcome.
func (a *Arena) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("arena")
	ctx, span := tracer.Start(ctx, "arena.run")
	span.SetAttributes(
		attribute.String("creature", a.cfg.CreatureKey),
		attribute.Int64("seed", a.cfg.Seed),
	)
	defer span.End()

	hero, err := entity.NewCharacter(a.cfg.CharacterName, entity.ClassWarrior, spatial.New(0, 0))
	if err != nil {
		return err
	}

	creature, err := entity.Spawn(a.cfg.CreatureKey)
	if err != nil {
		return err
	}
	creature.SetPos(spatial.New(12, 5))

	a.reporter.Banner(hero, "", hero.Speed(), hero.Pos(), ui.White)
	a.reporter.Banner(creature, creature.Category.String(), creature.Speed(), creature.Pos(), creature.Def.DisplayColor())
	a.reporter.Distance(hero.GetName(), creature.GetName(), spatial.Distance(hero, creature))

	winner, rounds := a.resolver.Battle(ctx, hero, creature)
	span.SetAttributes(
		attribute.String("winner", winner.GetName()),
		attribute.Int("rounds", rounds),
	)
	return nil
}
