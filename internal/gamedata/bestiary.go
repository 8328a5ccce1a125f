package gamedata

import (
	"errors"
	"fmt"
	"sync"

	"github.com/availlant/duelgrounds/internal/dice"
)

// CreatureDef defines a creature template loaded from JSON. Templates are
// immutable after load; GetMob hands out copies.
type CreatureDef struct {
	ID              string  `json:"id"`              // Bestiary key (e.g., "gobelin")
	Name            string  `json:"name"`            // Display name
	Category        string  `json:"category"`        // Movement category: terrestrial, aerial or aquatic
	Color           string  `json:"color"`           // Hex color code for battle log output
	Speed           float64 `json:"speed"`           // Movement speed in [0,1]
	HP              int     `json:"hp"`              // Base hit points
	Armor           float64 `json:"armor"`           // Armor value, may be 0
	ArmorDecayRate  float64 `json:"armorDecayRate"`  // k parameter of the exponential mitigation
	Precision       float64 `json:"precision"`       // Chance of hitting the target
	Damage          float64 `json:"damage"`          // Central damage value
	DamageVariation float64 `json:"damageVariation"` // Denominator of the roll half-width
	CritProba       float64 `json:"critProba"`       // Critical hit probability
	CritMultiplier  float64 `json:"critMultiplier"`  // Damage multiplier on crit
	DodgeProba      float64 `json:"dodgeProba"`      // Probability to dodge a hit
}

// Validate normalizes the probability fields into [0,1] and rejects stat
// blocks the combat core could not safely consume.
func (d *CreatureDef) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("creature %q: name is empty", d.ID)
	}
	if d.HP <= 0 {
		return fmt.Errorf("creature %q: hp must be positive", d.ID)
	}
	if d.Armor < 0 {
		return fmt.Errorf("creature %q: armor can't be negative", d.ID)
	}
	if d.ArmorDecayRate <= 0 {
		return fmt.Errorf("creature %q: armor decay rate must be positive", d.ID)
	}
	if d.Damage <= 0 || d.DamageVariation <= 0 {
		return fmt.Errorf("creature %q: damage and damage variation must be positive", d.ID)
	}
	if d.CritMultiplier < 1 {
		return fmt.Errorf("creature %q: crit multiplier must be at least 1", d.ID)
	}
	for _, p := range []*float64{&d.Speed, &d.Precision, &d.CritProba, &d.DodgeProba} {
		normalized, err := dice.Normalize(*p)
		if err != nil {
			return fmt.Errorf("creature %q: %w", d.ID, err)
		}
		*p = normalized
	}
	return nil
}

// BestiaryFile represents the structure of bestiary.json.
type BestiaryFile struct {
	Creatures []CreatureDef `json:"creatures"`
}

// Bestiary is an immutable keyed registry of creature templates.
type Bestiary struct {
	defs  map[string]CreatureDef
	order []string
}

// NewBestiary creates a bestiary from validated creature definitions.
func NewBestiary(defs []CreatureDef) (*Bestiary, error) {
	b := &Bestiary{defs: make(map[string]CreatureDef, len(defs))}
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, err
		}
		b.defs[defs[i].ID] = defs[i]
		b.order = append(b.order, defs[i].ID)
	}
	return b, nil
}

// LoadBestiary loads and creates a bestiary from the embedded bestiary.json.
func LoadBestiary() (*Bestiary, error) {
	file, err := Load[BestiaryFile]("bestiary.json")
	if err != nil {
		return nil, err
	}
	if len(file.Creatures) == 0 {
		return nil, errors.New("no creatures loaded from bestiary.json")
	}
	return NewBestiary(file.Creatures)
}

// MustLoadBestiary loads a bestiary, panicking on error.
func MustLoadBestiary() *Bestiary {
	bestiary, err := LoadBestiary()
	if err != nil {
		panic(err)
	}
	return bestiary
}

// GetMob returns a freshly owned copy of the template stored under key.
func (b *Bestiary) GetMob(key string) (CreatureDef, error) {
	def, ok := b.defs[key]
	if !ok {
		return CreatureDef{}, fmt.Errorf("Mob '%s' not found in bestiary", key)
	}
	return def, nil
}

// Keys returns the bestiary keys in file order.
func (b *Bestiary) Keys() []string {
	keys := make([]string, len(b.order))
	copy(keys, b.order)
	return keys
}

// Count returns the number of creature templates in the bestiary.
func (b *Bestiary) Count() int {
	return len(b.defs)
}

var (
	defaultBestiary     *Bestiary
	defaultBestiaryOnce sync.Once
)

// DefaultBestiary returns the process-wide bestiary, loading the embedded
// data on first access. The result is read-only and safe to share.
func DefaultBestiary() *Bestiary {
	defaultBestiaryOnce.Do(func() {
		defaultBestiary = MustLoadBestiary()
	})
	return defaultBestiary
}

// GetMob looks up a creature template in the process-wide bestiary.
func GetMob(key string) (CreatureDef, error) {
	return DefaultBestiary().GetMob(key)
}
