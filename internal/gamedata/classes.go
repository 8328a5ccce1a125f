package gamedata

import (
	"errors"
	"fmt"
	"sync"

	"github.com/availlant/duelgrounds/internal/dice"
)

// ClassDef defines a playable class preset loaded from JSON.
type ClassDef struct {
	ID              string  `json:"id"`              // Unique identifier (e.g., "warrior")
	Name            string  `json:"name"`            // Display name (e.g., "Warrior")
	Speed           float64 `json:"speed"`           // Movement speed in [0,1]
	HP              int     `json:"hp"`              // Base hit points
	Armor           float64 `json:"armor"`           // Starting armor value
	ArmorDecayRate  float64 `json:"armorDecayRate"`  // k parameter of the exponential mitigation
	Precision       float64 `json:"precision"`       // Chance of hitting the target
	Damage          float64 `json:"damage"`          // Central damage value
	DamageVariation float64 `json:"damageVariation"` // Denominator of the roll half-width
	CritProba       float64 `json:"critProba"`       // Critical hit probability
	CritMultiplier  float64 `json:"critMultiplier"`  // Damage multiplier on crit
	DodgeProba      float64 `json:"dodgeProba"`      // Probability to dodge a hit
}

// Validate normalizes the probability fields and rejects unusable presets.
func (d *ClassDef) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("class %q: name is empty", d.ID)
	}
	if d.HP <= 0 {
		return fmt.Errorf("class %q: hp must be positive", d.ID)
	}
	if d.Armor < 0 {
		return fmt.Errorf("class %q: armor can't be negative", d.ID)
	}
	if d.ArmorDecayRate <= 0 {
		return fmt.Errorf("class %q: armor decay rate must be positive", d.ID)
	}
	if d.Damage <= 0 || d.DamageVariation <= 0 {
		return fmt.Errorf("class %q: damage and damage variation must be positive", d.ID)
	}
	if d.CritMultiplier < 1 {
		return fmt.Errorf("class %q: crit multiplier must be at least 1", d.ID)
	}
	for _, p := range []*float64{&d.Speed, &d.Precision, &d.CritProba, &d.DodgeProba} {
		normalized, err := dice.Normalize(*p)
		if err != nil {
			return fmt.Errorf("class %q: %w", d.ID, err)
		}
		*p = normalized
	}
	return nil
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// ClassRegistry holds the playable class presets keyed by id.
type ClassRegistry struct {
	classes map[string]ClassDef
}

// NewClassRegistry creates a registry from validated class definitions.
func NewClassRegistry(defs []ClassDef) (*ClassRegistry, error) {
	r := &ClassRegistry{classes: make(map[string]ClassDef, len(defs))}
	for i := range defs {
		if err := defs[i].Validate(); err != nil {
			return nil, err
		}
		r.classes[defs[i].ID] = defs[i]
	}
	return r, nil
}

// LoadClassRegistry loads and creates a registry from the embedded classes.json.
func LoadClassRegistry() (*ClassRegistry, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	if len(file.Classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	return NewClassRegistry(file.Classes)
}

// MustLoadClassRegistry loads a registry, panicking on error.
func MustLoadClassRegistry() *ClassRegistry {
	registry, err := LoadClassRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns a copy of the class preset with the given id.
func (r *ClassRegistry) GetByID(id string) (ClassDef, error) {
	def, ok := r.classes[id]
	if !ok {
		return ClassDef{}, fmt.Errorf("class '%s' not found", id)
	}
	return def, nil
}

// Count returns the number of class presets in the registry.
func (r *ClassRegistry) Count() int {
	return len(r.classes)
}

var (
	defaultClasses     *ClassRegistry
	defaultClassesOnce sync.Once
)

// DefaultClasses returns the process-wide class registry, loading the
// embedded data on first access.
func DefaultClasses() *ClassRegistry {
	defaultClassesOnce.Do(func() {
		defaultClasses = MustLoadClassRegistry()
	})
	return defaultClasses
}
