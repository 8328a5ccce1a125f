package entity

import (
	"testing"

	"github.com/availlant/duelgrounds/internal/spatial"
)

func TestSpawnGobelin(t *testing.T) {
	gobelin, err := Spawn("gobelin")
	if err != nil {
		t.Fatal(err)
	}
	if gobelin.GetName() != "Gobelin" {
		t.Errorf("name = %q, want Gobelin", gobelin.GetName())
	}
	if gobelin.Category != Terrestrial {
		t.Errorf("category = %v, want terrestrial", gobelin.Category)
	}
	if gobelin.GetHP() != 100 || gobelin.GetArmor() != 100 {
		t.Errorf("stats off: hp=%d armor=%v", gobelin.GetHP(), gobelin.GetArmor())
	}
	if gobelin.GetDodgeProba() != 0.15 {
		t.Errorf("dodge = %v, want 0.15", gobelin.GetDodgeProba())
	}
	if !gobelin.IsAlive() {
		t.Error("fresh creature should be alive")
	}
	if pos := gobelin.Pos(); pos.X != 0 || pos.Y != 0 {
		t.Errorf("default position = %v, want origin", pos)
	}
	if gobelin.InAlert() || gobelin.IsAttacking() {
		t.Error("fresh creature should be calm")
	}
}

func TestSpawnUnknownCreature(t *testing.T) {
	_, err := Spawn("kraken")
	if err == nil {
		t.Fatal("unknown creature did not fail")
	}
	if got, want := err.Error(), "Mob 'kraken' not found in bestiary"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestSpawnedCreaturesAreIndependent(t *testing.T) {
	first, err := Spawn("shark")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Spawn("shark")
	if err != nil {
		t.Fatal(err)
	}

	first.Kill()

	if !second.IsAlive() || second.GetHP() != 70 {
		t.Error("killing one spawn affected another")
	}
}

func TestNewCharacterWarrior(t *testing.T) {
	warrior, err := NewCharacter("Aldric", ClassWarrior, spatial.New(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if warrior.GetName() != "Aldric" {
		t.Errorf("name = %q, want Aldric", warrior.GetName())
	}
	if warrior.Speed() != 0.25 {
		t.Errorf("speed = %v, want 0.25", warrior.Speed())
	}
	if warrior.GetHP() != 100 || warrior.GetArmor() != 100 {
		t.Errorf("stats off: hp=%d armor=%v", warrior.GetHP(), warrior.GetArmor())
	}
	if warrior.GetPrecision() != 0.9 || warrior.GetDamage() != 45 {
		t.Errorf("offense off: precision=%v damage=%v", warrior.GetPrecision(), warrior.GetDamage())
	}
	if warrior.GetCritProba() != 0.05 || warrior.GetCritMultiplier() != 2.0 {
		t.Errorf("crit off: %v x%v", warrior.GetCritProba(), warrior.GetCritMultiplier())
	}
	if warrior.GetDodgeProba() != 0.08 {
		t.Errorf("dodge = %v, want 0.08", warrior.GetDodgeProba())
	}
	if !warrior.IsAlive() {
		t.Error("fresh character should be alive")
	}
}

func TestNewCharacterArcher(t *testing.T) {
	archer, err := NewCharacter("Sylvi", ClassArcher, spatial.New(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	if archer.Speed() != 0.4 {
		t.Errorf("speed = %v, want 0.4", archer.Speed())
	}
	if archer.GetArmor() != 60 {
		t.Errorf("armor = %v, want 60", archer.GetArmor())
	}
	if archer.GetPrecision() != 0.75 || archer.GetDamage() != 50 {
		t.Errorf("offense off: precision=%v damage=%v", archer.GetPrecision(), archer.GetDamage())
	}
	if archer.GetCritMultiplier() != 2.5 || archer.GetDodgeProba() != 0.15 {
		t.Errorf("crit/dodge off: x%v dodge=%v", archer.GetCritMultiplier(), archer.GetDodgeProba())
	}
	if pos := archer.Pos(); pos.X != 3 || pos.Y != 4 {
		t.Errorf("position = %v, want (3,4)", pos)
	}
}

func TestCharacterMoveTo(t *testing.T) {
	archer, err := NewCharacter("Sylvi", ClassArcher, spatial.New(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	archer.MoveTo(12, -5)
	if pos := archer.Pos(); pos.X != 12 || pos.Y != -5 {
		t.Errorf("position after MoveTo = %v, want (12,-5)", pos)
	}
}

func TestKillIsIdempotent(t *testing.T) {
	dragon, err := Spawn("dragon")
	if err != nil {
		t.Fatal(err)
	}
	dragon.SetInAlert(true)
	dragon.SetAttacking(true)

	dragon.Kill()
	dragon.Kill()

	if dragon.GetHP() != 0 || dragon.GetArmor() != 0 {
		t.Errorf("hp=%d armor=%v after kill, want both 0", dragon.GetHP(), dragon.GetArmor())
	}
	if dragon.IsAlive() || dragon.InAlert() || dragon.IsAttacking() {
		t.Error("kill must clear alive, alert and attacking flags")
	}
}

func TestClassNames(t *testing.T) {
	if ClassWarrior.String() != "Warrior" || ClassWarrior.ID() != "warrior" {
		t.Errorf("warrior naming off: %s/%s", ClassWarrior, ClassWarrior.ID())
	}
	if ClassArcher.String() != "Archer" || ClassArcher.ID() != "archer" {
		t.Errorf("archer naming off: %s/%s", ClassArcher, ClassArcher.ID())
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		tag  string
		want Category
	}{
		{"terrestrial", Terrestrial},
		{"aerial", Aerial},
		{"aquatic", Aquatic},
		{"subterranean", Terrestrial}, // unknown tags fall back
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.tag); got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
