// Package ui renders the battle log to a terminal, with optional ANSI
// truecolor styling.
package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/availlant/duelgrounds/internal/combat"
	"github.com/availlant/duelgrounds/internal/dice"
	"github.com/availlant/duelgrounds/internal/spatial"
)

const ansiReset = "\x1b[0m"

// Notice colors: red crits, yellow misses, green dodges.
var (
	critColor  = mustHex("#E74C3C")
	missColor  = mustHex("#F1C40F")
	dodgeColor = mustHex("#2ECC71")
	White      = colorful.Color{R: 1, G: 1, B: 1}
)

func mustHex(hex string) colorful.Color {
	color, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// Reporter writes battle narration lines to a writer. It implements
// combat.Reporter. With color enabled, notices are wrapped in 24-bit ANSI
// escape sequences.
type Reporter struct {
	w     io.Writer
	color bool
}

// NewReporter creates a reporter writing to w. Set color to false for
// plain output (tests, non-terminal sinks).
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// paint wraps text in a truecolor foreground escape when color is enabled.
func (r *Reporter) paint(c colorful.Color, text string) string {
	if !r.color {
		return text
	}
	red, green, blue := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", red, green, blue, text, ansiReset)
}

// formatValue renders a stat value rounded to two decimals, without
// trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(dice.Round(v, 2), 'f', -1, 64)
}

// Crit announces a critical hit.
func (r *Reporter) Crit(name string) {
	fmt.Fprintln(r.w, r.paint(critColor, "CRIT by "+name+" !"))
}

// Miss announces a missed attack.
func (r *Reporter) Miss(name string) {
	fmt.Fprintln(r.w, r.paint(missColor, "MISSED by "+name+" !"))
}

// Dodge announces a successful dodge.
func (r *Reporter) Dodge(name string) {
	fmt.Fprintln(r.w, r.paint(dodgeColor, "DODGED by "+name+" !"))
}

// Strike reports the damage an attacker sends at a defender.
func (r *Reporter) Strike(attacker, defender string, damage float64) {
	fmt.Fprintf(r.w, "%s attacks %s : %s dam\n", attacker, defender, formatValue(damage))
}

// Mitigation reports the defender's armor and HP after taking a hit.
func (r *Reporter) Mitigation(name string, armor float64, hp int) {
	fmt.Fprintf(r.w, "%s -> Armor : %s | HP : %d\n", name, formatValue(armor), hp)
}

// Win declares the winner of a battle.
func (r *Reporter) Win(name string) {
	fmt.Fprintf(r.w, "%s wins\n", name)
}

// Divider separates half-rounds in the battle log.
func (r *Reporter) Divider() {
	fmt.Fprintln(r.w, "________________")
}

// Banner prints an info block for a combatant before the fight. Category
// is omitted when empty (player characters have none); the name line is
// painted with the combatant's display color.
func (r *Reporter) Banner(c combat.Combatant, category string, speed float64, pos spatial.Pos, color colorful.Color) {
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "Name : %s\n", r.paint(color, c.GetName()))
	if category != "" {
		fmt.Fprintf(r.w, "Category : %s\n", category)
	}
	fmt.Fprintf(r.w, "Speed : %s\n", formatValue(speed))
	fmt.Fprintf(r.w, "Pos x,y : (%d,%d)\n", pos.X, pos.Y)
	fmt.Fprintf(r.w, "Armor : %s\n", formatValue(c.GetArmor()))
	fmt.Fprintf(r.w, "HP : %d\n", c.GetHP())
	fmt.Fprintf(r.w, "Alive : %t\n", c.IsAlive())
}

// Distance prints the distance separating the two fighters.
func (r *Reporter) Distance(name1, name2 string, distance float64) {
	fmt.Fprintf(r.w, "\nDistance between %s and %s : %s\n\n", name1, name2, formatValue(distance))
}

var _ combat.Reporter = (*Reporter)(nil)
