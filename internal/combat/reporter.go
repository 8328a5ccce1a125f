package combat

// Reporter receives the battle narration emitted by the resolver. The ui
// package provides the colored terminal implementation; tests can capture
// lines with a recorder.
type Reporter interface {
	// Crit announces a critical hit landed by the named attacker.
	Crit(name string)
	// Miss announces a missed attack by the named attacker.
	Miss(name string)
	// Dodge announces a successful dodge by the named defender.
	Dodge(name string)
	// Strike reports the damage an attacker sends at a defender.
	Strike(attacker, defender string, damage float64)
	// Mitigation reports the defender's armor and HP after taking a hit.
	Mitigation(name string, armor float64, hp int)
	// Win declares the winner of a battle.
	Win(name string)
	// Divider separates half-rounds in the battle log.
	Divider()
}

// NopReporter discards all narration. Useful when only the outcome matters.
type NopReporter struct{}

func (NopReporter) Crit(string)                     {}
func (NopReporter) Miss(string)                     {}
func (NopReporter) Dodge(string)                    {}
func (NopReporter) Strike(string, string, float64)  {}
func (NopReporter) Mitigation(string, float64, int) {}
func (NopReporter) Win(string)                      {}
func (NopReporter) Divider()                        {}

var _ Reporter = NopReporter{}
