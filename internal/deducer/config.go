package deducer

// Config tunes which rule families run and how aggressively.
//
// Each MaxLevel is -1 (unlimited, bounded only by N-1), 0 (disabled), or
// a positive cap on k. LowerLevelFirst restarts the round at k=1 as soon
// as any rule fires at the current k, trading a few wasted low-level
// passes for catching easy deductions before expensive high-level ones.
type Config struct {
	NakedMaxLevel   int
	HiddenMaxLevel  int
	LinkedMaxLevel  int
	LowerLevelFirst bool
}

// DefaultConfig enables every rule family without a level cap and
// restarts at the lowest level after each fired deduction.
func DefaultConfig() Config {
	return Config{
		NakedMaxLevel:   -1,
		HiddenMaxLevel:  -1,
		LinkedMaxLevel:  -1,
		LowerLevelFirst: true,
	}
}

// DisableAll zeroes every rule's max level, turning the deducer into a
// no-op that only ever observes a puzzle already fulfilled on entry.
func (c Config) DisableAll() Config {
	c.NakedMaxLevel = 0
	c.HiddenMaxLevel = 0
	c.LinkedMaxLevel = 0
	return c
}

func ruleEnabledAt(maxLevel, k int) bool {
	if maxLevel == 0 {
		return false
	}
	if maxLevel == -1 {
		return true
	}
	return k <= maxLevel
}

func (c Config) nakedEnabledAt(k int) bool  { return ruleEnabledAt(c.NakedMaxLevel, k) }
func (c Config) hiddenEnabledAt(k int) bool { return ruleEnabledAt(c.HiddenMaxLevel, k) }
func (c Config) linkedEnabledAt(k int) bool { return ruleEnabledAt(c.LinkedMaxLevel, k) }
