package scoring

import "math"

// Config carries the competition-wide scoring parameters. MinPoints is the
// asymptotic floor a task's value decays toward; MaxPoints is the ceiling
// admins may assign as a task's base value.
type Config struct {
	Dynamic   bool
	MinPoints float64
	MaxPoints float64
}

const (
	decayScale    = 11.92
	decayExponent = 1.21
)

// EffectivePoints computes the current value of a task given how many users
// have solved it so far.
//
// With dynamic scoring disabled the base value is returned unchanged.
// Otherwise the value decays with the solver count:
//
//	decay = (max(0, solverCount-1) / 11.92) ^ 1.21
//	effective = min + (base - min) / (1 + decay)
//
// The first solver earns the full base value. As more users solve the task
// the value decreases monotonically toward MinPoints, never below it. The
// solver count is the count at computation time, so the value awarded for an
// old solve shrinks retroactively as later competitors solve the same task.
func EffectivePoints(cfg Config, basePoints float64, solverCount int) float64 {
	if !cfg.Dynamic {
		return basePoints
	}
	n := float64(solverCount - 1)
	if n < 0 {
		n = 0
	}
	decay := math.Pow(n/decayScale, decayExponent)
	return cfg.MinPoints + (basePoints-cfg.MinPoints)/(1+decay)
}

// ValidBasePoints reports whether a base value an admin wants to assign
// falls within the configured [MinPoints, MaxPoints] bounds.
func (cfg Config) ValidBasePoints(basePoints float64) bool {
	return basePoints >= cfg.MinPoints && basePoints <= cfg.MaxPoints
}
