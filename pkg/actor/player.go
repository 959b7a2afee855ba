package actor

// MaxSanity is the ceiling of the sanity track.
const MaxSanity = 100

// Player holds the two depleting resources of the estate's visitor.
// Health is bounded by MaxHealth and sanity by MaxSanity; every mutation
// saturates instead of overflowing.
type Player struct {
	Health    int
	MaxHealth int
	Sanity    int
}

// NewPlayer creates a Player with full sanity.
// Health is clamped to [0, maxHealth] and a negative maxHealth is treated as 0.
func NewPlayer(health, maxHealth int) *Player {
	if maxHealth < 0 {
		maxHealth = 0
	}
	p := &Player{MaxHealth: maxHealth, Sanity: MaxSanity}
	p.SetHealth(health)
	return p
}

// TakeDamage reduces health by n. Health cannot go below 0.
// Returns the amount actually lost.
func (p *Player) TakeDamage(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.Health
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
	return before - p.Health
}

// Heal increases health by n. Health cannot exceed MaxHealth.
// Returns the amount actually gained.
func (p *Player) Heal(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.Health
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	return p.Health - before
}

// SetHealth assigns health directly, clamped to [0, MaxHealth].
func (p *Player) SetHealth(n int) {
	switch {
	case n < 0:
		p.Health = 0
	case n > p.MaxHealth:
		p.Health = p.MaxHealth
	default:
		p.Health = n
	}
}

// LoseSanity reduces sanity by n, never below 0. Returns the amount lost.
func (p *Player) LoseSanity(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.Sanity
	p.Sanity -= n
	if p.Sanity < 0 {
		p.Sanity = 0
	}
	return before - p.Sanity
}

// GainSanity increases sanity by n, never above MaxSanity. Returns the amount gained.
func (p *Player) GainSanity(n int) int {
	if n <= 0 {
		return 0
	}
	before := p.Sanity
	p.Sanity += n
	if p.Sanity > MaxSanity {
		p.Sanity = MaxSanity
	}
	return p.Sanity - before
}

// IsDead returns true if health is 0 or less.
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// IsInsane returns true if sanity is 0 or less.
func (p *Player) IsInsane() bool {
	return p.Sanity <= 0
}
