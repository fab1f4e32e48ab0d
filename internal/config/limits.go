package config

// Limits caps the number of records returned per category
type Limits struct {
	Commits       int `env:"COMMITS" envDefault:"10"`
	Stars         int `env:"STARS" envDefault:"20"`
	Contributions int `env:"CONTRIBUTIONS" envDefault:"10"`
	Activity      int `env:"ACTIVITY" envDefault:"20"`
	Repos         int `env:"REPOS" envDefault:"10"`
}

// DefaultLimits returns the default per-category limits
func DefaultLimits() Limits {
	return Limits{
		Commits:       10,
		Stars:         20,
		Contributions: 10,
		Activity:      20,
		Repos:         10,
	}
}

// WithDefaults replaces non-positive limits with their defaults
func (l Limits) WithDefaults() Limits {
	d := DefaultLimits()
	if l.Commits <= 0 {
		l.Commits = d.Commits
	}
	if l.Stars <= 0 {
		l.Stars = d.Stars
	}
	if l.Contributions <= 0 {
		l.Contributions = d.Contributions
	}
	if l.Activity <= 0 {
		l.Activity = d.Activity
	}
	if l.Repos <= 0 {
		l.Repos = d.Repos
	}
	return l
}
