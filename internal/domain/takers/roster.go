package takers

// DefaultRoster is the ordered club list the source report covers (2024-25
// Premier League). Order matters: each club's section in the report ends
// where the next club's section begins.
var DefaultRoster = []string{
	"Arsenal",
	"Aston Villa",
	"Bournemouth",
	"Brentford",
	"Brighton",
	"Chelsea",
	"Crystal Palace",
	"Everton",
	"Fulham",
	"Ipswich",
	"Leicester",
	"Liverpool",
	"Man City",
	"Man Utd",
	"Newcastle",
	"Nott'm Forest",
	"Southampton",
	"Spurs",
	"West Ham",
	"Wolves",
}

// Roster returns a copy of the default roster safe for callers to mutate.
func Roster() []string {
	out := make([]string, len(DefaultRoster))
	copy(out, DefaultRoster)
	return out
}
