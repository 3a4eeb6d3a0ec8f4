package domain

// LevelTier is one row of the fixed level table.
type LevelTier struct {
	Level int
	Min   int
	Max   int
}

var levelTable = []LevelTier{
	{Level: 1, Min: 0, Max: 199},
	{Level: 2, Min: 200, Max: 499},
	{Level: 3, Min: 500, Max: 999},
	{Level: 4, Min: 1000, Max: 1699},
	{Level: 5, Min: 1700, Max: 9999999},
}

// LevelFor scans the table in order and returns the tier whose range holds
// the xp. The first tier is the fallback when nothing matches.
func LevelFor(xp int) LevelTier {
	for _, tier := range levelTable {
		if xp >= tier.Min && xp <= tier.Max {
			return tier
		}
	}
	return levelTable[0]
}

// LevelPercent is the position inside the current tier, 0 to 100.
func LevelPercent(xp int) float64 {
	tier := LevelFor(xp)
	pct := float64(xp-tier.Min) / float64(tier.Max-tier.Min+1) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
