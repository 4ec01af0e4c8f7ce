package domain

import "math"

const (
	firstLevelRequirement = 100
	levelRequirementStep  = 50

	// Totals above this are clamped so the ladder arithmetic stays in int64.
	maxLevelPoints = 1 << 53
)

// Level is a reader's position on the points ladder.
type Level struct {
	Level            int   `json:"level"`
	PointsIntoLevel  int64 `json:"points_into_level"`
	PointsToNext     int64 `json:"points_to_next"`
	ProgressPercent  int   `json:"progress_percent"`
	LevelRequirement int64 `json:"level_requirement"`
}

// LevelRequirement returns the number of points needed to leave level n.
func LevelRequirement(n int) int64 {
	if n < 1 {
		n = 1
	}
	return firstLevelRequirement + levelRequirementStep*int64(n-1)
}

// LevelFor maps a point total onto the ladder. Level 1 spans 100 points and
// each later level spans 50 more than the one before. Negative and
// non-finite totals are treated as 0 and fractional totals are floored.
func LevelFor(totalPoints float64) Level {
	var points int64
	switch {
	case math.IsNaN(totalPoints), math.IsInf(totalPoints, 0), totalPoints <= 0:
		points = 0
	case totalPoints >= maxLevelPoints:
		points = maxLevelPoints
	default:
		points = int64(math.Floor(totalPoints))
	}

	// Completed levels k satisfy 25k^2 + 75k <= points.
	completed := int((math.Sqrt(5625+100*float64(points)) - 75) / 50)
	for completed > 0 && pointsForLevels(completed) > points {
		completed--
	}
	for pointsForLevels(completed+1) <= points {
		completed++
	}

	level := completed + 1
	requirement := LevelRequirement(level)
	into := points - pointsForLevels(completed)

	return Level{
		Level:            level,
		PointsIntoLevel:  into,
		PointsToNext:     requirement - into,
		ProgressPercent:  int(into * 100 / requirement),
		LevelRequirement: requirement,
	}
}

// pointsForLevels is the total needed to complete the first k levels.
func pointsForLevels(k int) int64 {
	n := int64(k)
	return 25*n*n + 75*n
}
