package services

// Cumulative points required to pass each level boundary.
var levelThresholds = []int{0, 100, 250, 500, 1000, 2000, 3500, 5500, 8000, 11000, 15000}

type LevelInfo struct {
	Level           int  `json:"level"`
	CurrentPoints   int  `json:"current_points"`
	PointsForLevel  int  `json:"points_for_level"`
	PointsToNext    int  `json:"points_to_next"`
	NextLevelPoints *int `json:"next_level_points"`
}

// CalculateLevel maps a lifetime point total onto the threshold table.
// A fresh account sits at level 0 and each crossed threshold bumps the
// level by one (100 points is level 1, 250 is level 2, and so on); at or
// past the last threshold the level caps at len(table) with no next level.
func CalculateLevel(totalPoints int) LevelInfo {
	if totalPoints < 0 {
		totalPoints = 0
	}

	last := levelThresholds[len(levelThresholds)-1]
	if totalPoints >= last {
		return LevelInfo{
			Level:           len(levelThresholds),
			CurrentPoints:   totalPoints,
			PointsForLevel:  last,
			PointsToNext:    0,
			NextLevelPoints: nil,
		}
	}

	level := 0
	for i := 1; i < len(levelThresholds); i++ {
		if totalPoints >= levelThresholds[i] {
			level = i
		}
	}
	next := levelThresholds[level+1]
	return LevelInfo{
		Level:           level,
		CurrentPoints:   totalPoints,
		PointsForLevel:  levelThresholds[level],
		PointsToNext:    next - totalPoints,
		NextLevelPoints: &next,
	}
}
