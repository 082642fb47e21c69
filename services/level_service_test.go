package services

import "testing"

func TestCalculateLevel_Boundaries(t *testing.T) {
	cases := []struct {
		points         int
		wantLevel      int
		wantForLevel   int
		wantToNext     int
		wantNextPoints int // -1 means nil
	}{
		{0, 0, 0, 100, 100},
		{99, 0, 0, 1, 100},
		{100, 1, 100, 150, 250},
		{249, 1, 100, 1, 250},
		{250, 2, 250, 250, 500},
		{1000, 4, 1000, 1000, 2000},
		{14999, 9, 11000, 1, 15000},
		{15000, 11, 15000, 0, -1},
		{999999, 11, 15000, 0, -1},
	}
	for _, tc := range cases {
		got := CalculateLevel(tc.points)
		if got.Level != tc.wantLevel {
			t.Fatalf("points=%d: level %d, want %d", tc.points, got.Level, tc.wantLevel)
		}
		if got.CurrentPoints != tc.points {
			t.Fatalf("points=%d: current_points %d", tc.points, got.CurrentPoints)
		}
		if got.PointsForLevel != tc.wantForLevel {
			t.Fatalf("points=%d: points_for_level %d, want %d", tc.points, got.PointsForLevel, tc.wantForLevel)
		}
		if got.PointsToNext != tc.wantToNext {
			t.Fatalf("points=%d: points_to_next %d, want %d", tc.points, got.PointsToNext, tc.wantToNext)
		}
		if tc.wantNextPoints == -1 {
			if got.NextLevelPoints != nil {
				t.Fatalf("points=%d: next_level_points = %d, want nil", tc.points, *got.NextLevelPoints)
			}
		} else {
			if got.NextLevelPoints == nil || *got.NextLevelPoints != tc.wantNextPoints {
				t.Fatalf("points=%d: next_level_points = %v, want %d", tc.points, got.NextLevelPoints, tc.wantNextPoints)
			}
		}
	}
}

func TestCalculateLevel_NegativeTotalTreatedAsZero(t *testing.T) {
	got := CalculateLevel(-40)
	if got.Level != 0 || got.CurrentPoints != 0 || got.PointsToNext != 100 {
		t.Fatalf("negative total: got %+v", got)
	}
}
