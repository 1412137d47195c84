package standing

import "testing"

func TestPointsPct(t *testing.T) {
	t.Parallel()

	s := Standing{GamesPlayed: 20, Points: 26}
	pct, ok := s.PointsPct()
	if !ok {
		t.Fatal("expected a percentage for a team with games played")
	}
	if pct != 0.65 {
		t.Fatalf("PointsPct = %v, want 0.65", pct)
	}
}

func TestPointsPct_NoGames(t *testing.T) {
	t.Parallel()

	s := Standing{Points: 4}
	if _, ok := s.PointsPct(); ok {
		t.Fatal("expected no percentage for a team with zero games")
	}
}

func TestGoalDifferential_IgnoresStoredValue(t *testing.T) {
	t.Parallel()

	s := Standing{GoalsFor: 70, GoalsAgainst: 58}
	if got := s.GoalDifferential(); got != 12 {
		t.Fatalf("GoalDifferential = %d, want 12", got)
	}
}
