package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rinksidehq/rinkside/internal/domain/game"
)

const streakLeaderboardSize = 3

// Streak is one team's run of consecutive results ending at its most recent
// game. Ties and overtime losses count against a team, so a tie extends a
// loss streak.
type Streak struct {
	TeamCode string
	Length   int
}

// StreakReport carries the top runs per category for one season.
type StreakReport struct {
	SeasonCode  string
	WinStreaks  []Streak
	LossStreaks []Streak
}

type StreakService struct {
	gameRepo game.Repository
}

func NewStreakService(gameRepo game.Repository) *StreakService {
	return &StreakService{gameRepo: gameRepo}
}

// BySeason computes current streaks from the season's regular-season games.
func (s *StreakService) BySeason(ctx context.Context, seasonCode string) (StreakReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StreakService.BySeason")
	defer span.End()

	seasonCode = strings.TrimSpace(seasonCode)
	if seasonCode == "" {
		return StreakReport{}, fmt.Errorf("%w: season code is required", ErrInvalidInput)
	}

	games, err := s.gameRepo.ListBySeason(ctx, seasonCode, game.ModeSeason)
	if err != nil {
		return StreakReport{}, fmt.Errorf("list games: %w", err)
	}

	wins, losses := computeStreaks(games)
	return StreakReport{
		SeasonCode:  seasonCode,
		WinStreaks:  wins,
		LossStreaks: losses,
	}, nil
}

type streakRun struct {
	teamCode string
	isWin    bool
	length   int
	broken   bool
}

// computeStreaks walks games most recent first. A team's first played game
// fixes its streak category; the run grows while later (older) games carry
// the same classification and stops at the first flip. Ranking is descending
// by length and stable, so equal-length streaks keep the order teams were
// first seen in the game list.
func computeStreaks(games []game.Game) (wins, losses []Streak) {
	runs := make(map[string]*streakRun)
	var order []string

	observe := func(teamCode, result string) {
		if teamCode == "" {
			return
		}
		key := strings.ToUpper(teamCode)
		run, ok := runs[key]
		if !ok {
			runs[key] = &streakRun{
				teamCode: teamCode,
				isWin:    game.IsWinResult(result),
				length:   1,
			}
			order = append(order, key)
			return
		}
		if run.broken {
			return
		}
		if game.IsWinResult(result) == run.isWin {
			run.length++
			return
		}
		run.broken = true
	}

	for _, g := range games {
		if !g.Played() {
			continue
		}
		observe(g.HomeTeam, g.HomeResult)
		observe(g.AwayTeam, g.AwayResult)
	}

	for _, key := range order {
		run := runs[key]
		item := Streak{TeamCode: run.teamCode, Length: run.length}
		if run.isWin {
			wins = append(wins, item)
		} else {
			losses = append(losses, item)
		}
	}

	sort.SliceStable(wins, func(i, j int) bool { return wins[i].Length > wins[j].Length })
	sort.SliceStable(losses, func(i, j int) bool { return losses[i].Length > losses[j].Length })

	if len(wins) > streakLeaderboardSize {
		wins = wins[:streakLeaderboardSize]
	}
	if len(losses) > streakLeaderboardSize {
		losses = losses[:streakLeaderboardSize]
	}
	return wins, losses
}
