package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rinksidehq/rinkside/internal/domain/game"
	qb "github.com/rinksidehq/rinkside/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListBySeason(ctx context.Context, seasonCode string, mode game.Mode) ([]game.Game, error) {
	conditions := []qb.Condition{qb.Expr("UPPER(season_code) = UPPER(?)", seasonCode)}
	if mode != "" {
		conditions = append(conditions, qb.Expr("LOWER(mode) = LOWER(?)", string(mode)))
	}

	query, args, err := qb.Select("*").From("games").
		Where(conditions...).
		OrderBy("game_number DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) ListBetweenTeams(ctx context.Context, seasonCode, teamA, teamB string) ([]game.Game, error) {
	query, args, err := qb.Select("*").From("games").
		Where(
			qb.Expr("UPPER(season_code) = UPPER(?)", seasonCode),
			qb.Expr(
				"((UPPER(home_team) = UPPER(?) AND UPPER(away_team) = UPPER(?)) OR (UPPER(home_team) = UPPER(?) AND UPPER(away_team) = UPPER(?)))",
				teamA, teamB, teamB, teamA,
			),
		).
		OrderBy("game_number DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games between teams query: %w", err)
	}

	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) ListRecent(ctx context.Context, seasonCodes []string, limit int) ([]game.Game, error) {
	if len(seasonCodes) == 0 {
		return nil, nil
	}

	codes := make([]any, 0, len(seasonCodes))
	for _, code := range seasonCodes {
		codes = append(codes, code)
	}

	query, args, err := qb.Select("*").From("games").
		Where(
			qb.In("season_code", codes),
			qb.Expr("home_score IS NOT NULL AND away_score IS NOT NULL"),
		).
		OrderBy("season_code", "game_number DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent games query: %w", err)
	}

	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) selectGames(ctx context.Context, query string, args []any) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, game.Game{
			SeasonCode: row.SeasonCode,
			GameNumber: row.GameNumber,
			HomeTeam:   row.HomeTeam,
			AwayTeam:   row.AwayTeam,
			HomeScore:  nullInt64ToIntPtr(row.HomeScore),
			AwayScore:  nullInt64ToIntPtr(row.AwayScore),
			HomeResult: nullStringToString(row.HomeResult),
			AwayResult: nullStringToString(row.AwayResult),
			Overtime:   row.Overtime,
			Mode:       game.Mode(row.Mode),
		})
	}
	return out, nil
}
