package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rinksidehq/rinkside/internal/domain/standing"
	qb "github.com/rinksidehq/rinkside/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ListBySeason(ctx context.Context, seasonCode string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(qb.Expr("UPPER(season_code) = UPPER(?)", seasonCode)).
		OrderBy("rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) ListByTeam(ctx context.Context, teamCode string) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		Where(qb.Expr("UPPER(team_code) = UPPER(?)", teamCode)).
		OrderBy("season_code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) ListAll(ctx context.Context) ([]standing.Standing, error) {
	query, args, err := qb.Select("*").From("standings").
		OrderBy("season_code", "rank").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select all standings query: %w", err)
	}

	return r.selectStandings(ctx, query, args)
}

func (r *StandingRepository) selectStandings(ctx context.Context, query string, args []any) ([]standing.Standing, error) {
	var rows []standingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standing.Standing, 0, len(rows))
	for _, row := range rows {
		out = append(out, standing.Standing{
			SeasonCode:   row.SeasonCode,
			TeamCode:     row.TeamCode,
			Coach:        row.Coach,
			GamesPlayed:  row.GamesPlayed,
			Wins:         row.Wins,
			Losses:       row.Losses,
			Ties:         row.Ties,
			OTLosses:     row.OTLosses,
			Points:       row.Points,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			Rank:         row.Rank,
			Division:     nullStringToString(row.Division),
		})
	}
	return out, nil
}
