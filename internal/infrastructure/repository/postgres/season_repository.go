package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rinksidehq/rinkside/internal/domain/season"
	qb "github.com/rinksidehq/rinkside/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").
		OrderBy("year DESC", "code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapSeasonRow(row))
	}
	return out, nil
}

func (r *SeasonRepository) GetByCode(ctx context.Context, code string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Expr("UPPER(code) = UPPER(?)", code)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by code query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by code: %w", err)
	}

	return mapSeasonRow(row), true, nil
}

func (r *SeasonRepository) ListDivisionMap(ctx context.Context, seasonCode string) ([]season.DivisionMapping, error) {
	query, args, err := qb.Select("*").From("historical_division_map").
		Where(qb.Expr("UPPER(season_code) = UPPER(?)", seasonCode)).
		OrderBy("division", "team_code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select division map query: %w", err)
	}

	var rows []divisionMapTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select division map: %w", err)
	}

	out := make([]season.DivisionMapping, 0, len(rows))
	for _, row := range rows {
		out = append(out, season.DivisionMapping{
			SeasonCode: row.SeasonCode,
			TeamCode:   row.TeamCode,
			Division:   row.Division,
		})
	}
	return out, nil
}

func mapSeasonRow(row seasonTableModel) season.Season {
	return season.Season{
		Code:         row.Code,
		Year:         row.Year,
		EndDate:      row.EndDate,
		PlayoffTeams: row.PlayoffTeams,
	}
}
