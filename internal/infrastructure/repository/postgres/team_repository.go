package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/rinksidehq/rinkside/internal/domain/team"
	qb "github.com/rinksidehq/rinkside/internal/platform/querybuilder"
)

// TeamRepository reads the deduplicated team view rather than the raw table,
// so a franchise that appeared in several seasons surfaces once per league.
type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, leagueCode string) ([]team.Team, error) {
	builder := qb.Select("*").From("unique_teams_vw").OrderBy("name")
	if strings.TrimSpace(leagueCode) != "" {
		builder = builder.Where(qb.Expr("UPPER(league_code) = UPPER(?)", leagueCode))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTeamRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByCode(ctx context.Context, code string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("unique_teams_vw").
		Where(qb.Expr("UPPER(code) = UPPER(?)", code)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by code query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by code: %w", err)
	}

	return mapTeamRow(row), true, nil
}

func mapTeamRow(row teamTableModel) team.Team {
	return team.Team{
		Code:       row.Code,
		Name:       row.Name,
		Arena:      nullStringToString(row.Arena),
		LeagueCode: nullStringToString(row.LeagueCode),
	}
}
