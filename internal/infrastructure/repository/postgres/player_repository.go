package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rinksidehq/rinkside/internal/domain/player"
	qb "github.com/rinksidehq/rinkside/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]player.Player, error) {
	sqlQuery, args, err := qb.Select("*").From("player_master").
		Where(qb.ILike("name", "%"+query+"%")).
		OrderBy("name").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("player_master").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	return player.Player{ID: row.ID, Name: row.Name}, true, nil
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	query, args, err := qb.Select("*").From("player_master").
		Where(qb.In("id", values)).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func (r *PlayerRepository) ListAttributes(ctx context.Context, playerID int64) ([]player.SeasonAttributes, error) {
	query, args, err := qb.Select("*").From("player_attributes_by_season").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("year").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player attributes query: %w", err)
	}

	return r.selectAttributes(ctx, query, args)
}

func (r *PlayerRepository) ListRoster(ctx context.Context, teamCode string, year int) ([]player.SeasonAttributes, error) {
	query, args, err := qb.Select("*").From("player_attributes_by_season").
		Where(
			qb.Expr("UPPER(team_code) = UPPER(?)", teamCode),
			qb.Eq("year", year),
		).
		OrderBy("overall DESC", "player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster query: %w", err)
	}

	return r.selectAttributes(ctx, query, args)
}

func (r *PlayerRepository) ListFuture(ctx context.Context, playerIDs []int64, afterYear int) ([]player.SeasonAttributes, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("player_attributes_by_season").
		Where(
			qb.In("player_id", ids),
			qb.Expr("year > ?", afterYear),
		).
		OrderBy("player_id", "year").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select future attributes query: %w", err)
	}

	return r.selectAttributes(ctx, query, args)
}

func (r *PlayerRepository) selectAttributes(ctx context.Context, query string, args []any) ([]player.SeasonAttributes, error) {
	var rows []playerAttributesTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player attributes: %w", err)
	}

	out := make([]player.SeasonAttributes, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.SeasonAttributes{
			PlayerID:   row.PlayerID,
			Year:       row.Year,
			TeamCode:   nullStringToString(row.TeamCode),
			Position:   nullStringToString(row.Position),
			Handedness: nullStringToString(row.Handedness),
			Ratings: player.Ratings{
				Speed:        row.Speed,
				Agility:      row.Agility,
				Shooting:     row.Shooting,
				Accuracy:     row.Accuracy,
				Passing:      row.Passing,
				Puckhandling: row.Puckhandling,
				Checking:     row.Checking,
				Defense:      row.Defense,
				Faceoffs:     row.Faceoffs,
				Endurance:    row.Endurance,
				Discipline:   row.Discipline,
				Poise:        row.Poise,
				Strength:     row.Strength,
				Goaltending:  row.Goaltending,
			},
			Overall: row.Overall,
			Stars:   row.Stars,
		})
	}
	return out, nil
}
