package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rinksidehq/rinkside/internal/domain/manager"
	qb "github.com/rinksidehq/rinkside/internal/platform/querybuilder"
)

type ManagerRepository struct {
	db *sqlx.DB
}

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) List(ctx context.Context) ([]manager.Manager, error) {
	query, args, err := qb.Select("*").From("unique_managers_vw").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select managers query: %w", err)
	}

	var rows []managerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select managers: %w", err)
	}

	out := make([]manager.Manager, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapManagerRow(row))
	}
	return out, nil
}

func (r *ManagerRepository) GetByName(ctx context.Context, name string) (manager.Manager, bool, error) {
	query, args, err := qb.Select("*").From("unique_managers_vw").
		Where(qb.ILike("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return manager.Manager{}, false, fmt.Errorf("build get manager by name query: %w", err)
	}

	var row managerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return manager.Manager{}, false, nil
		}
		return manager.Manager{}, false, fmt.Errorf("get manager by name: %w", err)
	}

	return mapManagerRow(row), true, nil
}

func (r *ManagerRepository) ListChampionships(ctx context.Context, coach string) ([]manager.Championship, error) {
	query, args, err := qb.Select("*").From("championships").
		Where(qb.ILike("coach", coach)).
		OrderBy("label").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select championships query: %w", err)
	}

	var rows []championshipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select championships: %w", err)
	}

	out := make([]manager.Championship, 0, len(rows))
	for _, row := range rows {
		out = append(out, manager.Championship{
			Coach: row.Coach,
			Label: row.Label,
		})
	}
	return out, nil
}

func mapManagerRow(row managerTableModel) manager.Manager {
	return manager.Manager{
		Name:            row.Name,
		DiscordID:       nullStringToString(row.DiscordID),
		DiscordUsername: nullStringToString(row.DiscordUsername),
		TwitchUsername:  nullStringToString(row.TwitchUsername),
		YouTubeURL:      nullStringToString(row.YouTubeURL),
	}
}
