package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("team_code", "points").
		From("standings").
		Where(Eq("season_code", "W16"), IsNull("deleted_at")).
		OrderBy("season_rank").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team_code, points FROM standings WHERE season_code = $1 AND deleted_at IS NULL ORDER BY season_rank LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "W16" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_ExprAndIn(t *testing.T) {
	query, args, err := Select("*").
		From("games").
		Where(
			In("season_code", []any{"W15", "W16"}),
			Expr("(home_team = ? OR away_team = ?)", "AAA", "AAA"),
		).
		OrderBy("game_number DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM games WHERE season_code IN ($1, $2) AND (home_team = $3 OR away_team = $4) ORDER BY game_number DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAndILike(t *testing.T) {
	query, args, err := Select("p.player_id", "p.display_name").
		From("player_master p").
		Join("JOIN player_attributes_by_season a ON a.player_id = p.player_id").
		Where(ILike("p.display_name", "%gret%")).
		GroupBy("p.player_id", "p.display_name").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.player_id, p.display_name FROM player_master p JOIN player_attributes_by_season a ON a.player_id = p.player_id WHERE p.display_name ILIKE $1 GROUP BY p.player_id, p.display_name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "%gret%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInNeverMatches(t *testing.T) {
	query, args, err := Select("*").
		From("standings").
		Where(In("coach_name", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM standings WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
