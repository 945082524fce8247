package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "status").
		From("records").
		Where(Eq("category_id", "cat-1"), EqLiteral("status", "approved")).
		OrderBy("created_at ASC").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, status FROM records WHERE category_id = $1 AND status = 'approved' ORDER BY created_at ASC LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "cat-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_In(t *testing.T) {
	query, args, err := Select("*").
		From("profiles").
		Where(In("public_id", []any{"u1", "u2"})).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM profiles WHERE public_id IN ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "u2" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("*").
		From("profiles").
		Where(In("public_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM profiles WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("gamemodes").
		Columns("public_id", "name").
		Values("gm-1", "SkyWars").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO gamemodes (public_id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "gm-1" || args[1] != "SkyWars" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	model := struct {
		PublicID string `db:"public_id"`
		Name     string `db:"name"`
		internal string `db:"skipped"`
		NoTag    string
	}{PublicID: "gm-1", Name: "SkyWars"}

	query, args, err := InsertModel("gamemodes", model, "")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO gamemodes (public_id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_StatusGuard(t *testing.T) {
	query, args, err := Update("records").
		Set("status", "approved").
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "rec-1"), EqLiteral("status", "pending")).
		Suffix("RETURNING public_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE records SET status = $1, updated_at = NOW() WHERE public_id = $2 AND status = 'pending' RETURNING public_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "approved" || args[1] != "rec-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
