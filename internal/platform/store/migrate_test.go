package store

import (
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	t.Parallel()

	sql := `
-- leading comment
CREATE TABLE IF NOT EXISTS a (
    id BIGSERIAL PRIMARY KEY
);

-- another comment
CREATE INDEX IF NOT EXISTS ix_a ON a (id);
`
	stmts := splitStatements(sql)
	if len(stmts) != 2 {
		t.Fatalf("want 2 statements, got %d: %q", len(stmts), stmts)
	}
	if !strings.HasPrefix(stmts[0], "CREATE TABLE") {
		t.Fatalf("comment swallowed the first statement: %q", stmts[0])
	}
	if !strings.HasPrefix(stmts[1], "CREATE INDEX") {
		t.Fatalf("bad second statement: %q", stmts[1])
	}
}

func TestEmbeddedSchemaSplits(t *testing.T) {
	t.Parallel()

	stmts := splitStatements(schemaSQL)
	if len(stmts) == 0 {
		t.Fatal("embedded schema produced no statements")
	}
	for _, s := range stmts {
		if strings.HasPrefix(strings.TrimSpace(s), "--") {
			t.Fatalf("comment leaked into statements: %q", s)
		}
		if !strings.Contains(s, "IF NOT EXISTS") && !strings.Contains(s, "CONSTRAINT") {
			t.Fatalf("non-idempotent statement in bootstrap schema: %q", s)
		}
	}
}
