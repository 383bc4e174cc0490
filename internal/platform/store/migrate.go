package store

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed schema.sql
var schemaSQL string

// Migrate applies the embedded schema statement by statement.
// Every statement is idempotent so re-running on boot is safe
func Migrate(ctx context.Context, q RowQuerier) error {
	for _, stmt := range splitStatements(schemaSQL) {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply %q: %w", head(stmt), err)
		}
	}
	return nil
}

// splitStatements breaks the schema on semicolons after dropping comment
// lines. Good enough for DDL without functions or literals containing ';'
func splitStatements(sql string) []string {
	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	var out []string
	for _, part := range strings.Split(strings.Join(kept, "\n"), ";") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func head(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i > 0 {
		return stmt[:i]
	}
	if len(stmt) > 60 {
		return stmt[:60]
	}
	return stmt
}
