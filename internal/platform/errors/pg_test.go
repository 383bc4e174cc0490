package errors

import (
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pgErr(code string) error { return &pgconn.PgError{Code: code, Message: "pg"} }

func TestDBErrorCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"22001", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"57P03", ErrorCodeUnavailable},
		{"XX000", ErrorCodeDB},
	}
	for _, c := range cases {
		code, ok := DBErrorCode(pgErr(c.sqlstate))
		if !ok || code != c.want {
			t.Errorf("sqlstate %s: got (%d,%v) want %d", c.sqlstate, code, ok, c.want)
		}
	}

	if _, ok := DBErrorCode(stderrs.New("not pg")); ok {
		t.Fatal("foreign error must not classify")
	}
}

func TestFromPostgres(t *testing.T) {
	t.Parallel()

	if FromPostgres(nil, "x") != nil {
		t.Fatal("nil in, nil out")
	}

	err := FromPostgres(pgErr("23505"), "insert user")
	if CodeOf(err) != ErrorCodeDuplicateKey {
		t.Fatalf("wrong code: %d", CodeOf(err))
	}
	if !IsDuplicateKey(err) {
		t.Fatal("IsDuplicateKey must see through the wrap")
	}

	err = FromPostgres(stderrs.New("conn reset"), "query")
	if CodeOf(err) != ErrorCodeDB {
		t.Fatalf("unclassified must fall back to DB, got %d", CodeOf(err))
	}
}
