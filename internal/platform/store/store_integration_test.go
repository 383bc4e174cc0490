//go:build integration_pg
// +build integration_pg

package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/platform/logger"
	"matchmaker/internal/platform/store"
	"matchmaker/internal/platform/testkit"
	"matchmaker/internal/services/users/domain"
	usersrepo "matchmaker/internal/services/users/repo"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func seedProfile(nick, kakao, phone string) domain.Profile {
	return domain.Profile{
		Nickname:               nick,
		PrivacyConsent:         true,
		ConfidentialityConsent: true,
		RealName:               "테스트",
		KakaoID:                kakao,
		PhoneNumber:            phone,
		BirthYear:              1990,
		Height:                 170,
		Residence:              "서울",
		EducationLevel:         domain.EducationUniversity,
		FinalEducation:         "테스트대학교",
		JobTitle:               "개발자",
		Employer:               "한빛소프트",
		EmployerAddress:        "서울 구로구",
		Religion:               domain.ReligionNone,
		SmokingStatus:          domain.SmokingNonSmoker,
		CollisionPolicy:        domain.CollisionAllow,
		PreferredSmoking:       []domain.Smoking{domain.SmokingNonSmoker},
		IsActive:               true,
	}
}

func TestStoreMigrateAndUsersRoundtrip_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "matchmaker-it",
		PG: store.PGConfig{
			Enabled:  true,
			URL:      dsn,
			MaxConns: 2,
			Migrate:  true,
		},
	}, *logger.Get())
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(ctx) }()

	if err := st.Guard(ctx); err != nil {
		t.Fatalf("guard: %v", err)
	}

	repo := usersrepo.NewPG().Bind(st.PG)

	inserted, err := repo.Insert(ctx, seedProfile("민지", "minji_k", "010-1234-5678"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if inserted.ID == 0 || inserted.CreatedAt.IsZero() {
		t.Fatalf("insert returned no identity: %+v", inserted)
	}

	got, err := repo.GetByID(ctx, inserted.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Nickname != "민지" || got.SmokingStatus != domain.SmokingNonSmoker {
		t.Fatalf("roundtrip mangled profile: %+v", got)
	}
	if len(got.PreferredSmoking) != 1 || got.PreferredSmoking[0] != domain.SmokingNonSmoker {
		t.Fatalf("preference set mangled: %+v", got.PreferredSmoking)
	}

	// unique kakao id maps to a duplicate-key project error
	_, err = repo.Insert(ctx, seedProfile("다른", "minji_k", "010-9999-9999"))
	testkit.MustErr(t, err)
	if !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("want duplicate key, got %v", err)
	}

	// rerunning the migration must be a no-op
	testkit.MustNoErr(t, store.Migrate(ctx, st.PG))

	pool, err := repo.CandidatePool(ctx, inserted.ID, 0, 100)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	if len(pool) != 0 {
		t.Fatalf("pool must exclude the only user, got %+v", pool)
	}
}
