package service

import (
	"context"
	"testing"

	"matchmaker/internal/modkit/repokit"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/services/users/domain"
	"matchmaker/internal/services/users/repo"
)

// stubDB satisfies repokit.TxRunner; nothing in these tests touches SQL
type stubDB struct{}

func (stubDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (stubDB) Query(context.Context, string, ...any) (repokit.Rows, error)     { return nil, nil }
func (stubDB) QueryRow(context.Context, string, ...any) repokit.Row            { return nil }
func (stubDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error {
	return fn(stubDB{})
}

type fakeRepo struct {
	repo.Repo

	profiles map[int64]domain.Profile
	kakao    map[string]bool
	phones   map[string]bool
	inserted *domain.Profile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles: map[int64]domain.Profile{},
		kakao:    map[string]bool{},
		phones:   map[string]bool{},
	}
}

func (f *fakeRepo) Insert(_ context.Context, p domain.Profile) (domain.Profile, error) {
	p.ID = int64(len(f.profiles) + 1)
	f.profiles[p.ID] = p
	f.inserted = &p
	return p, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return domain.Profile{}, perr.NotFoundf("user %d", id)
	}
	return p, nil
}

func (f *fakeRepo) ExistsKakaoID(_ context.Context, k string) (bool, error) { return f.kakao[k], nil }
func (f *fakeRepo) ExistsPhone(_ context.Context, p string) (bool, error)  { return f.phones[p], nil }

func (f *fakeRepo) Update(_ context.Context, p domain.Profile) error {
	if _, ok := f.profiles[p.ID]; !ok {
		return perr.NotFoundf("user %d", p.ID)
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeRepo) Deactivate(_ context.Context, id int64) (bool, error) {
	p, ok := f.profiles[id]
	if !ok {
		return false, nil
	}
	p.IsActive = false
	f.profiles[id] = p
	return true, nil
}

func newSvc(f *fakeRepo) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
	return New(stubDB{}, binder)
}

func validCreate() domain.CreateInput {
	return domain.CreateInput{
		Nickname:               "민지",
		PrivacyConsent:         true,
		ConfidentialityConsent: true,
		RealName:               "김민지",
		KakaoID:                "minji_k",
		PhoneNumber:            "010-1234-5678",
		BirthYear:              1992,
		Height:                 165,
		Residence:              "서울 마포구",
		EducationLevel:         "대학교",
		FinalEducation:         "한국대학교 경영학과",
		JobTitle:               "마케터",
		Employer:               "한빛소프트",
		EmployerAddress:        "서울 구로구",
		Religion:               "무교",
		SmokingStatus:          "비흡연",
		CollisionPolicy:        "같은 직장 가능",
		PreferredSmoking:       []string{"비흡연"},
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	f := newFakeRepo()
	svc := newSvc(f)

	p, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == 0 || !p.IsActive {
		t.Fatalf("bad inserted profile: %+v", p)
	}
	if p.SmokingStatus != domain.SmokingNonSmoker || p.CollisionPolicy != domain.CollisionAllow {
		t.Fatalf("vocabulary fields not parsed: %+v", p)
	}
}

func TestCreateRejectsOutOfVocabulary(t *testing.T) {
	t.Parallel()

	svc := newSvc(newFakeRepo())

	in := validCreate()
	in.SmokingStatus = "자주"
	if _, err := svc.Create(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}

	in = validCreate()
	in.PreferredSmoking = nil
	if _, err := svc.Create(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("empty preferred smoking must be rejected, got %v", err)
	}
}

func TestCreateDuplicateContacts(t *testing.T) {
	t.Parallel()

	f := newFakeRepo()
	f.kakao["minji_k"] = true
	svc := newSvc(f)

	if _, err := svc.Create(context.Background(), validCreate()); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate kakao id must conflict, got %v", err)
	}

	f = newFakeRepo()
	f.phones["010-1234-5678"] = true
	svc = newSvc(f)
	if _, err := svc.Create(context.Background(), validCreate()); !perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		t.Fatalf("duplicate phone must conflict, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	t.Parallel()

	f := newFakeRepo()
	svc := newSvc(f)
	p, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	newJob := "기획자"
	badSmoking := "자주"
	if _, err := svc.Update(context.Background(), p.ID, domain.UpdateInput{SmokingStatus: &badSmoking}); err == nil {
		t.Fatal("out-of-vocabulary patch accepted")
	}

	got, err := svc.Update(context.Background(), p.ID, domain.UpdateInput{JobTitle: &newJob})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.JobTitle != "기획자" || got.Nickname != "민지" {
		t.Fatalf("patch mangled profile: %+v", got)
	}
}

func TestDeactivate(t *testing.T) {
	t.Parallel()

	f := newFakeRepo()
	svc := newSvc(f)
	p, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.Deactivate(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Deactivate(context.Background(), 999); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestSearchValidatesFilters(t *testing.T) {
	t.Parallel()

	svc := newSvc(newFakeRepo())
	if _, err := svc.Search(context.Background(), domain.SearchInput{Religion: "힌두교"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
}
