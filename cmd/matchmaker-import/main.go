// matchmaker-import ingests a CSV of user rows through the users service.
// Usage: matchmaker-import <file.csv>

package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"matchmaker/internal/platform/config"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/platform/logger"
	"matchmaker/internal/platform/net/http/bind"
	"matchmaker/internal/platform/store"

	"matchmaker/internal/services/users/domain"
	usersrepo "matchmaker/internal/services/users/repo"
	userssvc "matchmaker/internal/services/users/service"
)

func main() {
	root := config.New()
	l := logger.Named("import")

	if len(os.Args) < 2 {
		l.Fatal().Msg("usage: matchmaker-import <file.csv>")
	}
	path := os.Args[1]

	ctx := context.Background()
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "matchmaker-import"), *logger.Get())
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() { _ = st.Close(ctx) }()

	svc := userssvc.New(st.PG, usersrepo.NewPG())

	f, err := os.Open(path)
	if err != nil {
		l.Fatal().Err(err).Str("path", path).Msg("open input")
	}
	defer func() { _ = f.Close() }()

	runID := uuid.NewString()
	l.Info().Str("run_id", runID).Str("path", path).Msg("import started")

	created, updated, failed := run(ctx, svc, f, l)

	l.Info().
		Str("run_id", runID).
		Int("created", created).
		Int("updated", updated).
		Int("failed", failed).
		Msg("import finished")
	if failed > 0 {
		os.Exit(1)
	}
}

func run(ctx context.Context, svc userssvc.Service, src io.Reader, l *logger.Logger) (created, updated, failed int) {
	r := csv.NewReader(src)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		l.Fatal().Err(err).Msg("read header")
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			return created, updated, failed
		}
		line++
		if err != nil {
			l.Error().Err(err).Int("line", line).Msg("malformed row")
			failed++
			continue
		}

		in, err := rowToInput(idx, record)
		if err == nil {
			err = bind.Get().Validator.Struct(in)
			if err != nil {
				field, msg := bind.FirstViolation(err)
				err = perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
			}
		}
		if err != nil {
			l.Error().Err(err).Int("line", line).Msg("invalid row")
			failed++
			continue
		}

		switch _, err := svc.Create(ctx, in); {
		case err == nil:
			created++
		case perr.IsCode(err, perr.ErrorCodeDuplicateKey):
			if uerr := upsert(ctx, svc, in); uerr != nil {
				l.Error().Err(uerr).Int("line", line).Str("nickname", in.Nickname).Msg("update failed")
				failed++
				continue
			}
			updated++
		default:
			l.Error().Err(err).Int("line", line).Str("nickname", in.Nickname).Msg("create failed")
			failed++
		}
	}
}

// upsert refreshes the mutable fields of an already-registered user.
// Contact identifiers stay as stored
func upsert(ctx context.Context, svc userssvc.Service, in domain.CreateInput) error {
	existing, err := svc.GetByNickname(ctx, in.Nickname)
	if err != nil {
		return err
	}
	_, err = svc.Update(ctx, existing.ID, domain.UpdateInput{
		ReferrerInfo:        &in.ReferrerInfo,
		Residence:           &in.Residence,
		EducationLevel:      &in.EducationLevel,
		FinalEducation:      &in.FinalEducation,
		JobTitle:            &in.JobTitle,
		Employer:            &in.Employer,
		EmployerAddress:     &in.EmployerAddress,
		Religion:            &in.Religion,
		SmokingStatus:       &in.SmokingStatus,
		MBTI:                &in.MBTI,
		Hobbies:             &in.Hobbies,
		AdditionalInfo:      &in.AdditionalInfo,
		PreferredAgeMin:     in.PreferredAgeMin,
		PreferredAgeMax:     in.PreferredAgeMax,
		CollisionPolicy:     &in.CollisionPolicy,
		PreferredSmoking:    &in.PreferredSmoking,
		PreferredReligion:   &in.PreferredReligion,
		AdditionalCondition: &in.AdditionalCondition,
	})
	return err
}

func rowToInput(idx map[string]int, record []string) (domain.CreateInput, error) {
	get := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	in := domain.CreateInput{
		Nickname:               get("nickname"),
		ReferrerInfo:           get("referrer_info"),
		PrivacyConsent:         parseBool(get("privacy_consent")),
		ConfidentialityConsent: parseBool(get("confidentiality_consent")),
		RealName:               get("real_name"),
		KakaoID:                get("kakao_id"),
		PhoneNumber:            get("phone_number"),
		Residence:              get("residence"),
		EducationLevel:         get("education_level"),
		FinalEducation:         get("final_education"),
		JobTitle:               get("job_title"),
		Employer:               get("employer"),
		EmployerAddress:        get("employer_address"),
		Religion:               get("religion"),
		SmokingStatus:          get("smoking_status"),
		MBTI:                   get("mbti"),
		Hobbies:                get("hobbies"),
		AdditionalInfo:         get("additional_info"),
		CollisionPolicy:        get("employer_collision_policy"),
		PreferredSmoking:       splitSet(get("preferred_smoking")),
		PreferredReligion:      splitSet(get("preferred_religion")),
		AdditionalCondition:    get("additional_matching_condition"),
	}

	var err error
	if in.BirthYear, err = atoi(get("birth_year"), "birth_year"); err != nil {
		return domain.CreateInput{}, err
	}
	if in.Height, err = atoi(get("height"), "height"); err != nil {
		return domain.CreateInput{}, err
	}
	if in.PreferredAgeMin, err = atoiOpt(get("preferred_age_min"), "preferred_age_min"); err != nil {
		return domain.CreateInput{}, err
	}
	if in.PreferredAgeMax, err = atoiOpt(get("preferred_age_max"), "preferred_age_max"); err != nil {
		return domain.CreateInput{}, err
	}
	return in, nil
}

func atoi(s, field string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, perr.WithField(perr.InvalidArgf("not a number: %q", s), field)
	}
	return v, nil
}

func atoiOpt(s, field string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := atoi(s, field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "t", "1", "y", "yes":
		return true
	}
	return false
}

// preference set cells hold comma or slash separated vocabulary values
func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "/", ",")
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
