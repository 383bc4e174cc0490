// Package service contains template management and intro rendering
package service

import (
	"context"
	"strings"
	"text/template"
	"time"

	"matchmaker/internal/modkit/repokit"
	perr "matchmaker/internal/platform/errors"
	"matchmaker/internal/services/templates/domain"
	"matchmaker/internal/services/templates/repo"
	users "matchmaker/internal/services/users/domain"
)

// Service is the templates service contract
type Service interface{ domain.ServicePort }

// Svc implements Service over a bound repo
type Svc struct {
	Repo repo.Repo
	db   repokit.TxRunner
	now  func() time.Time
}

// New creates a templates service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("templates.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("templates.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), db: db, now: time.Now}
}

// Create registers a new template version. Version 0 means next version of key
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Template, error) {
	if err := checkSyntax(in.Content); err != nil {
		return domain.Template{}, err
	}

	t := domain.Template{
		Key:      in.Key,
		Version:  in.Version,
		Locale:   in.Locale,
		Content:  in.Content,
		IsActive: true,
	}
	if t.Locale == "" {
		t.Locale = "ko"
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if t.Version <= 0 {
		max, err := s.Repo.MaxVersion(ctx, t.Key)
		if err != nil {
			return domain.Template{}, err
		}
		t.Version = max + 1
	}
	return s.Repo.Insert(ctx, t)
}

// Get returns one template version
func (s *Svc) Get(ctx context.Context, key string, version int) (domain.Template, error) {
	return s.Repo.Get(ctx, key, version)
}

// List returns templates ordered by key then version
func (s *Svc) List(ctx context.Context, activeOnly bool) ([]domain.Template, error) {
	return s.Repo.List(ctx, activeOnly)
}

// Update patches a template version in place
func (s *Svc) Update(ctx context.Context, key string, version int, in domain.UpdateInput) (domain.Template, error) {
	t, err := s.Repo.Get(ctx, key, version)
	if err != nil {
		return domain.Template{}, err
	}
	if in.Locale != nil {
		t.Locale = *in.Locale
	}
	if in.Content != nil {
		if err := checkSyntax(*in.Content); err != nil {
			return domain.Template{}, err
		}
		t.Content = *in.Content
	}
	if in.IsActive != nil {
		t.IsActive = *in.IsActive
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return domain.Template{}, err
	}
	return s.Repo.Get(ctx, key, version)
}

// RenderIntro renders key/version for the pair. version <= 0 picks the latest
// active version
func (s *Svc) RenderIntro(ctx context.Context, key string, version int, requester, candidate users.Profile) (domain.Rendered, error) {
	var (
		t   domain.Template
		err error
	)
	if version > 0 {
		t, err = s.Repo.Get(ctx, key, version)
	} else {
		t, err = s.Repo.LatestActive(ctx, key)
	}
	if err != nil {
		return domain.Rendered{}, err
	}
	if !t.IsActive {
		return domain.Rendered{}, perr.InvalidArgf("template %s v%d is inactive", t.Key, t.Version)
	}

	msg, err := render(t.Content, s.introParams(requester, candidate))
	if err != nil {
		return domain.Rendered{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "render template %s v%d", t.Key, t.Version)
	}
	return domain.Rendered{Key: t.Key, Version: t.Version, Message: msg}, nil
}

// introParams builds the placeholder map both sides of the intro can reference
func (s *Svc) introParams(requester, candidate users.Profile) map[string]any {
	year := s.now().Year()
	return map[string]any{
		"requester_nick":   requester.Nickname,
		"candidate_nick":   candidate.Nickname,
		"requester_age":    year - requester.BirthYear,
		"candidate_age":    year - candidate.BirthYear,
		"requester_height": requester.Height,
		"candidate_height": candidate.Height,
		"requester_region": requester.Residence,
		"candidate_region": candidate.Residence,
		"requester_job":    requester.JobTitle,
		"candidate_job":    candidate.JobTitle,
	}
}

func checkSyntax(content string) error {
	if _, err := template.New("t").Option("missingkey=error").Parse(content); err != nil {
		return perr.InvalidArgf("template syntax: %v", err)
	}
	return nil
}

func render(content string, params map[string]any) (string, error) {
	t, err := template.New("t").Option("missingkey=error").Parse(content)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := t.Execute(&b, params); err != nil {
		return "", err
	}
	return b.String(), nil
}
