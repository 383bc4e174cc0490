package domain

// PresentInput records a single presentation with a rendered intro
type PresentInput struct {
	CandidateID     int64  `json:"candidate_id" validate:"required,gt=0"`
	TemplateKey     string `json:"template_key" validate:"required,min=1"`
	TemplateVersion int    `json:"template_version" validate:"omitempty,gt=0"`
	PlanID          *int64 `json:"plan_id" validate:"omitempty,gt=0"`
}

// DecideInput resolves a pending presentation
type DecideInput struct {
	Outcome string `json:"outcome" validate:"required,oneof=accepted declined"`
}

// PlanCreateInput opens a new curated plan
type PlanCreateInput struct {
	CreatedBy string `json:"created_by" validate:"required,min=1,max=100"`
	Notes     string `json:"notes"`
}

// PresentPlanInput commits a fill into presentation rows
type PresentPlanInput struct {
	TemplateKey     string `json:"template_key" validate:"required,min=1"`
	TemplateVersion int    `json:"template_version" validate:"omitempty,gt=0"`
	PerUserLimit    int    `json:"per_user_limit" validate:"omitempty,gt=0"`
	CooldownDays    int    `json:"cooldown_days" validate:"omitempty,gte=0"`
}
