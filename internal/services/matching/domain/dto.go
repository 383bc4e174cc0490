package domain

import users "matchmaker/internal/services/users/domain"

// SingleMatchInput selects a subject by id or nickname. Exactly one of the
// two must be set
type SingleMatchInput struct {
	UserID   *int64  `json:"user_id" validate:"omitempty,gt=0"`
	Nickname *string `json:"nickname" validate:"omitempty,min=1"`
}

// SingleMatchOut is the subject plus its ranked mutual candidates
type SingleMatchOut struct {
	Subject    users.Out   `json:"subject"`
	Candidates []users.Out `json:"candidates"`
}

// AssignmentOut is one bulk-match row
type AssignmentOut struct {
	Subject     users.Out  `json:"subject"`
	Recommended *users.Out `json:"recommended"`
}
