package domain

import (
	"fmt"
	"strings"
)

// Job is a posting owned by exactly one user.
type Job struct {
	ID           int64  `json:"id" bson:"_id"`
	Title        string `json:"title" bson:"title"`
	Description  string `json:"description" bson:"description"`
	Requirements string `json:"requirements" bson:"requirements"`
	OwnerID      int64  `json:"user_id" bson:"user_id"`
}

// OwnedBy reports whether userID may delete the job.
func (j *Job) OwnedBy(userID int64) bool {
	return j.OwnerID == userID
}

// Validate checks the owner and the required text fields.
func (j *Job) Validate() error {
	if j.OwnerID <= 0 {
		return fmt.Errorf("%w: owner is required", ErrValidation)
	}
	return requireFields(
		field{"title", j.Title},
		field{"description", j.Description},
		field{"requirements", j.Requirements},
	)
}

type field struct {
	name  string
	value string
}

// requireFields returns ErrValidation naming the first blank field.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, f.name)
		}
	}
	return nil
}
