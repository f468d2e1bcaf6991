package domain

// Application is a submission against a job. Submissions carry no owner.
type Application struct {
	ID              int64  `json:"id" bson:"_id"`
	JobID           int64  `json:"job_id" bson:"job_id"`
	ApplicantName   string `json:"applicant_name" bson:"applicant_name"`
	ApplicantEmail  string `json:"applicant_email" bson:"applicant_email"`
	ApplicantResume string `json:"applicant_resume" bson:"applicant_resume"`
}

// Validate checks the required applicant fields.
func (a *Application) Validate() error {
	return requireFields(
		field{"name", a.ApplicantName},
		field{"email", a.ApplicantEmail},
		field{"resume", a.ApplicantResume},
	)
}
