package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/api/metrics"
	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

const (
	flashJobPosted       = "Job posted successfully!"
	flashNoJobs          = "No jobs available at the moment."
	flashApplicationSent = "Application submitted successfully!"
	flashJobNotFound     = "Job not found."
	flashDeleteForbidden = "You do not have permission to delete this job."
	flashJobDeleted      = "Job deleted successfully!"
	flashDeleteFailed    = "An error occurred while deleting the job."
)

type JobHandler struct {
	jobService         ports.JobService
	applicationService ports.ApplicationService
	logger             zerolog.Logger
}

func NewJobHandler(jobService ports.JobService, applicationService ports.ApplicationService, logger zerolog.Logger) *JobHandler {
	return &JobHandler{jobService: jobService, applicationService: applicationService, logger: logger}
}

// Dashboard lists the jobs owned by the current user.
//
// @Summary  Owner dashboard
// @Tags     jobs
// @Produce  html
// @Success  200
// @Success  303  "Redirect to /login when not authenticated"
// @Router   /dashboard [get]
func (h *JobHandler) Dashboard(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobService.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return render(c, "dashboard", viewData{"Username": sess.Username, "Jobs": jobs})
}

// PostJobPage renders the job form.
//
// @Summary  Job posting form
// @Tags     jobs
// @Produce  html
// @Success  200
// @Router   /post_job [get]
func (h *JobHandler) PostJobPage(c echo.Context) error {
	return render(c, "post_job", nil)
}

// PostJob creates a job owned by the current user.
//
// @Summary  Post a job
// @Tags     jobs
// @Accept   x-www-form-urlencoded
// @Param    title         formData  string  true  "Title"
// @Param    description   formData  string  true  "Description"
// @Param    requirements  formData  string  true  "Requirements"
// @Success  303  "Redirect to / on success, back to /post_job otherwise"
// @Router   /post_job [post]
func (h *JobHandler) PostJob(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form postJobForm
	if err := c.Bind(&form); err != nil {
		metrics.JobsCreatedTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, flashInvalidForm, "/post_job")
	}
	if err := c.Validate(&form); err != nil {
		metrics.JobsCreatedTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, validationMessage(err), "/post_job")
	}

	_, err = h.jobService.Create(c.Request().Context(), ports.CreateJobInput{
		Title:        form.Title,
		Description:  form.Description,
		Requirements: form.Requirements,
		OwnerID:      userID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			metrics.JobsCreatedTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
			return flashRedirect(c, sess, validationMessage(err), "/post_job")
		}
		metrics.JobsCreatedTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}
	metrics.JobsCreatedTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return flashRedirect(c, sess, flashJobPosted, "/")
}

// TryNewJob redirects to a random job.
//
// @Summary  Random job
// @Tags     jobs
// @Success  303  "Redirect to /job/{id}, or to / when there are no jobs"
// @Router   /try_new_job [get]
func (h *JobHandler) TryNewJob(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := h.jobService.RandomJobID(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return flashRedirect(c, sess, flashNoJobs, "/")
		}
		return err
	}
	return redirect(c, "/job/"+strconv.FormatInt(id, 10))
}

// JobDetail renders one job with the application form.
//
// @Summary  Job detail
// @Tags     jobs
// @Produce  html
// @Param    id  path  int  true  "Job ID"
// @Success  200
// @Success  303  "Redirect to /jobs when the job does not exist"
// @Router   /job/{id} [get]
func (h *JobHandler) JobDetail(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, ok := pathID(c)
	if !ok {
		return flashRedirect(c, sess, flashJobNotFound, "/jobs")
	}

	job, err := h.jobService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return flashRedirect(c, sess, flashJobNotFound, "/jobs")
		}
		return err
	}
	return render(c, "job_detail", viewData{"Job": job})
}

// Apply submits an application for a job.
//
// @Summary  Apply to a job
// @Tags     jobs
// @Accept   x-www-form-urlencoded
// @Param    id      path      int     true  "Job ID"
// @Param    name    formData  string  true  "Applicant name"
// @Param    email   formData  string  true  "Applicant email"
// @Param    resume  formData  string  true  "Resume"
// @Success  303  "Redirect to / on success"
// @Router   /job/{id} [post]
func (h *JobHandler) Apply(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, ok := pathID(c)
	if !ok {
		metrics.ApplicationsSubmittedTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return flashRedirect(c, sess, flashJobNotFound, "/jobs")
	}
	back := "/job/" + strconv.FormatInt(id, 10)

	var form applicationForm
	if err := c.Bind(&form); err != nil {
		metrics.ApplicationsSubmittedTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, flashInvalidForm, back)
	}
	if err := c.Validate(&form); err != nil {
		metrics.ApplicationsSubmittedTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, validationMessage(err), back)
	}

	_, err = h.applicationService.Submit(c.Request().Context(), ports.SubmitApplicationInput{
		JobID:  id,
		Name:   form.Name,
		Email:  form.Email,
		Resume: form.Resume,
	})
	switch {
	case err == nil:
		metrics.ApplicationsSubmittedTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		return flashRedirect(c, sess, flashApplicationSent, "/")
	case errors.Is(err, domain.ErrInvalidReference):
		metrics.ApplicationsSubmittedTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return flashRedirect(c, sess, flashJobNotFound, "/jobs")
	case errors.Is(err, domain.ErrValidation):
		metrics.ApplicationsSubmittedTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return flashRedirect(c, sess, validationMessage(err), back)
	default:
		metrics.ApplicationsSubmittedTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}
}

// DeleteJob removes a job owned by the current user. Every outcome lands on
// the dashboard.
//
// @Summary  Delete a job
// @Tags     jobs
// @Param    id  path  int  true  "Job ID"
// @Success  303  "Redirect to /dashboard"
// @Router   /delete_job/{id} [post]
func (h *JobHandler) DeleteJob(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, ok := pathID(c)
	if !ok {
		metrics.JobsDeletedTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return flashRedirect(c, sess, flashJobNotFound, "/dashboard")
	}

	err = h.jobService.Delete(c.Request().Context(), id, userID)
	switch {
	case err == nil:
		metrics.JobsDeletedTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
		return flashRedirect(c, sess, flashJobDeleted, "/dashboard")
	case errors.Is(err, domain.ErrNotFound):
		metrics.JobsDeletedTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return flashRedirect(c, sess, flashJobNotFound, "/dashboard")
	case errors.Is(err, domain.ErrForbidden):
		metrics.JobsDeletedTotal.WithLabelValues(metrics.OutcomeForbidden).Inc()
		return flashRedirect(c, sess, flashDeleteForbidden, "/dashboard")
	default:
		metrics.JobsDeletedTotal.WithLabelValues(metrics.OutcomeError).Inc()
		h.logger.Error().Err(err).Int64("job_id", id).Int64("user_id", userID).Msg("job delete failed")
		return flashRedirect(c, sess, flashDeleteFailed, "/dashboard")
	}
}

// ListJobs renders every job.
//
// @Summary  All jobs
// @Tags     jobs
// @Produce  html
// @Success  200
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	jobs, err := h.jobService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, "view_jobs", viewData{"Jobs": jobs})
}
