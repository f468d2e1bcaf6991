package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/99minutos/jobboard/internal/core/domain"
	"github.com/99minutos/jobboard/internal/core/ports"
)

type stubJobService struct {
	createFn      func(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error)
	listAllFn     func(ctx context.Context) ([]*domain.Job, error)
	listByOwnerFn func(ctx context.Context, ownerID int64) ([]*domain.Job, error)
	getFn         func(ctx context.Context, id int64) (*domain.Job, error)
	deleteFn      func(ctx context.Context, id, requesterID int64) error
	randomFn      func(ctx context.Context) (int64, error)
}

func (s *stubJobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	return s.createFn(ctx, input)
}

func (s *stubJobService) ListAll(ctx context.Context) ([]*domain.Job, error) {
	return s.listAllFn(ctx)
}

func (s *stubJobService) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Job, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

func (s *stubJobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.getFn(ctx, id)
}

func (s *stubJobService) Delete(ctx context.Context, id, requesterID int64) error {
	return s.deleteFn(ctx, id, requesterID)
}

func (s *stubJobService) RandomJobID(ctx context.Context) (int64, error) {
	return s.randomFn(ctx)
}

type stubApplicationService struct {
	submitFn func(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error)
}

func (s *stubApplicationService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
	return s.submitFn(ctx, input)
}

func TestJobHandler_Dashboard(t *testing.T) {
	e := newTestEcho(t)
	jobs := &stubJobService{
		listByOwnerFn: func(_ context.Context, ownerID int64) ([]*domain.Job, error) {
			if ownerID != 3 {
				t.Fatalf("unexpected owner %d", ownerID)
			}
			return []*domain.Job{{ID: 9, Title: "Eng", OwnerID: 3}}, nil
		},
	}
	h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodGet, "/dashboard", nil, loggedIn(3, "alice"))
	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Welcome, alice", `href="/job/9"`, "Eng", `action="/delete_job/9"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
}

func TestJobHandler_PostJob(t *testing.T) {
	e := newTestEcho(t)
	var got ports.CreateJobInput
	jobs := &stubJobService{
		createFn: func(_ context.Context, input ports.CreateJobInput) (*domain.Job, error) {
			got = input
			return &domain.Job{ID: 1}, nil
		},
	}
	h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

	sess := loggedIn(3, "alice")
	form := url.Values{"title": {"Eng"}, "description": {"Build"}, "requirements": {"Go"}}
	c, rec := newFormContext(e, http.MethodPost, "/post_job", form, sess)
	if err := h.PostJob(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/")
	assertFlash(t, sess, flashJobPosted)
	if got.OwnerID != 3 || got.Title != "Eng" || got.Requirements != "Go" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestJobHandler_PostJob_Invalid(t *testing.T) {
	e := newTestEcho(t)
	jobs := &stubJobService{
		createFn: func(context.Context, ports.CreateJobInput) (*domain.Job, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

	sess := loggedIn(3, "alice")
	c, rec := newFormContext(e, http.MethodPost, "/post_job", url.Values{"title": {"Eng"}}, sess)
	if err := h.PostJob(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, "/post_job")
	assertFlash(t, sess, "description is required; requirements is required")
}

func TestJobHandler_TryNewJob(t *testing.T) {
	e := newTestEcho(t)

	t.Run("picks a job", func(t *testing.T) {
		jobs := &stubJobService{randomFn: func(context.Context) (int64, error) { return 42, nil }}
		h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

		c, rec := newFormContext(e, http.MethodGet, "/try_new_job", nil, loggedIn(1, "a"))
		if err := h.TryNewJob(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, "/job/42")
	})

	t.Run("no jobs", func(t *testing.T) {
		jobs := &stubJobService{randomFn: func(context.Context) (int64, error) { return 0, domain.ErrNotFound }}
		h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

		sess := loggedIn(1, "a")
		c, rec := newFormContext(e, http.MethodGet, "/try_new_job", nil, sess)
		if err := h.TryNewJob(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, "/")
		assertFlash(t, sess, flashNoJobs)
	})
}

func TestJobHandler_JobDetail(t *testing.T) {
	e := newTestEcho(t)
	jobs := &stubJobService{
		getFn: func(_ context.Context, id int64) (*domain.Job, error) {
			if id == 5 {
				return &domain.Job{ID: 5, Title: "Ops", Description: "Run things", Requirements: "Linux"}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodGet, "/job/5", nil, loggedIn(1, "a"))
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.JobDetail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Run things") {
		t.Fatalf("unexpected response %d: %s", rec.Code, rec.Body.String())
	}

	for _, id := range []string{"6", "abc"} {
		sess := loggedIn(1, "a")
		c, rec := newFormContext(e, http.MethodGet, "/job/"+id, nil, sess)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.JobDetail(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, "/jobs")
		assertFlash(t, sess, flashJobNotFound)
	}
}

func TestJobHandler_Apply(t *testing.T) {
	e := newTestEcho(t)
	apps := &stubApplicationService{
		submitFn: func(_ context.Context, input ports.SubmitApplicationInput) (*domain.Application, error) {
			if input.JobID != 5 {
				return nil, domain.ErrInvalidReference
			}
			return &domain.Application{ID: 1, JobID: 5}, nil
		},
	}
	h := NewJobHandler(&stubJobService{}, apps, zerolog.Nop())
	valid := url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "resume": {"cv"}}

	cases := []struct {
		name      string
		id        string
		form      url.Values
		wantTo    string
		wantFlash string
	}{
		{"success", "5", valid, "/", flashApplicationSent},
		{"unknown job", "8", valid, "/jobs", flashJobNotFound},
		{"bad email", "5", url.Values{"name": {"Ann"}, "email": {"nope"}, "resume": {"cv"}}, "/job/5", "email must be a valid email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := loggedIn(1, "a")
			c, rec := newFormContext(e, http.MethodPost, "/job/"+tc.id, tc.form, sess)
			c.SetParamNames("id")
			c.SetParamValues(tc.id)
			if err := h.Apply(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			assertRedirect(t, rec, tc.wantTo)
			assertFlash(t, sess, tc.wantFlash)
		})
	}
}

func TestJobHandler_DeleteJob(t *testing.T) {
	e := newTestEcho(t)
	boom := errors.New("db error: disk full")

	cases := []struct {
		name      string
		err       error
		wantFlash string
	}{
		{"owner", nil, flashJobDeleted},
		{"missing", domain.ErrNotFound, flashJobNotFound},
		{"other owner", domain.ErrForbidden, flashDeleteForbidden},
		{"storage fault", boom, flashDeleteFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			jobs := &stubJobService{
				deleteFn: func(_ context.Context, id, requesterID int64) error {
					if id != 9 || requesterID != 3 {
						t.Fatalf("unexpected args %d %d", id, requesterID)
					}
					return tc.err
				},
			}
			h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

			sess := loggedIn(3, "alice")
			c, rec := newFormContext(e, http.MethodPost, "/delete_job/9", url.Values{}, sess)
			c.SetParamNames("id")
			c.SetParamValues("9")
			if err := h.DeleteJob(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			assertRedirect(t, rec, "/dashboard")
			assertFlash(t, sess, tc.wantFlash)
		})
	}
}

func TestJobHandler_ListJobs(t *testing.T) {
	e := newTestEcho(t)
	jobs := &stubJobService{
		listAllFn: func(context.Context) ([]*domain.Job, error) {
			return []*domain.Job{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}, nil
		},
	}
	h := NewJobHandler(jobs, &stubApplicationService{}, zerolog.Nop())

	c, rec := newFormContext(e, http.MethodGet, "/jobs", nil, anonymous())
	if err := h.ListJobs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if n := strings.Count(rec.Body.String(), `class="job"`); n != 2 {
		t.Fatalf("expected 2 jobs, got %d", n)
	}
}
