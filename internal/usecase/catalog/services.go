package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

// ServiceInput is a partial service write. ClearJob unsets the job and
// wins over JobID.
type ServiceInput struct {
	Description *string
	JobID       *uint
	ClearJob    bool
}

// ======================================================
// SERVICES
// ======================================================

type Services struct {
	repo     domain.Repository
	registry *schema.Registry
}

func NewServices(repo domain.Repository, registry *schema.Registry) *Services {
	return &Services{repo: repo, registry: registry}
}

func (uc *Services) List(ctx context.Context, jobID *uint) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, jobID)
}

func (uc *Services) Get(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.GetService(ctx, id)
}

func (uc *Services) check(in ServiceInput, partial bool) (map[string]*string, error) {
	values := map[string]*string{}
	if in.Description != nil {
		values["descriere"] = domain.Trim(in.Description)
	}
	if err := domain.Check(uc.registry, schema.EntityService, values, partial); err != nil {
		return nil, err
	}
	if in.JobID != nil && *in.JobID == 0 {
		return nil, httperr.ErrValidation("job_id", "invalid_reference")
	}
	return values, nil
}

func (uc *Services) Create(ctx context.Context, in ServiceInput) (*models.Service, error) {
	values, err := uc.check(in, false)
	if err != nil {
		return nil, err
	}

	s := &models.Service{Description: *values["descriere"]}
	if !in.ClearJob {
		s.JobID = in.JobID
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *Services) Update(ctx context.Context, id uint, in ServiceInput) (*models.Service, error) {
	values, err := uc.check(in, true)
	if err != nil {
		return nil, err
	}

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if v, ok := values["descriere"]; ok {
		s.Description = *v
	}
	switch {
	case in.ClearJob:
		s.JobID = nil
	case in.JobID != nil:
		s.JobID = in.JobID
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *Services) Delete(ctx context.Context, id uint) error {
	return uc.repo.DeleteService(ctx, id)
}
