// Package catalog holds the CRUD use cases for jobs, persons and services.
package catalog

import (
	"context"

	"github.com/BruksfildServices01/service-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

const (
	keyJobs    = "jobs:"
	keyPersons = "persons:"
)

// ======================================================
// JOBS
// ======================================================

type Jobs struct {
	repo     domain.Repository
	registry *schema.Registry
	cache    cache.Cache
}

func NewJobs(
	repo domain.Repository,
	registry *schema.Registry,
	c cache.Cache,
) *Jobs {
	if c == nil {
		c = cache.Nop{}
	}
	return &Jobs{repo: repo, registry: registry, cache: c}
}

func (uc *Jobs) List(ctx context.Context) ([]models.Job, error) {
	return cache.Remember(ctx, uc.cache, keyJobs+"all", uc.repo.ListJobs)
}

func (uc *Jobs) Get(ctx context.Context, id uint) (*models.Job, error) {
	return uc.repo.GetJob(ctx, id)
}

func (uc *Jobs) Create(ctx context.Context, name string) (*models.Job, error) {
	n := domain.Trim(&name)
	if err := domain.Check(uc.registry, schema.EntityJob, map[string]*string{"nume": n}, false); err != nil {
		return nil, err
	}

	job := &models.Job{Name: *n}
	if err := uc.repo.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, keyJobs)
	return job, nil
}

func (uc *Jobs) Rename(ctx context.Context, id uint, name string) (*models.Job, error) {
	n := domain.Trim(&name)
	if err := domain.Check(uc.registry, schema.EntityJob, map[string]*string{"nume": n}, true); err != nil {
		return nil, err
	}

	job, err := uc.repo.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	job.Name = *n

	if err := uc.repo.UpdateJob(ctx, job); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, keyJobs)
	return job, nil
}

// Delete clears the job from services, appointments and legacy person rows
// and drops its qualifications.
func (uc *Jobs) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.DeleteJob(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, uc.cache, keyJobs)
	cache.Invalidate(ctx, uc.cache, keyPersons)
	return nil
}
