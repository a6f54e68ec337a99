package catalog

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/service-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/service-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
)

type PersonInput struct {
	LastName  *string
	FirstName *string
}

func (in PersonInput) values() map[string]*string {
	v := map[string]*string{}
	if in.LastName != nil {
		v["nume"] = domain.Trim(in.LastName)
	}
	if in.FirstName != nil {
		v["prenume"] = domain.Trim(in.FirstName)
	}
	return v
}

// ======================================================
// PERSONS
// ======================================================

type Persons struct {
	repo     domain.Repository
	registry *schema.Registry
	cache    cache.Cache
}

func NewPersons(
	repo domain.Repository,
	registry *schema.Registry,
	c cache.Cache,
) *Persons {
	if c == nil {
		c = cache.Nop{}
	}
	return &Persons{repo: repo, registry: registry, cache: c}
}

// List returns every person, or only those qualified for jobID.
func (uc *Persons) List(ctx context.Context, jobID *uint) ([]models.Person, error) {
	if jobID == nil {
		return uc.repo.ListPersons(ctx)
	}
	return uc.Qualified(ctx, *jobID)
}

// Qualified resolves junction rows to person ids, then ids to persons.
func (uc *Persons) Qualified(ctx context.Context, jobID uint) ([]models.Person, error) {
	if _, err := uc.repo.GetJob(ctx, jobID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%sjob:%d", keyPersons, jobID)
	return cache.Remember(ctx, uc.cache, key, func(ctx context.Context) ([]models.Person, error) {
		ids, err := uc.repo.QualifiedPersonIDs(ctx, jobID)
		if err != nil {
			return nil, err
		}
		return uc.repo.ListPersonsByIDs(ctx, ids)
	})
}

func (uc *Persons) Get(ctx context.Context, id uint) (*models.Person, error) {
	return uc.repo.GetPerson(ctx, id)
}

func (uc *Persons) Create(ctx context.Context, in PersonInput) (*models.Person, error) {
	values := in.values()
	if err := domain.Check(uc.registry, schema.EntityPerson, values, false); err != nil {
		return nil, err
	}

	p := &models.Person{LastName: *values["nume"], FirstName: *values["prenume"]}
	if err := uc.repo.CreatePerson(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *Persons) Update(ctx context.Context, id uint, in PersonInput) (*models.Person, error) {
	values := in.values()
	if err := domain.Check(uc.registry, schema.EntityPerson, values, true); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}
	if v, ok := values["nume"]; ok {
		p.LastName = *v
	}
	if v, ok := values["prenume"]; ok {
		p.FirstName = *v
	}

	if err := uc.repo.UpdatePerson(ctx, p); err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, keyPersons)
	return p, nil
}

func (uc *Persons) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.DeletePerson(ctx, id); err != nil {
		return err
	}

	cache.Invalidate(ctx, uc.cache, keyPersons)
	return nil
}

// ------------------------------------------------------
// Qualifications
// ------------------------------------------------------

func (uc *Persons) Grant(ctx context.Context, personID, jobID uint) (*models.PersonJob, error) {
	pj, err := uc.repo.Grant(ctx, personID, jobID)
	if err != nil {
		return nil, err
	}

	cache.Invalidate(ctx, uc.cache, keyPersons)
	return pj, nil
}

func (uc *Persons) Revoke(ctx context.Context, personID, jobID uint) error {
	if err := uc.repo.Revoke(ctx, personID, jobID); err != nil {
		return err
	}

	cache.Invalidate(ctx, uc.cache, keyPersons)
	return nil
}

// Jobs lists the jobs personID is qualified for.
func (uc *Persons) Jobs(ctx context.Context, personID uint) ([]models.Job, error) {
	if _, err := uc.repo.GetPerson(ctx, personID); err != nil {
		return nil, err
	}

	ids, err := uc.repo.JobIDsOfPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return uc.repo.ListJobsByIDs(ctx, ids)
}
