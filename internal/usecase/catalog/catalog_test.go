package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-scheduler/internal/cache"
	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/service-scheduler/internal/models"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/storetest"
)

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }

type fixture struct {
	ctx      context.Context
	repo     *repository.CatalogGormRepository
	mr       *miniredis.Miniredis
	jobs     *Jobs
	persons  *Persons
	services *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storetest.New(t)
	registry := schema.Current()
	repo := repository.NewCatalogGormRepository(store.Gorm, registry)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	c := cache.NewRedisWithClient(client, time.Minute)

	return &fixture{
		ctx:      context.Background(),
		repo:     repo,
		mr:       mr,
		jobs:     NewJobs(repo, registry, c),
		persons:  NewPersons(repo, registry, c),
		services: NewServices(repo, registry),
	}
}

func (f *fixture) person(t *testing.T, last, first string) *models.Person {
	t.Helper()
	p, err := f.persons.Create(f.ctx, PersonInput{LastName: strPtr(last), FirstName: strPtr(first)})
	require.NoError(t, err)
	return p
}

// ============================================================
// Jobs
// ============================================================

func TestJobs_CreateTrimsAndValidates(t *testing.T) {
	f := newFixture(t)

	j, err := f.jobs.Create(f.ctx, "  Electrician ")
	require.NoError(t, err)
	assert.Equal(t, "Electrician", j.Name)

	_, err = f.jobs.Create(f.ctx, "   ")
	assert.True(t, httperr.IsValidation(err))

	_, err = f.jobs.Create(f.ctx, "Electrician")
	assert.True(t, httperr.IsConflict(err))
}

func TestJobs_ListIsCachedAndInvalidated(t *testing.T) {
	f := newFixture(t)
	_, err := f.jobs.Create(f.ctx, "Electrician")
	require.NoError(t, err)

	list, err := f.jobs.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, f.mr.Exists("scheduler:jobs:all"))

	// Writes that bypass the use case are not seen until invalidation.
	require.NoError(t, f.repo.CreateJob(f.ctx, &models.Job{Name: "Plumber"}))
	list, err = f.jobs.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.jobs.Create(f.ctx, "Zugrav")
	require.NoError(t, err)
	assert.False(t, f.mr.Exists("scheduler:jobs:all"))

	list, err = f.jobs.List(f.ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestJobs_WorkWithoutCache(t *testing.T) {
	store := storetest.New(t)
	repo := repository.NewCatalogGormRepository(store.Gorm, schema.Current())
	jobs := NewJobs(repo, schema.Current(), nil)
	ctx := context.Background()

	j, err := jobs.Create(ctx, "Electrician")
	require.NoError(t, err)

	renamed, err := jobs.Rename(ctx, j.ID, "Electrician autorizat")
	require.NoError(t, err)
	assert.Equal(t, "Electrician autorizat", renamed.Name)

	list, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Electrician autorizat", list[0].Name)

	require.NoError(t, jobs.Delete(ctx, j.ID))
	assert.True(t, httperr.IsNotFound(jobs.Delete(ctx, j.ID)))
}

func TestJobs_DeleteKeepsDependents(t *testing.T) {
	f := newFixture(t)
	j, err := f.jobs.Create(f.ctx, "Electrician")
	require.NoError(t, err)
	svc, err := f.services.Create(f.ctx, ServiceInput{Description: strPtr("Montaj"), JobID: &j.ID})
	require.NoError(t, err)
	p := f.person(t, "Popescu", "Ion")
	_, err = f.persons.Grant(f.ctx, p.ID, j.ID)
	require.NoError(t, err)

	require.NoError(t, f.jobs.Delete(f.ctx, j.ID))

	got, err := f.services.Get(f.ctx, svc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.JobID)

	jobs, err := f.persons.Jobs(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

// ============================================================
// Persons & qualifications
// ============================================================

func TestPersons_CreateRequiresBothNames(t *testing.T) {
	f := newFixture(t)

	_, err := f.persons.Create(f.ctx, PersonInput{LastName: strPtr("Popescu")})
	de, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "prenume", de.Field)
	assert.Equal(t, "required", de.Code)
}

func TestPersons_UpdateIsPartial(t *testing.T) {
	f := newFixture(t)
	p := f.person(t, "Popescu", "Ion")

	got, err := f.persons.Update(f.ctx, p.ID, PersonInput{FirstName: strPtr(" Ioan ")})
	require.NoError(t, err)
	assert.Equal(t, "Popescu", got.LastName)
	assert.Equal(t, "Ioan", got.FirstName)

	_, err = f.persons.Update(f.ctx, 999, PersonInput{FirstName: strPtr("X")})
	assert.True(t, httperr.IsNotFound(err))
}

func TestPersons_QualifiedForJob(t *testing.T) {
	f := newFixture(t)
	electrician, err := f.jobs.Create(f.ctx, "Electrician")
	require.NoError(t, err)
	plumber, err := f.jobs.Create(f.ctx, "Plumber")
	require.NoError(t, err)

	ion := f.person(t, "Popescu", "Ion")
	maria := f.person(t, "Ionescu", "Maria")
	f.person(t, "Georgescu", "Vlad")

	_, err = f.persons.Grant(f.ctx, ion.ID, electrician.ID)
	require.NoError(t, err)
	_, err = f.persons.Grant(f.ctx, ion.ID, plumber.ID)
	require.NoError(t, err)
	_, err = f.persons.Grant(f.ctx, maria.ID, electrician.ID)
	require.NoError(t, err)

	qualified, err := f.persons.List(f.ctx, &electrician.ID)
	require.NoError(t, err)
	require.Len(t, qualified, 2)
	assert.Equal(t, ion.ID, qualified[0].ID)
	assert.Equal(t, maria.ID, qualified[1].ID)

	all, err := f.persons.List(f.ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	jobs, err := f.persons.Jobs(f.ctx, ion.ID)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	_, err = f.persons.List(f.ctx, uintPtr(999))
	assert.True(t, httperr.IsNotFound(err))
}

func TestPersons_GrantRevokeInvalidateLookup(t *testing.T) {
	f := newFixture(t)
	j, err := f.jobs.Create(f.ctx, "Electrician")
	require.NoError(t, err)
	p := f.person(t, "Popescu", "Ion")

	qualified, err := f.persons.Qualified(f.ctx, j.ID)
	require.NoError(t, err)
	assert.Empty(t, qualified)

	_, err = f.persons.Grant(f.ctx, p.ID, j.ID)
	require.NoError(t, err)
	qualified, err = f.persons.Qualified(f.ctx, j.ID)
	require.NoError(t, err)
	assert.Len(t, qualified, 1)

	_, err = f.persons.Grant(f.ctx, p.ID, j.ID)
	assert.True(t, httperr.IsConflict(err))

	require.NoError(t, f.persons.Revoke(f.ctx, p.ID, j.ID))
	qualified, err = f.persons.Qualified(f.ctx, j.ID)
	require.NoError(t, err)
	assert.Empty(t, qualified)

	assert.True(t, httperr.IsNotFound(f.persons.Revoke(f.ctx, p.ID, j.ID)))
}

func TestPersons_CacheOutageFallsBackToStore(t *testing.T) {
	f := newFixture(t)
	j, err := f.jobs.Create(f.ctx, "Electrician")
	require.NoError(t, err)
	p := f.person(t, "Popescu", "Ion")
	_, err = f.persons.Grant(f.ctx, p.ID, j.ID)
	require.NoError(t, err)

	f.mr.Close()

	qualified, err := f.persons.Qualified(f.ctx, j.ID)
	require.NoError(t, err)
	assert.Len(t, qualified, 1)
}

// ============================================================
// Services
// ============================================================

func TestServices_JobCanBeCleared(t *testing.T) {
	f := newFixture(t)
	j, err := f.jobs.Create(f.ctx, "Electrician")
	require.NoError(t, err)

	svc, err := f.services.Create(f.ctx, ServiceInput{Description: strPtr("Diagnoza electrica"), JobID: &j.ID})
	require.NoError(t, err)

	byJob, err := f.services.List(f.ctx, &j.ID)
	require.NoError(t, err)
	assert.Len(t, byJob, 1)

	updated, err := f.services.Update(f.ctx, svc.ID, ServiceInput{ClearJob: true})
	require.NoError(t, err)
	assert.Nil(t, updated.JobID)
	assert.Equal(t, "Diagnoza electrica", updated.Description)

	byJob, err = f.services.List(f.ctx, &j.ID)
	require.NoError(t, err)
	assert.Empty(t, byJob)
}

func TestServices_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.Create(f.ctx, ServiceInput{})
	assert.True(t, httperr.IsValidation(err))

	_, err = f.services.Create(f.ctx, ServiceInput{Description: strPtr("Montaj"), JobID: uintPtr(0)})
	assert.True(t, httperr.IsValidation(err))

	_, err = f.services.Create(f.ctx, ServiceInput{Description: strPtr("Montaj"), JobID: uintPtr(42)})
	assert.True(t, httperr.IsNotFound(err))

	svc, err := f.services.Create(f.ctx, ServiceInput{Description: strPtr("Montaj")})
	require.NoError(t, err)
	require.NoError(t, f.services.Delete(f.ctx, svc.ID))
	_, err = f.services.Get(f.ctx, svc.ID)
	assert.True(t, httperr.IsNotFound(err))
}
