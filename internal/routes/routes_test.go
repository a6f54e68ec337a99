package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-scheduler/internal/cache"
	"github.com/BruksfildServices01/service-scheduler/internal/config"
	"github.com/BruksfildServices01/service-scheduler/internal/migration"
	"github.com/BruksfildServices01/service-scheduler/internal/schema"
	"github.com/BruksfildServices01/service-scheduler/internal/storetest"
	"github.com/BruksfildServices01/service-scheduler/internal/timezone"
)

type server struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storetest.New(t)
	engine, err := migration.NewEngine(store.SQL, migration.History())
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:         store.Gorm,
		Config:     &config.Config{JWTSecret: "test", CORSOrigins: []string{"http://localhost:8080"}},
		Registry:   schema.Current(),
		Clock:      timezone.FixedClock(timezone.DefaultTimezone, time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)),
		Cache:      cache.Nop{},
		Migrations: engine,
	})
	return &server{t: t, router: r}
}

func (s *server) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) login() {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/register", gin.H{"username": "admin", "email": "admin@example.ro", "password": "parola123"})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "parola123"})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	s.token = resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type idResp struct {
	ID    uint  `json:"id"`
	JobID *uint `json:"job_id"`
}

type listResp struct {
	Data  []idResp `json:"data"`
	Total int      `json:"total"`
}

func TestHealth(t *testing.T) {
	s := newServer(t)
	w := s.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestElectricianScenario(t *testing.T) {
	s := newServer(t)
	s.login()

	w := s.do(http.MethodPost, "/api/jobs", gin.H{"name": "Electrician"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	job := decode[idResp](t, w)

	w = s.do(http.MethodPost, "/api/services", gin.H{"description": "Diagnoza electrica", "job_id": job.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	svc := decode[idResp](t, w)

	s.token = ""
	w = s.do(http.MethodPost, "/api/appointments", gin.H{
		"date":       "2030-01-22",
		"time":       "14:00",
		"service_id": svc.ID,
		"person_id":  nil,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ap := decode[idResp](t, w)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/appointments?job_id=%d", job.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[listResp](t, w)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, ap.ID, list.Data[0].ID)
	require.NotNil(t, list.Data[0].JobID)
	assert.Equal(t, job.ID, *list.Data[0].JobID)
}

func TestErrorMapping(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/api/appointments", gin.H{"date": "2030-01-14", "time": "14:00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error_code":"date_in_past","message":"date: date_in_past","field":"date"}`, w.Body.String())

	w = s.do(http.MethodGet, "/api/appointments/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "appointment_not_found")

	w = s.do(http.MethodGet, "/api/appointments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/appointments?sort=name", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/jobs", gin.H{"name": "Electrician"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	s.login()
	w = s.do(http.MethodPost, "/api/jobs", gin.H{"name": "Electrician"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = s.do(http.MethodPost, "/api/jobs", gin.H{"name": "Electrician"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestQualificationRoutes(t *testing.T) {
	s := newServer(t)
	s.login()

	job := decode[idResp](t, s.do(http.MethodPost, "/api/jobs", gin.H{"name": "Electrician"}))
	w := s.do(http.MethodPost, "/api/persons", gin.H{"last_name": "Popescu", "first_name": "Ion"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	person := decode[idResp](t, w)

	grant := fmt.Sprintf("/api/persons/%d/jobs/%d", person.ID, job.ID)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPut, grant, nil).Code)
	assert.Equal(t, http.StatusConflict, s.do(http.MethodPut, grant, nil).Code)

	list := decode[listResp](t, s.do(http.MethodGet, fmt.Sprintf("/api/jobs/%d/persons", job.ID), nil))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, person.ID, list.Data[0].ID)

	list = decode[listResp](t, s.do(http.MethodGet, fmt.Sprintf("/api/persons?job_id=%d", job.ID), nil))
	assert.Equal(t, 1, list.Total)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, grant, nil).Code)
	list = decode[listResp](t, s.do(http.MethodGet, fmt.Sprintf("/api/persons/%d/jobs", person.ID), nil))
	assert.Equal(t, 0, list.Total)
}

func TestServiceJobCanBeClearedWithNull(t *testing.T) {
	s := newServer(t)
	s.login()

	job := decode[idResp](t, s.do(http.MethodPost, "/api/jobs", gin.H{"name": "Electrician"}))
	svc := decode[idResp](t, s.do(http.MethodPost, "/api/services", gin.H{"description": "Montaj", "job_id": job.ID}))

	w := s.do(http.MethodPut, fmt.Sprintf("/api/services/%d", svc.ID), gin.H{"description": "Montaj priza"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, job.ID, *decode[idResp](t, w).JobID)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/services/%d", svc.ID), gin.H{"job_id": nil})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode[idResp](t, w).JobID)

	w = s.do(http.MethodPut, fmt.Sprintf("/api/services/%d", svc.ID), gin.H{"job_id": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointmentLifecycle(t *testing.T) {
	s := newServer(t)

	ap := decode[idResp](t, s.do(http.MethodPost, "/api/appointments", gin.H{"date": "2030-01-15", "time": "9:00"}))
	path := fmt.Sprintf("/api/appointments/%d", ap.ID)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodPut, path, gin.H{"time": "10:00"}).Code)

	s.login()
	w := s.do(http.MethodPut, path, gin.H{"time": "10:00", "notes": "interfon 12"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPatch, path+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodPatch, path+"/confirm", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, path, nil).Code)
}

func TestMigrationStatus(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodGet, "/api/migrations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status struct {
		Applied []migration.LedgerEntry `json:"applied"`
		Pending []string                `json:"pending"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	require.Len(t, status.Applied, len(migration.History()))
	assert.Equal(t, migration.History()[0].Version, status.Applied[0].Version)
	assert.Equal(t, "models", status.Applied[0].App)
	assert.Empty(t, status.Pending)
}
