package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/service-scheduler/internal/usecase/catalog"
)

type PersonHandler struct {
	persons *ucCatalog.Persons
}

func NewPersonHandler(persons *ucCatalog.Persons) *PersonHandler {
	return &PersonHandler{persons: persons}
}

// --------- Requests ---------

type PersonRequest struct {
	LastName  *string `json:"last_name"`
	FirstName *string `json:"first_name"`
}

func (r PersonRequest) input() ucCatalog.PersonInput {
	return ucCatalog.PersonInput{LastName: r.LastName, FirstName: r.FirstName}
}

// --------- Handlers ---------

// List serves GET /api/persons?job_id=
func (h *PersonHandler) List(c *gin.Context) {
	jobID, ok := queryID(c, "job_id")
	if !ok {
		return
	}

	persons, err := h.persons.List(c.Request.Context(), jobID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, persons)
}

func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.persons.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PersonHandler) Create(c *gin.Context) {
	var req PersonRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.persons.Create(c.Request.Context(), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PersonHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req PersonRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.persons.Update(c.Request.Context(), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PersonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.persons.Delete(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// --------- Qualifications ---------

func (h *PersonHandler) Jobs(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	jobs, err := h.persons.Jobs(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, jobs)
}

func (h *PersonHandler) Grant(c *gin.Context) {
	personID, ok := pathID(c, "id")
	if !ok {
		return
	}
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	pj, err := h.persons.Grant(c.Request.Context(), personID, jobID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, pj)
}

func (h *PersonHandler) Revoke(c *gin.Context) {
	personID, ok := pathID(c, "id")
	if !ok {
		return
	}
	jobID, ok := pathID(c, "job_id")
	if !ok {
		return
	}

	if err := h.persons.Revoke(c.Request.Context(), personID, jobID); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
