package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-scheduler/internal/httperr"
	"github.com/BruksfildServices01/service-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/service-scheduler/internal/migration"
)

// LedgerReader is the read side of the migration engine.
type LedgerReader interface {
	Applied(ctx context.Context) ([]migration.LedgerEntry, error)
	Pending(ctx context.Context) ([]migration.Unit, error)
}

type MigrationHandler struct {
	engine LedgerReader
}

func NewMigrationHandler(engine LedgerReader) *MigrationHandler {
	return &MigrationHandler{engine: engine}
}

type MigrationStatus struct {
	Applied []migration.LedgerEntry `json:"applied"`
	Pending []string                `json:"pending"`
}

// Status serves GET /api/migrations.
func (h *MigrationHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	applied, err := h.engine.Applied(ctx)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	pending, err := h.engine.Pending(ctx)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	status := MigrationStatus{Applied: applied, Pending: make([]string, 0, len(pending))}
	if status.Applied == nil {
		status.Applied = []migration.LedgerEntry{}
	}
	for _, u := range pending {
		status.Pending = append(status.Pending, u.Version)
	}

	httpresp.OK(c, status)
}
