package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rosterdb/rosterdb/internal/api/middleware"
	"github.com/rosterdb/rosterdb/internal/core/export"
	"github.com/rosterdb/rosterdb/internal/core/roster"
)

type ExportHandler struct {
	exportService *export.Service
}

func NewExportHandler(exportService *export.Service) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Download handles GET /api/players/download, serving the filtered catalog
// as a json or csv attachment.
func (h *ExportHandler) Download(c *gin.Context) {
	filter := roster.Filter{
		Search: c.Query("search"),
		Field:  c.Query("field"),
	}
	format := export.Format(c.Query("format"))

	download, err := h.exportService.ExportFiltered(c.Request.Context(), filter, format)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrInvalidFormat),
			errors.Is(err, roster.ErrUnknownField):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, export.ErrEmptyResultSet):
			respondError(c, http.StatusNotFound, "no players matched the filter")
		default:
			log.Printf("request_id=%s store error: %v", middleware.GetRequestID(c), err)
			respondError(c, http.StatusInternalServerError, storeErrorMessage)
		}
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+download.Filename)
	c.Data(http.StatusOK, download.ContentType, download.Data)
}

// Snapshot handles POST /api/players/snapshot, rewriting the full-catalog
// snapshot artifacts.
func (h *ExportHandler) Snapshot(c *gin.Context) {
	if err := h.exportService.SnapshotAll(c.Request.Context()); err != nil {
		if errors.Is(err, export.ErrEmptyResultSet) {
			respondError(c, http.StatusConflict, "catalog is empty, nothing to snapshot")
			return
		}
		log.Printf("request_id=%s snapshot error: %v", middleware.GetRequestID(c), err)
		respondError(c, http.StatusInternalServerError, "snapshot failed")
		return
	}

	log.Printf("snapshot refreshed by %s", middleware.GetSubject(c))
	respond(c, http.StatusOK, "snapshot refreshed", nil)
}
