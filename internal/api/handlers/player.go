package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rosterdb/rosterdb/internal/api/middleware"
	"github.com/rosterdb/rosterdb/internal/core/roster"
	"github.com/rosterdb/rosterdb/internal/core/validation"
)

// storeErrorMessage is the only detail a caller sees on a store failure.
const storeErrorMessage = "database query error"

type PlayerHandler struct {
	rosterService *roster.Service
}

func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{rosterService: rosterService}
}

// List handles GET /api/players with optional search and field parameters.
func (h *PlayerHandler) List(c *gin.Context) {
	filter := roster.Filter{
		Search: c.Query("search"),
		Field:  c.Query("field"),
	}

	records, err := h.rosterService.Search(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, roster.ErrUnknownField) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.internalError(c, err)
		return
	}

	respond(c, http.StatusOK, "players retrieved", records)
}

func (h *PlayerHandler) Get(c *gin.Context) {
	id, ok := h.playerID(c)
	if !ok {
		return
	}

	record, err := h.rosterService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			respondError(c, http.StatusNotFound, "player not found: id "+strconv.Itoa(id))
			return
		}
		h.internalError(c, err)
		return
	}

	respond(c, http.StatusOK, "player retrieved", record)
}

func (h *PlayerHandler) GetByTeam(c *gin.Context) {
	name := c.Param("name")

	records, err := h.rosterService.GetByTeam(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			respondError(c, http.StatusNotFound, "no players found for team "+name)
			return
		}
		h.internalError(c, err)
		return
	}

	respond(c, http.StatusOK, "players retrieved", records)
}

func (h *PlayerHandler) GetByPosition(c *gin.Context) {
	value := c.Param("value")

	records, err := h.rosterService.GetByPosition(c.Request.Context(), value)
	if err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			respondError(c, http.StatusNotFound, "no players found for position "+value)
			return
		}
		h.internalError(c, err)
		return
	}

	respond(c, http.StatusOK, "players retrieved", records)
}

func (h *PlayerHandler) GetByNationality(c *gin.Context) {
	value := c.Param("value")

	records, err := h.rosterService.GetByNationality(c.Request.Context(), value)
	if err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			respondError(c, http.StatusNotFound, "no players found for nationality "+value)
			return
		}
		h.internalError(c, err)
		return
	}

	respond(c, http.StatusOK, "players retrieved", records)
}

func (h *PlayerHandler) Create(c *gin.Context) {
	var req roster.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	record, err := h.rosterService.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrAlreadyExists),
			errors.Is(err, roster.ErrTeamNotFound),
			validation.IsValidationError(err):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			h.internalError(c, err)
		}
		return
	}

	respond(c, http.StatusCreated, "player created", record)
}

func (h *PlayerHandler) Replace(c *gin.Context) {
	id, ok := h.playerID(c)
	if !ok {
		return
	}

	var req roster.PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "malformed request body")
		return
	}

	record, err := h.rosterService.Replace(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrNotFound):
			respondError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, roster.ErrTeamNotFound), validation.IsValidationError(err):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			h.internalError(c, err)
		}
		return
	}

	respond(c, http.StatusOK, "player updated", record)
}

func (h *PlayerHandler) Delete(c *gin.Context) {
	id, ok := h.playerID(c)
	if !ok {
		return
	}

	record, err := h.rosterService.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		h.internalError(c, err)
		return
	}

	respond(c, http.StatusOK, "player deleted", record)
}

func (h *PlayerHandler) playerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid player id")
		return 0, false
	}
	return id, true
}

func (h *PlayerHandler) internalError(c *gin.Context, err error) {
	log.Printf("request_id=%s store error: %v", middleware.GetRequestID(c), err)
	respondError(c, http.StatusInternalServerError, storeErrorMessage)
}
