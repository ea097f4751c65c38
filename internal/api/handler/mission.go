package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brawlops/brawlsquad/internal/api/apierr"
	"github.com/brawlops/brawlsquad/internal/api/middleware"
	"github.com/brawlops/brawlsquad/internal/api/request"
	"github.com/brawlops/brawlsquad/internal/api/response"
	"github.com/brawlops/brawlsquad/internal/model"
	"github.com/brawlops/brawlsquad/internal/services/mission"
)

// MissionHandler handles mission lifecycle and crew endpoints
type MissionHandler struct {
	missionService *mission.Service
}

// NewMissionHandler creates a new mission handler
func NewMissionHandler(missionService *mission.Service) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

// Create handles POST /api/v1/missions
func (h *MissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("name is required"))
		return
	}

	chiefID := middleware.MustGetBrawlerID(r.Context())

	created, err := h.missionService.Create(r.Context(), chiefID, req.Name, req.Description)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MissionFromModel(created))
}

// Get handles GET /api/v1/missions/{id}
func (h *MissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	missionID := model.MissionID(mux.Vars(r)["id"])

	view, err := h.missionService.Detail(r.Context(), missionID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MissionViewFromModel(view))
}

// List handles GET /api/v1/missions with an optional ?status= filter
func (h *MissionHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter model.MissionFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := model.ParseMissionStatus(raw)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		filter.Status = &status
	}

	missions, err := h.missionService.List(r.Context(), filter)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MissionsFromModel(missions))
}

// Start handles POST /api/v1/missions/{id}/in-progress
func (h *MissionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.MissionInProgress)
}

// Complete handles POST /api/v1/missions/{id}/complete
func (h *MissionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.MissionCompleted)
}

// Fail handles POST /api/v1/missions/{id}/fail
func (h *MissionHandler) Fail(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, model.MissionFailed)
}

// transition applies a status change with the caller as chief
func (h *MissionHandler) transition(w http.ResponseWriter, r *http.Request, target model.MissionStatus) {
	missionID := model.MissionID(mux.Vars(r)["id"])
	chiefID := middleware.MustGetBrawlerID(r.Context())

	updated, err := h.missionService.Transition(r.Context(), missionID, chiefID, target)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Transition{MissionID: string(updated)})
}

// Delete handles DELETE /api/v1/missions/{id}
func (h *MissionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	missionID := model.MissionID(mux.Vars(r)["id"])
	chiefID := middleware.MustGetBrawlerID(r.Context())

	if err := h.missionService.Delete(r.Context(), missionID, chiefID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Join handles POST /api/v1/missions/{id}/join
func (h *MissionHandler) Join(w http.ResponseWriter, r *http.Request) {
	missionID := model.MissionID(mux.Vars(r)["id"])
	brawlerID := middleware.MustGetBrawlerID(r.Context())

	if err := h.missionService.JoinCrew(r.Context(), missionID, brawlerID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Leave handles POST /api/v1/missions/{id}/leave
func (h *MissionHandler) Leave(w http.ResponseWriter, r *http.Request) {
	missionID := model.MissionID(mux.Vars(r)["id"])
	brawlerID := middleware.MustGetBrawlerID(r.Context())

	if err := h.missionService.LeaveCrew(r.Context(), missionID, brawlerID); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
