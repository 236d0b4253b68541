package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rostershop/internal/api/request"
	"rostershop/internal/api/response"
	"rostershop/internal/model"
	"rostershop/internal/services/roster"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	roster roster.ControllerInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roster roster.ControllerInterface) *PlayerHandler {
	return &PlayerHandler{
		roster: roster,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	dob, err := model.ParseDate(req.DateOfBirth)
	if err != nil {
		WriteError(w, NewInvalidRequestError("dateOfBirth must be YYYY-MM-DD"))
		return
	}

	player, err := h.roster.CreatePlayer(r.Context(), model.PlayerAttributes{
		CoachID:     req.CoachID,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Country:     req.Country,
		DateOfBirth: dob,
		Height:      req.Height,
		Weight:      req.Weight,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.roster.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// FilterByCountry handles GET /api/v1/players/filter/{country}
func (h *PlayerHandler) FilterByCountry(w http.ResponseWriter, r *http.Request) {
	country := mux.Vars(r)["country"]

	players, err := h.roster.ListPlayersByCountry(r.Context(), country)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Update handles PUT /api/v1/players
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	dob, err := model.ParseDate(req.DateOfBirth)
	if err != nil {
		WriteError(w, NewInvalidRequestError("dateOfBirth must be YYYY-MM-DD"))
		return
	}

	player, err := h.roster.UpdatePlayer(r.Context(), model.NewPlayer(model.PlayerID(req.ID), model.PlayerAttributes{
		CoachID:     req.CoachID,
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Country:     req.Country,
		DateOfBirth: dob,
		Height:      req.Height,
		Weight:      req.Weight,
	}))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.roster.DeletePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func playerID(r *http.Request) (model.PlayerID, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("id must be an integer")
	}
	return model.PlayerID(id), nil
}
