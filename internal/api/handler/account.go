package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"rostershop/internal/api/apierr"
	"rostershop/internal/api/request"
	"rostershop/internal/api/response"
	"rostershop/internal/model"
	"rostershop/internal/services/account"
)

// AccountHandler handles user registration and login endpoints
type AccountHandler struct {
	accounts *account.Service
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts *account.Service) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
	}
}

// Register handles POST /api/v1/users/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	user, err := h.accounts.Register(r.Context(), req.Login, req.Password, req.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UserFromModel(user))
}

// Login handles POST /api/v1/users/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ok, err := h.accounts.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		// An unknown login reads the same as a wrong password from outside
		if errors.Is(err, model.ErrUserNotFound) {
			WriteError(w, apierr.NewInvalidCredentialsError())
			return
		}
		WriteError(w, err)
		return
	}
	if !ok {
		WriteError(w, apierr.NewInvalidCredentialsError())
		return
	}

	response.JSON(w, http.StatusOK, response.Login{
		Login:         req.Login,
		Authenticated: true,
	})
}
