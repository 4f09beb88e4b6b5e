package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly/hr-console-go/internal/domain/auth"
	"github.com/attendly/hr-console-go/internal/handler/http/middleware"
	"github.com/attendly/hr-console-go/internal/handler/http/response"
	"github.com/attendly/hr-console-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Verify implements AuthHandler - classifies profile details before login
func (a *authHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	var req auth.ProfileDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Verify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Register implements AuthHandler - sets up a new workspace
func (a *authHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req auth.ProfileDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Workspace registered", "hr_id", result.Profile.HRID)
	response.Created(w, "Workspace created successfully", result)
}

// Login implements AuthHandler
func (a *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.ProfileDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Logout implements AuthHandler - revokes the presented session token,
// whether it arrived as a header or a cookie
func (a *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if raw := middleware.RawSessionToken(r); raw != "" {
		a.jwtService.RevokeToken(raw)
	}
	response.SuccessWithMessage(w, "Logged out", nil)
}

// Me implements AuthHandler - returns the authenticated tenant's profile
func (a *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := a.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
