// Copyright (c) 2026 Beacon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/beacon/internal/platform/crud"
	"github.com/taibuivan/beacon/internal/platform/middleware"
	requestutil "github.com/taibuivan/beacon/internal/platform/request"
	"github.com/taibuivan/beacon/internal/platform/respond"
)

// Handler implements the admin authentication and user management endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler backed by service.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// PublicRoutes are mounted under /api/admin/auth without authentication.
func (handler *Handler) PublicRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/refresh-token", handler.refresh)
}

// SessionRoutes are mounted under /api/admin/auth behind RequireAdmin.
func (handler *Handler) SessionRoutes(router chi.Router) {
	router.Get("/me", handler.me)
	router.Put("/change-password", handler.changePassword)
}

// UserRoutes are mounted under /api/admin/users for super admins.
func (handler *Handler) UserRoutes(router chi.Router) {
	router.Get("/", handler.listUsers)
	router.Post("/", handler.createUser)
	router.Get("/{id}", handler.getUser)
	router.Put("/{id}", handler.updateUser)
	router.Delete("/{id}", handler.deleteUser)
}

// # Authentication

/*
POST /api/admin/auth/login

Request body:
  - email, password: required

Response:
  - 200: {accessToken, refreshToken, expiresIn, user}
  - 401: invalid credentials
  - 403: account deactivated
  - 429: too many failed attempts
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var credentials Credentials
	if err := requestutil.Decode(writer, request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.service.Login(request.Context(), credentials, middleware.RealIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Login successful", session)
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

/*
POST /api/admin/auth/refresh-token

Response:
  - 200: {accessToken}
  - 401: token invalid or expired
*/
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var body refreshRequest
	if err := requestutil.Decode(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	access, err := handler.service.Refresh(request.Context(), body.RefreshToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Token refreshed successfully", map[string]string{"accessToken": access})
}

func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Me(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Profile retrieved successfully", user)
}

/*
PUT /api/admin/auth/change-password

Request body:
  - current_password, new_password: required

Response:
  - 200: password changed
  - 400: current password wrong or new password too short
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var change PasswordChange
	if err := requestutil.Decode(writer, request, &change); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ChangePassword(request.Context(), claims.UserID, change); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Password changed successfully", nil)
}

// # User Management

func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.ListUsers(request.Context(), crud.ParseListQuery(request, crud.AdminVisibility(request)))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, "Users retrieved successfully", page.Data, page.Meta())
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "User retrieved successfully", user)
}

/*
POST /api/admin/users

Request body:
  - name, email, password: required
  - role: super_admin | admin | editor (default editor)
  - is_active: optional

Response:
  - 201: the created user
  - 409: email already in use
*/
func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input UserInput
	if err := requestutil.Decode(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.CreateUser(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "User created successfully", user)
}

func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UserInput
	if err := requestutil.Decode(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.UpdateUser(request.Context(), claims.UserID, id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "User updated successfully", user)
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteUser(request.Context(), claims.UserID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "User deleted successfully", nil)
}
