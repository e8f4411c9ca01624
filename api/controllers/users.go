package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lokoloapp/lokolo-backend/api/responses"
	"github.com/lokoloapp/lokolo-backend/api/validators"
	"github.com/lokoloapp/lokolo-backend/internal/users"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

type syncUserRequest struct {
	FirebaseUID string `json:"firebaseUid" validate:"required,min=1"`
	Email       string `json:"email" validate:"required,email"`
	FullName    string `json:"fullName,omitempty"`
	Role        string `json:"role,omitempty" validate:"omitempty,oneof=consumer supplier admin"`
}

// AuthSyncUser upserts the caller's profile after a Firebase sign-in.
func AuthSyncUser(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var req syncUserRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Sync(r.Context(), users.SyncUserInput{
			FirebaseUID: strings.TrimSpace(req.FirebaseUID),
			Email:       strings.TrimSpace(req.Email),
			FullName:    strings.TrimSpace(req.FullName),
			Role:        enums.UserRole(req.Role),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// UserGet returns the profile for one Firebase UID.
func UserGet(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		uid := strings.TrimSpace(chi.URLParam(r, "uid"))
		if uid == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "firebase uid is required"))
			return
		}

		dto, err := svc.GetByFirebaseUID(r.Context(), uid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type updateUserRequest struct {
	FullName string `json:"full_name" validate:"required,min=1"`
}

// UserUpdate renames the profile for one Firebase UID.
func UserUpdate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		uid := strings.TrimSpace(chi.URLParam(r, "uid"))
		if uid == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "firebase uid is required"))
			return
		}

		var req updateUserRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateFullName(r.Context(), uid, strings.TrimSpace(req.FullName))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
