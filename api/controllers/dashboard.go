package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lokoloapp/lokolo-backend/api/responses"
	"github.com/lokoloapp/lokolo-backend/internal/dashboard"
	pkgerrors "github.com/lokoloapp/lokolo-backend/pkg/errors"
	"github.com/lokoloapp/lokolo-backend/pkg/logger"
)

// SupplierDashboard returns the owner's listing and favorite counts.
func SupplierDashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		stats, err := svc.Stats(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
