package hrest

import (
	"net/http"

	"matrimony-service/internal/domain"
	"matrimony-service/internal/routing"
	"matrimony-service/internal/usecase"
	"matrimony-service/pkg/middleware"
	"matrimony-service/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	uc     *usecase.DashboardUsecase
	logger *zap.Logger
}

func NewDashboardHandler(uc *usecase.DashboardUsecase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: logger}
}

// HandleRoute routes a posted session snapshot.
func (h *DashboardHandler) HandleRoute(w http.ResponseWriter, r *http.Request) {
	var s domain.Session
	if err := render.DecodeJSON(r.Body, &s); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session payload")
		return
	}
	response.JSON(w, http.StatusOK, h.uc.Route(s))
}

// HandleGuard checks a posted session snapshot against a role list.
func (h *DashboardHandler) HandleGuard(w http.ResponseWriter, r *http.Request) {
	var req guardRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid guard payload")
		return
	}
	response.JSON(w, http.StatusOK, h.uc.Guard(req.Session, req.RequiredRoles, req.From))
}

// HandleLegacy resolves a legacy sub-path against a dashboard base.
func (h *DashboardHandler) HandleLegacy(w http.ResponseWriter, r *http.Request) {
	var req legacyRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid legacy payload")
		return
	}
	if req.Base == "" {
		response.Error(w, http.StatusBadRequest, "base is required")
		return
	}
	response.JSON(w, http.StatusOK, legacyResponse{
		Path: routing.ResolveLegacy(req.Base, req.SubPath, req.Params),
	})
}

// HandleMe routes the current caller, anonymous or not.
func (h *DashboardHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	s, d := h.uc.RouteFor(r.Context(), middleware.GetClaims(r.Context()))
	response.JSON(w, http.StatusOK, meResponse{Session: s, Decision: d})
}

func (h *DashboardHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	var session *domain.Session
	if s, ok := middleware.GetSession(r.Context()); ok {
		session = &s
	}

	ov, err := h.uc.Overview(r.Context(), middleware.GetClaims(r.Context()), session)
	if err != nil {
		h.logger.Error("overview failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	response.JSON(w, http.StatusOK, ov)
}

// LegacyRedirect serves an old deep link: subPath is a template such as
// "profile/:id" whose placeholders are filled from the chi URL params named
// in params.
func (h *DashboardHandler) LegacyRedirect(subPath string, params ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := make(map[string]string, len(params))
		for _, p := range params {
			values[p] = chi.URLParam(r, p)
		}

		from := r.URL.RequestURI()
		res := h.uc.ResolveLegacy(r.Context(), middleware.GetClaims(r.Context()), subPath, values, from)

		switch {
		case res.Kind == domain.DecisionLoading:
			w.Header().Set("Retry-After", "1")
			response.Error(w, http.StatusServiceUnavailable, "Session is still loading")
		case res.Location == domain.PathLogin:
			response.ErrorWithData(w, http.StatusUnauthorized, "Login required", middleware.LoginRedirect{
				Redirect: res.Location,
				From:     res.From,
			})
		default:
			http.Redirect(w, r, res.Location, http.StatusFound)
		}
	}
}
