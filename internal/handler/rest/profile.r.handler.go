package hrest

import (
	"errors"
	"fmt"
	"net/http"

	"matrimony-service/internal/domain"
	"matrimony-service/internal/usecase"
	"matrimony-service/pkg/middleware"
	"matrimony-service/pkg/response"
	"matrimony-service/pkg/xerrors"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	uc     *usecase.ProfileUsecase
	logger *zap.Logger
}

func NewProfileHandler(uc *usecase.ProfileUsecase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// HandleGetForm returns the caller's profile in form shape with completion.
func (h *ProfileHandler) HandleGetForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.fail(w, "profile", "", xerrors.ErrUnauthorized)
		return
	}

	view, err := h.uc.GetForm(r.Context(), userID)
	if err != nil {
		h.fail(w, "get profile form", userID, err)
		return
	}
	response.JSON(w, http.StatusOK, view)
}

// HandleGetRecord returns the caller's stored profile record.
func (h *ProfileHandler) HandleGetRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.fail(w, "profile", "", xerrors.ErrUnauthorized)
		return
	}

	rec, err := h.uc.GetRecord(r.Context(), userID)
	if err != nil {
		h.fail(w, "get profile record", userID, err)
		return
	}
	response.JSON(w, http.StatusOK, rec)
}

// HandleSave stores a submitted profile form.
func (h *ProfileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.fail(w, "profile", "", xerrors.ErrUnauthorized)
		return
	}

	var form domain.ProfileForm
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		h.fail(w, "save profile", userID, fmt.Errorf("%w: profile form: %v", xerrors.ErrInvalidRequest, err))
		return
	}

	saved, err := h.uc.SaveForm(r.Context(), userID, form)
	if err != nil {
		h.fail(w, "save profile", userID, err)
		return
	}
	response.JSON(w, http.StatusOK, saved)
}

// HandleDecode previews a record in form shape.
func (h *ProfileHandler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	var rec domain.ProfileRecord
	if err := render.DecodeJSON(r.Body, &rec); err != nil {
		h.fail(w, "decode preview", "", fmt.Errorf("%w: profile record: %v", xerrors.ErrInvalidRequest, err))
		return
	}
	response.JSON(w, http.StatusOK, h.uc.PreviewDecode(&rec))
}

// HandleEncode previews a form in record shape.
func (h *ProfileHandler) HandleEncode(w http.ResponseWriter, r *http.Request) {
	var form domain.ProfileForm
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		h.fail(w, "encode preview", "", fmt.Errorf("%w: profile form: %v", xerrors.ErrInvalidRequest, err))
		return
	}
	response.JSON(w, http.StatusOK, h.uc.PreviewEncode(form))
}

// HandleOptions lists the height, income and marital status codes.
func (h *ProfileHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.uc.FormOptions())
}

func (h *ProfileHandler) fail(w http.ResponseWriter, op, userID string, err error) {
	switch {
	case errors.Is(err, xerrors.ErrUserIDRequired), errors.Is(err, xerrors.ErrInvalidRequest):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, xerrors.ErrUnauthorized):
		response.Error(w, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error(op+" failed", zap.String("user_id", userID), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, xerrors.ErrInternalServer.Error())
	}
}
