package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/loginkit/internal/middleware"
	"github.com/hitoshi/loginkit/internal/model"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	FetchUser(ctx context.Context, userID int) (*model.User, error)
}

// UserHandler はユーザー取得のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

type userResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmailValid bool   `json:"email_valid"`
}

// GetUser は指定IDのユーザーを返す。
// GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	userID, err := strconv.Atoi(rawID)
	if err != nil {
		middleware.WriteError(w, model.NewInvalidUserIDError(rawID))
		return
	}

	user, err := h.service.FetchUser(r.Context(), userID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	m := user.ToMap()
	writeJSON(w, http.StatusOK, userResponse{
		Name:       m["name"],
		Email:      m["email"],
		EmailValid: user.ValidateEmail(),
	})
}
