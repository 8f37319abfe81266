package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token handles POST /api/v1/token
// @Summary Issue an access token
// @Description Exchange seller email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginReq true "Seller credentials"
// @Success 200 {object} tokenResp
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /token [post]
func (h *HTTPHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, r)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.ValidationFailed(w, r, validationErrors)
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password", nil)
			return
		}
		h.logger.Error("issue token failed", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.InternalError(w, r)
		return
	}

	httpx.JSON(w, http.StatusOK, tokenResp{
		AccessToken: token.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   token.ExpiresIn,
	})
}
