package seller

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

type profileReq struct {
	FirstName string `json:"first_name" validate:"required,notblank,max=100"`
	LastName  string `json:"last_name" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email,max=100"`
}

func (req *profileReq) normalize() {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
}

func (req profileReq) profile() Profile {
	return Profile{FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}
}

type createReq struct {
	profileReq
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type listResp struct {
	Sellers []Public `json:"sellers"`
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg, "request_id", httpx.RequestIDFrom(r), "error", err)
	httpx.InternalError(w, r)
}

// Create handles POST /api/v1/sellers/
// @Summary Register a seller
// @Tags sellers
// @Accept json
// @Produce json
// @Success 201 {object} Public
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /sellers/ [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, r)
		return
	}
	req.normalize()

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.ValidationFailed(w, r, validationErrors)
		return
	}

	created, err := h.service.Create(r.Context(), req.profile(), req.Password)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
			return
		}
		h.internalError(w, r, "create seller failed", err)
		return
	}

	httpx.JSON(w, http.StatusCreated, ToPublic(created))
}

// List handles GET /api/v1/sellers/
// @Summary List sellers
// @Tags sellers
// @Produce json
// @Success 200 {object} listResp
// @Router /sellers/ [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, "list sellers failed", err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResp{Sellers: ToPublicList(sellers)})
}

// Get handles GET /api/v1/sellers/{id}. It must be mounted behind
// httpx.AuthMiddleware. An unknown id yields 200 with a null body.
// @Summary Get a seller with its books
// @Tags sellers
// @Produce json
// @Security Bearer
// @Success 200 {object} PublicWithBooks
// @Failure 401 {object} httpx.ErrorResponse
// @Router /sellers/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := httpx.PrincipalFrom(r); !ok {
		httpx.Unauthorized(w, r)
		return
	}

	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid seller id", nil)
		return
	}

	detail, err := h.service.GetWithBooks(r.Context(), id)
	if err != nil {
		h.internalError(w, r, "get seller failed", err)
		return
	}
	if detail == nil {
		httpx.JSON(w, http.StatusOK, nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToDetail(*detail))
}

// Update handles PUT /api/v1/sellers/{id}
// @Summary Update a seller's name and email
// @Tags sellers
// @Accept json
// @Produce json
// @Success 200 {object} Public
// @Failure 404 {object} httpx.ErrorResponse
// @Router /sellers/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid seller id", nil)
		return
	}

	var req profileReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, r)
		return
	}
	req.normalize()

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.ValidationFailed(w, r, validationErrors)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.profile())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Seller not found", nil)
		case errors.Is(err, ErrConflict):
			httpx.JSONError(w, r, http.StatusConflict, "ALREADY_EXISTS", "Email already exists", nil)
		default:
			h.internalError(w, r, "update seller failed", err)
		}
		return
	}

	httpx.JSON(w, http.StatusOK, ToPublic(updated))
}

// Delete handles DELETE /api/v1/sellers/{id}
// @Summary Delete a seller and its books
// @Tags sellers
// @Success 204 "No Content"
// @Router /sellers/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid seller id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.internalError(w, r, "delete seller failed", err)
		return
	}
	httpx.NoContent(w)
}
