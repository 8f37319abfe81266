package book

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

type fieldsReq struct {
	Author     string `json:"author" validate:"required,notblank,max=100"`
	Title      string `json:"title" validate:"required,notblank,max=100"`
	Year       int    `json:"year" validate:"gte=0,lte=9999"`
	CountPages int    `json:"count_pages" validate:"gte=0"`
}

func (req fieldsReq) fields() Fields {
	return Fields{
		Author:     strings.TrimSpace(req.Author),
		Title:      strings.TrimSpace(req.Title),
		Year:       req.Year,
		CountPages: req.CountPages,
	}
}

type createReq struct {
	fieldsReq
	SellerID int64 `json:"seller_id" validate:"required,gt=0"`
}

type listResp struct {
	Books []Public `json:"books"`
}

// Create handles POST /api/v1/books/
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} Public
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/ [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, r)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.ValidationFailed(w, r, validationErrors)
		return
	}

	b, err := h.service.Create(r.Context(), req.SellerID, req.fields())
	if err != nil {
		if errors.Is(err, ErrSellerNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Seller not found", nil)
			return
		}
		h.logger.Error("create book failed", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.InternalError(w, r)
		return
	}

	httpx.JSON(w, http.StatusCreated, ToPublic(b))
}

// List handles GET /api/v1/books/
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list books failed", "request_id", httpx.RequestIDFrom(r), "error", err)
		httpx.InternalError(w, r)
		return
	}
	httpx.JSON(w, http.StatusOK, listResp{Books: ToPublicList(books)})
}

// Get handles GET /api/v1/books/{id}. An unknown id yields 200 with a null body.
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get book failed", "request_id", httpx.RequestIDFrom(r), "book_id", id, "error", err)
		httpx.InternalError(w, r)
		return
	}
	if b == nil {
		httpx.JSON(w, http.StatusOK, nil)
		return
	}
	httpx.JSON(w, http.StatusOK, ToPublic(*b))
}

// Update handles PUT /api/v1/books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	var req fieldsReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.BadRequest(w, r)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.ValidationFailed(w, r, validationErrors)
		return
	}

	b, err := h.service.Update(r.Context(), id, req.fields())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		h.logger.Error("update book failed", "request_id", httpx.RequestIDFrom(r), "book_id", id, "error", err)
		httpx.InternalError(w, r)
		return
	}
	httpx.JSON(w, http.StatusOK, ToPublic(b))
}

// Delete handles DELETE /api/v1/books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid book id", nil)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete book failed", "request_id", httpx.RequestIDFrom(r), "book_id", id, "error", err)
		httpx.InternalError(w, r)
		return
	}
	httpx.NoContent(w)
}
