package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(&testutil.Transactor{}, mockRepo)
	return NewHTTPHandler(service, testutil.DiscardLogger()), mockRepo
}

func TestHTTPHandler_List(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]Book{{ID: 1, Author: "Pushkin", Title: "Test", Year: 2001, CountPages: 104, SellerID: 2}}, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/books/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"books":[{"id":1,"author":"Pushkin","title":"Test","year":2001,"count_pages":104,"seller_id":2}]}`, w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/books/", nil))

		assert.JSONEq(t, `{"books":[]}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/books/", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]any{"author": "Pushkin", "title": "Eugeny Onegin", "year": 2001, "count_pages": 104, "seller_id": 1},
			setupMock: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           "invalid json",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing seller",
			body:           map[string]any{"author": "Pushkin", "title": "Eugeny Onegin", "year": 2001, "count_pages": 104},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown seller",
			body: map[string]any{"author": "Pushkin", "title": "Eugeny Onegin", "year": 2001, "count_pages": 104, "seller_id": 99},
			setupMock: func() {
				mockRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrSellerNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			handler.Create(w, testutil.NewRequest(http.MethodPost, "/api/v1/books/", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestHTTPHandler_Get(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(1)).Return(Book{ID: 1, Title: "Test"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/1", nil)
		r.SetPathValue("id", "1")
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("absent returns null", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), gomock.Any(), int64(2)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/2", nil)
		r.SetPathValue("id", "2")
		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null\n", w.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/books/abc", nil)
		r.SetPathValue("id", "abc")
		handler.Get(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_UpdateAndDelete(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("update not found", func(t *testing.T) {
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPut, "/api/v1/books/9", map[string]any{"author": "A", "title": "T", "year": 1, "count_pages": 1})
		r.SetPathValue("id", "9")
		handler.Update(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(9)).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/v1/books/9", nil)
		r.SetPathValue("id", "9")
		handler.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
