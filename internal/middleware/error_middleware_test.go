package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolapi/internal/app/models/dto"
	"github.com/yigit/schoolapi/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorDetailFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantField  string
	}{
		{"validation", apperrors.NewValidationError("password", "password is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "password"},
		{"bad request", apperrors.NewBadRequestError("malformed JSON body"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, ""},
		{"not found", apperrors.NewResourceNotFoundError("Course not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, ""},
		{"duplicate", fmt.Errorf("insert: %w", apperrors.ErrResourceAlreadyExists), http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, ""},
		{"related", apperrors.NewRelatedNotFoundError("teacher", "teacher_id", 9), http.StatusBadRequest, dto.ErrorCodeRelatedNotFound, "teacher_id"},
		{"relations", apperrors.NewCustomError(apperrors.ErrResourceHasRelations, "Teacher is still referenced"), http.StatusBadRequest, dto.ErrorCodeResourceHasRelations, ""},
		{"persistence", apperrors.NewCustomError(apperrors.ErrPersistence, "CHECK constraint failed"), http.StatusBadRequest, dto.ErrorCodeResourceInvalid, ""},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := errorDetailFor(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.Equal(t, tt.wantField, detail.Field)
		})
	}
}

func TestErrorDetailForHidesInternalMessage(t *testing.T) {
	_, detail := errorDetailFor(errors.New("pq: password authentication failed"))
	assert.Equal(t, "Internal server error", detail.Message)
	assert.Equal(t, dto.ErrorSeverityCritical, detail.Severity)
}

func TestHandleAPIErrorWritesEnvelope(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, apperrors.NewValidationError("id", "id must be a positive integer"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["timestamp"])
	detail := body["error"].(map[string]interface{})
	assert.Equal(t, "VAL_001", detail["code"])
	assert.Equal(t, "id", detail["field"])
	assert.Equal(t, "ERROR", detail["severity"])
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"SRV_001"`)
}

func TestRequestIDPropagation(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
}
