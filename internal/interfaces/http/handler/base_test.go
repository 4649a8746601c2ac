package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/givehope/backend/internal/domain/shared"
	"github.com/givehope/backend/internal/interfaces/http/dto"
	"github.com/givehope/backend/internal/interfaces/http/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*gin.Context)
		expectedID string
	}{
		{
			name: "from context string",
			setup: func(c *gin.Context) {
				c.Set(RequestIDKey, "ctx-request-id")
			},
			expectedID: "ctx-request-id",
		},
		{
			name: "from header when context empty",
			setup: func(c *gin.Context) {
				c.Request.Header.Set(RequestIDKey, "header-request-id")
			},
			expectedID: "header-request-id",
		},
		{
			name:       "empty when not set",
			setup:      func(c *gin.Context) {},
			expectedID: "",
		},
		{
			name: "context takes precedence over header",
			setup: func(c *gin.Context) {
				c.Set(RequestIDKey, "ctx-id")
				c.Request.Header.Set(RequestIDKey, "header-id")
			},
			expectedID: "ctx-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			tt.setup(c)

			id := getRequestID(c)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestCartOwner(t *testing.T) {
	t.Run("guest only", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)
		sessionID := uuid.New().String()
		c.Set(middleware.SessionIDKey, sessionID)

		owner := cartOwner(c)
		assert.Nil(t, owner.UserID)
		assert.Equal(t, sessionID, owner.SessionID)
		assert.False(t, owner.IsAuthenticated())
	})

	t.Run("authenticated with session", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)
		userID := uuid.New()
		sessionID := uuid.New().String()
		c.Set(middleware.SessionIDKey, sessionID)
		c.Set(middleware.JWTUserIDKey, userID.String())

		owner := cartOwner(c)
		require.NotNil(t, owner.UserID)
		assert.Equal(t, userID, *owner.UserID)
		assert.Equal(t, sessionID, owner.SessionID)
		assert.True(t, owner.IsAuthenticated())
	})

	t.Run("garbage user id ignored", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Set(middleware.JWTUserIDKey, "not-a-uuid")

		owner := cartOwner(c)
		assert.Nil(t, owner.UserID)
	})
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	h.Success(c, gin.H{"hello": "world"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestBaseHandlerHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not found",
			err:            shared.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
		},
		{
			name:           "cart full",
			err:            shared.ErrCartFull,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodeCartFull,
		},
		{
			name:           "campaign exhausted",
			err:            shared.NewDomainError("CAMPAIGN_EXHAUSTED", "Campaign is fully funded"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodeCampaignExhausted,
		},
		{
			name:           "payment incomplete",
			err:            shared.NewDomainError("PAYMENT_INCOMPLETE", "Session was not paid"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   dto.ErrCodePaymentIncomplete,
		},
		{
			name:           "upstream unavailable",
			err:            shared.ErrUpstream,
			expectedStatus: http.StatusBadGateway,
			expectedCode:   dto.ErrCodeUpstreamUnavailable,
		},
		{
			name:           "unknown error becomes internal",
			err:            assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedCode, resp.Error.Code)
		})
	}
}

func TestBaseHandlerHandleErrorNil(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	h.HandleError(c, nil)

	// Nothing written
	assert.Empty(t, w.Body.String())
}

func TestBaseHandlerErrorIncludesRequestID(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Set(RequestIDKey, "req-123")

	h.NotFound(c, "Campaign not found")

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}
