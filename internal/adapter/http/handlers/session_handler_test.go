package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grafica_xpto/internal/adapter/http/handlers/mocks"
	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleSession() entities.ConversionSession {
	now := time.Now().UTC()
	return entities.ConversionSession{
		ID:       "sess-1",
		QuoteID:  "quote-1",
		Strategy: entities.StrategyCustom,
		Groups: []entities.Group{
			{ID: "g1", Name: "Group 1", Items: []entities.LineItem{{ID: "item-1", Quantity: 1, UnitPrice: 10, TotalPrice: 10}}, UrgencyLevel: entities.UrgencyNormal, ExpectedProductionDays: 5, EstimatedValue: 10},
		},
		Status:    entities.SessionStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSessionHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions", h.CreateSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions", bytes.NewBufferString(`{"strategy":"separate"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions", h.CreateSession)

		uc.EXPECT().StartSession(gomock.Any(), "quote-1", entities.StrategySeparate).Return(entities.ConversionSession{}, usecase.ErrQuoteNotApproved)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions", bytes.NewBufferString(`{"quote_id":"quote-1","strategy":"separate"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions", h.CreateSession)

		uc.EXPECT().StartSession(gomock.Any(), "quote-1", entities.StrategyCustom).Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions", bytes.NewBufferString(`{"quote_id":"quote-1","strategy":"custom"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "sess-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.GET("/v1/conversion-sessions/:session_id", h.GetSession)

		uc.EXPECT().GetSession(gomock.Any(), "sess-404").Return(entities.ConversionSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/conversion-sessions/sess-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.GET("/v1/conversion-sessions/:session_id", h.GetSession)

		uc.EXPECT().GetSession(gomock.Any(), "sess-1").Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/conversion-sessions/sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["group_count"] != float64(1) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestSessionHandler_SwitchStrategy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.PUT("/v1/conversion-sessions/:session_id/strategy", h.SwitchStrategy)

		uc.EXPECT().SwitchStrategy(gomock.Any(), "sess-1", entities.StrategyCombined, false).Return(entities.ConversionSession{}, usecase.ErrSwitchNotConfirmed)

		req := httptest.NewRequest(http.MethodPut, "/v1/conversion-sessions/sess-1/strategy", bytes.NewBufferString(`{"strategy":"combined"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("confirmed success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.PUT("/v1/conversion-sessions/:session_id/strategy", h.SwitchStrategy)

		uc.EXPECT().SwitchStrategy(gomock.Any(), "sess-1", entities.StrategyCombined, true).Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/conversion-sessions/sess-1/strategy", bytes.NewBufferString(`{"strategy":"combined","confirm":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestSessionHandler_GroupMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("merge success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions/:session_id/groups/merge", h.MergeGroups)

		uc.EXPECT().MergeGroups(gomock.Any(), "sess-1", []string{"g1", "g2"}).Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions/sess-1/groups/merge", bytes.NewBufferString(`{"group_ids":["g1","g2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("merge requires custom strategy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions/:session_id/groups/merge", h.MergeGroups)

		uc.EXPECT().MergeGroups(gomock.Any(), "sess-1", gomock.Any()).Return(entities.ConversionSession{}, usecase.ErrStrategyNotCustom)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions/sess-1/groups/merge", bytes.NewBufferString(`{"group_ids":["g1","g2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("split single item group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions/:session_id/groups/:group_id/split", h.SplitGroup)

		uc.EXPECT().SplitGroup(gomock.Any(), "sess-1", "g1").Return(entities.ConversionSession{}, usecase.ErrInvalidOperation)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions/sess-1/groups/g1/split", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("duplicate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions/:session_id/groups/:group_id/duplicate", h.DuplicateGroup)

		uc.EXPECT().DuplicateGroup(gomock.Any(), "sess-1", "g1").Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions/sess-1/groups/g1/duplicate", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/conversion-sessions/:session_id/groups/:group_id", h.UpdateGroup)

		req := httptest.NewRequest(http.MethodPatch, "/v1/conversion-sessions/sess-1/groups/g1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/conversion-sessions/:session_id/groups/:group_id", h.UpdateGroup)

		uc.EXPECT().UpdateGroup(gomock.Any(), "sess-1", "g1", gomock.Any()).Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/conversion-sessions/sess-1/groups/g1", bytes.NewBufferString(`{"urgency_level":"rush"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove last group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.DELETE("/v1/conversion-sessions/:session_id/groups/:group_id", h.RemoveGroup)

		uc.EXPECT().RemoveGroup(gomock.Any(), "sess-1", "g1").Return(entities.ConversionSession{}, usecase.ErrInvalidOperation)

		req := httptest.NewRequest(http.MethodDelete, "/v1/conversion-sessions/sess-1/groups/g1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("add group success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions/:session_id/groups", h.AddGroup)

		uc.EXPECT().AddGroup(gomock.Any(), "sess-1").Return(sampleSession(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions/sess-1/groups", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("acknowledge duplication", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISessionUseCase(ctrl)
		h := NewSessionHandler(uc)

		r := gin.New()
		r.POST("/v1/conversion-sessions/:session_id/acknowledge-duplication", h.AcknowledgeDuplication)

		acked := sampleSession()
		acked.DuplicationAcknowledged = true
		uc.EXPECT().AcknowledgeDuplication(gomock.Any(), "sess-1").Return(acked, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/conversion-sessions/sess-1/acknowledge-duplication", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["duplication_acknowledged"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMapSessionError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidQuoteID, http.StatusBadRequest},
		{usecase.ErrInvalidSessionID, http.StatusBadRequest},
		{usecase.ErrInvalidStrategy, http.StatusBadRequest},
		{usecase.ErrQuoteNotFound, http.StatusNotFound},
		{usecase.ErrSessionNotFound, http.StatusNotFound},
		{usecase.ErrQuoteNotApproved, http.StatusUnprocessableEntity},
		{usecase.ErrQuoteHasNoItems, http.StatusUnprocessableEntity},
		{usecase.ErrSwitchNotConfirmed, http.StatusConflict},
		{usecase.ErrSessionNotDraft, http.StatusConflict},
		{usecase.ErrStrategyNotCustom, http.StatusConflict},
		{usecase.ErrInvalidOperation, http.StatusUnprocessableEntity},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapSessionError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
