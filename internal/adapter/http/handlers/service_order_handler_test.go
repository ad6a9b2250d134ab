package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/domain/workflow"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleOrder() entities.ServiceOrder {
	entry := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	return entities.ServiceOrder{
		ID:        "os-1",
		ShortCode: "4101",
		ClientID:  "client-1",
		EntryDate: entry,
		Status:    entities.StatusAnalysis,
		Equipment: []entities.OSEquipment{
			{ID: "eq-1", MachineID: "machine-1", DefectReported: "nao liga"},
		},
		History: []entities.HistoryEntry{
			{Date: entry, Status: entities.StatusAnalysis, Note: "Recebido"},
		},
	}
}

func TestServiceOrderHandler_CreateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		uc.EXPECT().Open(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrClientReference)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"client_id":"ghost","equipment_items":[{"machine_id":"machine-1"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_REFERENCE" {
			t.Fatalf("unexpected error code: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders", h.CreateServiceOrder)

		uc.EXPECT().Open(gomock.Any(), gomock.Any()).Return(sampleOrder(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"client_id":"client-1","equipment_items":[{"machine_id":"machine-1","defect_reported":"nao liga"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["short_code"] != "4101" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_UpdateServiceOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateServiceOrder)

		uc.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/missing", bytes.NewBufferString(`{"discount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id", h.UpdateServiceOrder)

		updated := sampleOrder()
		updated.Discount = 10
		uc.EXPECT().Update(gomock.Any(), "os-1", gomock.Any()).Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/os-1", bytes.NewBufferString(`{"discount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing status field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/os-1/status", bytes.NewBufferString(`{"note":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backward without note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		uc.EXPECT().ChangeStatus(gomock.Any(), "os-1", entities.StatusAnalysis, "").Return(entities.ServiceOrder{}, workflow.ErrNoteRequired)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/os-1/status", bytes.NewBufferString(`{"status":"ANALYSIS"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_TRANSITION" {
			t.Fatalf("unexpected error code: %s", w.Body.String())
		}
	})

	t.Run("success normalizes case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/orders/:id/status", h.ChangeStatus)

		moved := sampleOrder()
		moved.Status = entities.StatusBudgeted
		uc.EXPECT().ChangeStatus(gomock.Any(), "os-1", entities.StatusBudgeted, "orcamento enviado").Return(moved, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/os-1/status", bytes.NewBufferString(`{"status":"budgeted","note":"orcamento enviado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_RecordPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid method maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/payments", h.RecordPayment)

		uc.EXPECT().RecordPayment(gomock.Any(), "os-1", gomock.Any()).Return(entities.ServiceOrder{}, entities.ErrValidation)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/os-1/payments", bytes.NewBufferString(`{"method":"CHEQUE","amount":50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceOrderUseCase(ctrl)
		h := NewServiceOrderHandler(uc)

		r := gin.New()
		r.POST("/v1/orders/:id/payments", h.RecordPayment)

		paid := sampleOrder()
		paid.Payments = []entities.Payment{{ID: "pay-1", Method: entities.PaymentMethodPix, Amount: 100, Date: paid.EntryDate}}
		uc.EXPECT().RecordPayment(gomock.Any(), "os-1", gomock.Any()).Return(paid, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/os-1/payments", bytes.NewBufferString(`{"method":"PIX","amount":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestMapOrderError(t *testing.T) {
	if got := mapOrderError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(workflow.ErrUnknownStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapOrderError(usecase.ErrMachineReference); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapOrderError(usecase.ErrDuplicateShortCode); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
