package tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "coffeeshop-pos/internal/api/http"
	"coffeeshop-pos/internal/domain"
	"coffeeshop-pos/internal/mocks"
	"coffeeshop-pos/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(orders *mocks.OrderServiceInterface, inventory *mocks.InventoryServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Orders: orders, Inventory: inventory}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_createOrder(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc, nil)

	placedOrder := &domain.Order{
		ID:          7,
		OrderNumber: "ORD-20260831-0007",
		Status:      domain.StatusPending,
		TotalAmount: decimal.NewFromInt(275),
	}

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"customer_name":"Nina","customer_phone":"555-0101","order_type":"takeout","items":[{"menu_item_id":1,"quantity":2}]}`,
			prepareMocks: func() {
				mockSvc.On("Place", mock.Anything, mock.Anything, mock.Anything).
					Return(placedOrder, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"order_number":"ORD-20260831-0007"`,
		},
		{
			name:         "invalid_json",
			payload:      `not json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing_customer_name",
			payload:      `{"customer_phone":"555-0101","order_type":"takeout","items":[{"menu_item_id":1,"quantity":1}]}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad_order_type",
			payload:      `{"customer_name":"Nina","customer_phone":"555-0101","order_type":"drone-drop","items":[{"menu_item_id":1,"quantity":1}]}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "empty_items",
			payload:      `{"customer_name":"Nina","customer_phone":"555-0101","order_type":"takeout","items":[]}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "unavailable_item",
			payload: `{"customer_name":"Nina","customer_phone":"555-0101","order_type":"takeout","items":[{"menu_item_id":3,"quantity":1}]}`,
			prepareMocks: func() {
				mockSvc.On("Place", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, service.ErrItemUnavailable).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_applyOrderAction(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc, nil)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:    "cancel_success",
			payload: `{"action":"cancel","reason":"customer changed mind"}`,
			prepareMocks: func() {
				mockSvc.On("ApplyAction", mock.Anything, mock.Anything, 5, mock.Anything).
					Return(&domain.Order{ID: 5, Status: domain.StatusCancelled}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "void_without_privilege",
			payload: `{"action":"void","reason":"mistake"}`,
			prepareMocks: func() {
				mockSvc.On("ApplyAction", mock.Anything, mock.Anything, 5, mock.Anything).
					Return(nil, service.ErrVoidNotAllowed).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "illegal_transition",
			payload: `{"action":"complete"}`,
			prepareMocks: func() {
				mockSvc.On("ApplyAction", mock.Anything, mock.Anything, 5, mock.Anything).
					Return(nil, service.ErrInvalidTransition).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "terminal_order",
			payload: `{"action":"approve"}`,
			prepareMocks: func() {
				mockSvc.On("ApplyAction", mock.Anything, mock.Anything, 5, mock.Anything).
					Return(nil, service.ErrOrderNotEditable).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "missing_action",
			payload:      `{"reason":"no action given"}`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/orders/5/actions", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getOrder_notFound(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(mockSvc, nil)

	mockSvc.On("Get", 42).Return(nil, sql.ErrNoRows).Once()

	req := httptest.NewRequest("GET", "/api/orders/42", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_alerts(t *testing.T) {
	mockSvc := mocks.NewInventoryServiceInterface(t)
	router := setupTestRouter(nil, mockSvc)

	alerts := []domain.LowStockAlert{
		{ID: 9, InventoryID: 1, ItemName: "Espresso Beans", AlertLevel: domain.AlertCritical},
	}
	mockSvc.On("ListAlerts", true).Return(alerts, nil).Once()

	req := httptest.NewRequest("GET", "/api/inventory/alerts?unacknowledged=true", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var got []domain.LowStockAlert
	json.NewDecoder(recorder.Body).Decode(&got)
	assert.Len(t, got, 1)
	assert.Equal(t, domain.AlertCritical, got[0].AlertLevel)

	mockSvc.On("AcknowledgeAlert", mock.Anything, 9).Return(nil).Once()

	req = httptest.NewRequest("POST", "/api/inventory/alerts/9/acknowledge", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "acknowledged")
}
