package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "coffeeshop-pos/internal/api/http"
	"coffeeshop-pos/internal/domain"
	"coffeeshop-pos/internal/mocks"
	"coffeeshop-pos/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Runs the role-change endpoint through the real staff service and the
// X-Staff-ID resolver, so the whole authorization path is covered.
func TestStaffResolver_roleChange(t *testing.T) {
	repository := mocks.NewStaffRepository(t)
	activity := mocks.NewActivityRecorder(t)
	staffSvc := service.NewStaffService(repository, activity)

	handler := &httpapi.Handler{Staff: staffSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.Use(mux.MiddlewareFunc(httpapi.StaffResolver(staffSvc)))

	admin := &domain.Profile{UserID: 1, FullName: "Ada", Role: domain.RoleAdmin}
	cashier := &domain.Profile{UserID: 3, FullName: "Casey", Role: domain.RoleCashier}

	tests := []struct {
		name         string
		staffHeader  string
		prepareMocks func()
		expectedCode int
	}{
		{
			name:        "admin_header_allows_role_change",
			staffHeader: "1",
			prepareMocks: func() {
				repository.On("GetProfile", 1).Return(admin, nil).Once()
				repository.On("UpdateProfileRole", 5, domain.RoleManager).Return(nil).Once()
				activity.On("Record", "role_changed", mock.Anything, mock.Anything, mock.Anything).Return().Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:        "cashier_header_forbidden",
			staffHeader: "3",
			prepareMocks: func() {
				repository.On("GetProfile", 3).Return(cashier, nil).Once()
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "missing_header_forbidden",
			staffHeader:  "",
			prepareMocks: func() {},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("PUT", "/api/staff/5/role",
				bytes.NewBufferString(`{"role":"manager"}`))
			if testCase.staffHeader != "" {
				req.Header.Set("X-Staff-ID", testCase.staffHeader)
			}
			recorder := httptest.NewRecorder()
			r.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}
