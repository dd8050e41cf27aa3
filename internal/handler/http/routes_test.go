package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-dashboard/internal/mock"
	"github.com/MKhiriev/go-user-dashboard/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestInit_Routes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{name: "users", method: http.MethodGet, target: UsersPath + "?cursor=0&limit=100", wantStatus: http.StatusOK},
		{name: "users bad cursor", method: http.MethodGet, target: UsersPath + "?cursor=-100", wantStatus: http.StatusBadRequest},
		{name: "ping", method: http.MethodGet, target: "/ping", wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, target: "/version", wantStatus: http.StatusOK},
		{name: "unknown path", method: http.MethodGet, target: "/api/1.1/obj/order", wantStatus: http.StatusNotFound},
		{name: "post to users", method: http.MethodPost, target: UsersPath, wantStatus: http.StatusNotFound},
		{name: "delete ping", method: http.MethodDelete, target: "/ping", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			directory := mock.NewMockUserDirectory(ctrl)
			directory.EXPECT().Page(gomock.Any(), gomock.Any()).Return(models.Page{}).AnyTimes()

			router := newTestHandler(directory).Init()
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestInit_SetsTraceID(t *testing.T) {
	router := newTestHandler(nil).Init()
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mock.NewMockUserDirectory(ctrl)
	directory.EXPECT().Page(0, 100).DoAndReturn(func(int, int) models.Page {
		panic("boom")
	})

	router := newTestHandler(directory).Init()
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, UsersPath, nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
