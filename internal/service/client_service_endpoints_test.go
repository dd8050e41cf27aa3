package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-dashboard/internal/mock"
	"github.com/MKhiriev/go-user-dashboard/internal/store"
	"github.com/MKhiriev/go-user-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func newTestEndpointSvc(t *testing.T, ctrl *gomock.Controller, historySize int) (ClientEndpointService, *mock.MockEndpointRepository) {
	t.Helper()
	mockRepo := mock.NewMockEndpointRepository(ctrl)

	svc := NewClientEndpointService(&store.ClientStorages{EndpointRepository: mockRepo}, historySize)
	svc.(*clientEndpointService).now = func() time.Time { return fixedNow }

	return svc, mockRepo
}

func TestClientEndpointService_Remember_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEndpointSvc(t, ctrl, 5)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().SaveEndpoint(ctx, models.Endpoint{URL: "http://example.com/users", UsedAt: fixedNow}).Return(nil),
		mockRepo.EXPECT().PruneEndpoints(ctx, 5).Return(nil),
	)

	require.NoError(t, svc.Remember(ctx, " http://example.com/users "))
}

func TestClientEndpointService_Remember_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestEndpointSvc(t, ctrl, 5)

	assert.ErrorIs(t, svc.Remember(context.Background(), "  "), ErrEmptyBaseURL)
}

func TestClientEndpointService_Remember_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEndpointSvc(t, ctrl, 5)
	ctx := context.Background()

	mockRepo.EXPECT().SaveEndpoint(ctx, gomock.Any()).Return(store.ErrExecutingStatement)

	err := svc.Remember(ctx, "http://example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
	assert.Contains(t, err.Error(), "remember endpoint")
}

func TestClientEndpointService_Remember_PruneError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEndpointSvc(t, ctrl, 2)
	ctx := context.Background()

	mockRepo.EXPECT().SaveEndpoint(ctx, gomock.Any()).Return(nil)
	mockRepo.EXPECT().PruneEndpoints(ctx, 2).Return(errors.New("database is locked"))

	err := svc.Remember(ctx, "http://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prune endpoint history")
}

func TestClientEndpointService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEndpointSvc(t, ctrl, 3)
	ctx := context.Background()

	mockRepo.EXPECT().RecentEndpoints(ctx, 3).Return([]models.Endpoint{
		{URL: "http://b.test", UsedAt: fixedNow},
		{URL: "http://a.test", UsedAt: fixedNow.Add(-time.Hour)},
	}, nil)

	got, err := svc.Recent(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://b.test", "http://a.test"}, got)
}

func TestClientEndpointService_Recent_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEndpointSvc(t, ctrl, 3)
	ctx := context.Background()

	mockRepo.EXPECT().RecentEndpoints(ctx, 3).Return(nil, store.ErrExecutingQuery)

	_, err := svc.Recent(ctx)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
