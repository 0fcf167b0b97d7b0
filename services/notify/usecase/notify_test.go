package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/proxline/proxline/internal/pkg/models"
	"github.com/proxline/proxline/services/notify/mocks"
)

func newNotifyUC(ctrl *gomock.Controller) (*NotifyUC, *mocks.MockNotificationRepo, *mocks.MockUserRepo, *mocks.MockTelegramGW) {
	notificationRepo := mocks.NewMockNotificationRepo(ctrl)
	userRepo := mocks.NewMockUserRepo(ctrl)
	telegramGW := mocks.NewMockTelegramGW(ctrl)
	uc := NewNotifyUC(notificationRepo, userRepo, telegramGW, &models.Config{})
	return uc, notificationRepo, userRepo, telegramGW
}

func TestNotifyUC_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, notificationRepo, _, _ := newNotifyUC(ctrl)

	userID := uuid.New()
	when := time.Now().Add(24 * time.Hour)

	notificationRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, n *models.Notification) error {
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, models.NotificationTypeProxyExpiring, n.Type)
			assert.Equal(t, when, n.ScheduledAt)
			assert.False(t, n.Sent)
			return nil
		})

	err := uc.Schedule(context.Background(), userID, models.NotificationTypeProxyExpiring, when, `{"item_id":"9001"}`)

	assert.NoError(t, err)
}

func TestNotifyUC_ProcessPending_DeliveryFailureDoesNotBlockRest(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, notificationRepo, userRepo, telegramGW := newNotifyUC(ctrl)

	firstUser := uuid.New()
	secondUser := uuid.New()
	due := []models.Notification{
		{ID: uuid.New(), UserID: firstUser, Type: models.NotificationTypeBalanceLow},
		{ID: uuid.New(), UserID: secondUser, Type: models.NotificationTypeBalanceLow},
	}

	notificationRepo.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return(due, nil)

	userRepo.EXPECT().GetByID(gomock.Any(), firstUser).
		Return(&models.User{ID: firstUser, TelegramID: "111", Notification: true}, nil)
	telegramGW.EXPECT().Send(gomock.Any(), "111", gomock.Any()).
		Return(errors.New("telegram unavailable"))
	// The failed reminder stays unsent; no MarkSent for it.

	userRepo.EXPECT().GetByID(gomock.Any(), secondUser).
		Return(&models.User{ID: secondUser, TelegramID: "222", Notification: true}, nil)
	telegramGW.EXPECT().Send(gomock.Any(), "222", "Your balance is running low, please top up").
		Return(nil)
	notificationRepo.EXPECT().MarkSent(gomock.Any(), due[1].ID, gomock.Any()).Return(nil)

	// Act
	sent, err := uc.ProcessPending(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestNotifyUC_ProcessPending_MutedUserIsRetiredWithoutSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, notificationRepo, userRepo, _ := newNotifyUC(ctrl)

	userID := uuid.New()
	due := []models.Notification{
		{ID: uuid.New(), UserID: userID, Type: models.NotificationTypeBalanceLow},
	}

	notificationRepo.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return(due, nil)
	userRepo.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, TelegramID: "111", Notification: false}, nil)
	// Muted rows are marked sent so the sweep stops reloading them.
	notificationRepo.EXPECT().MarkSent(gomock.Any(), due[0].ID, gomock.Any()).Return(nil)

	sent, err := uc.ProcessPending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestNotifyUC_ProcessPending_MissingOwnerSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, notificationRepo, userRepo, _ := newNotifyUC(ctrl)

	userID := uuid.New()
	due := []models.Notification{
		{ID: uuid.New(), UserID: userID, Type: models.NotificationTypeBalanceLow},
	}

	notificationRepo.EXPECT().ListDue(gomock.Any(), gomock.Any()).Return(due, nil)
	userRepo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, models.ErrNotFound)

	sent, err := uc.ProcessPending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestRenderText(t *testing.T) {
	end := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		n        models.Notification
		language string
		want     string
	}{
		{
			name: "expiring english",
			n: models.Notification{
				Type:    models.NotificationTypeProxyExpiring,
				Payload: `{"item_id":"9001","host":"203.0.113.10","port":8080,"date_end":"2026-09-15T12:00:00Z"}`,
			},
			language: "en",
			want:     "Proxy 203.0.113.10:8080 expires at " + end.Format("2006-01-02 15:04"),
		},
		{
			name: "expiring russian",
			n: models.Notification{
				Type:    models.NotificationTypeProxyExpiring,
				Payload: `{"item_id":"9001","host":"203.0.113.10","port":8080,"date_end":"2026-09-15T12:00:00Z"}`,
			},
			language: "ru",
			want:     "Прокси 203.0.113.10:8080 истекает " + end.Format("2006-01-02 15:04"),
		},
		{
			name:     "balance low english",
			n:        models.Notification{Type: models.NotificationTypeBalanceLow},
			language: "en",
			want:     "Your balance is running low, please top up",
		},
		{
			name:     "unknown type falls back to payload",
			n:        models.Notification{Type: "unknown", Payload: "raw"},
			language: "en",
			want:     "raw",
		},
		{
			name:     "broken payload falls back to payload",
			n:        models.Notification{Type: models.NotificationTypeProxyExpiring, Payload: "not-json"},
			language: "en",
			want:     "not-json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderText(&tt.n, tt.language))
		})
	}
}
