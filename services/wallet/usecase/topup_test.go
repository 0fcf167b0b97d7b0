package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/proxline/proxline/internal/pkg/models"
)

func TestWalletUC_TopUp_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReconcileUC(ctrl)

	userID := uuid.New()
	txID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}

	m.provider.EXPECT().Name().Return("cryptocloud").AnyTimes()
	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	m.ledgerRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{
		UserID: userID,
		Amount: 10.0,
	}, nil)
	m.txRepo.EXPECT().
		CreatePending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, tx *models.Transaction) (uuid.UUID, error) {
			assert.Equal(t, userID, tx.UserID)
			assert.Equal(t, 50.0, tx.Amount)
			assert.Equal(t, 60.0, tx.BalanceAfter)
			assert.Equal(t, models.TransactionTypeTopUp, tx.Type)
			assert.Equal(t, "cryptocloud", tx.Provider)
			return txID, nil
		})
	m.provider.EXPECT().
		GenerateLink(gomock.Any(), user, 50.0, txID.String()).
		Return(&models.PaymentLink{Link: "https://pay.example/i/abc", InvoiceID: "abc"}, nil)
	m.txRepo.EXPECT().UpdateExternalID(gomock.Any(), txID, "abc").Return(nil)

	// Act
	resp, err := uc.TopUp(context.Background(), &models.TopUpRequest{
		TelegramID: "421337",
		Provider:   "cryptocloud",
		Amount:     50.0,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, txID, resp.TransactionID)
	assert.Equal(t, "https://pay.example/i/abc", resp.Link)
	assert.Equal(t, "abc", resp.InvoiceID)
}

func TestWalletUC_TopUp_LinkGenerationFailureMarksTransactionFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReconcileUC(ctrl)

	userID := uuid.New()
	txID := uuid.New()
	user := &models.User{ID: userID, TelegramID: "421337"}

	m.provider.EXPECT().Name().Return("cryptocloud").AnyTimes()
	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").Return(user, nil)
	m.ledgerRepo.EXPECT().GetBalance(gomock.Any(), userID).Return(&models.Balance{UserID: userID}, nil)
	m.txRepo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(txID, nil)
	m.provider.EXPECT().
		GenerateLink(gomock.Any(), user, 50.0, txID.String()).
		Return(nil, errors.New("provider unreachable"))
	m.txRepo.EXPECT().
		UpdateStatus(gomock.Any(), txID, models.TransactionStatusFailed, "Link generation failed").
		Return(nil)

	resp, err := uc.TopUp(context.Background(), &models.TopUpRequest{
		TelegramID: "421337",
		Provider:   "cryptocloud",
		Amount:     50.0,
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestWalletUC_TopUp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newReconcileUC(ctrl)

	tests := []struct {
		name string
		req  *models.TopUpRequest
	}{
		{"zero amount", &models.TopUpRequest{TelegramID: "1", Provider: "cryptocloud", Amount: 0}},
		{"negative amount", &models.TopUpRequest{TelegramID: "1", Provider: "cryptocloud", Amount: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.TopUp(context.Background(), tt.req)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Nil(t, resp)
		})
	}
}

func TestWalletUC_TopUp_UnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A registry with no providers rejects every name.
	_, m := newReconcileUC(ctrl)
	uc := NewWalletUC(m.userRepo, m.ledgerRepo, m.txRepo,
		staticRegistry{}, m.walletGW, m.locker, &models.Config{})

	resp, err := uc.TopUp(context.Background(), &models.TopUpRequest{
		TelegramID: "421337",
		Provider:   "wire-transfer",
		Amount:     50.0,
	})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, resp)
}

func TestWalletUC_UpsertUser_RequiresTelegramID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newReconcileUC(ctrl)

	user, err := uc.UpsertUser(context.Background(), &models.UserUpsertRequest{Username: "nobody"})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Nil(t, user)
}

func TestWalletUC_GetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newReconcileUC(ctrl)

	userID := uuid.New()
	m.userRepo.EXPECT().GetByTelegramID(gomock.Any(), "421337").
		Return(&models.User{ID: userID, TelegramID: "421337"}, nil)
	m.ledgerRepo.EXPECT().GetBalance(gomock.Any(), userID).
		Return(&models.Balance{UserID: userID, Amount: 42.5}, nil)

	balance, err := uc.GetBalance(context.Background(), "421337")

	assert.NoError(t, err)
	assert.Equal(t, 42.5, balance.Amount)
}
