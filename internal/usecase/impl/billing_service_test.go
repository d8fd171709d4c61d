package impl

import (
	"context"
	"testing"
	"time"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	mockRepo "urjabandhu/internal/mocks/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type billingServiceFixtures struct {
	service        usecase.BillingUsecase
	repo           *mockRepo.MockBillingRepository
	connectionRepo *mockRepo.MockConnectionRepository
}

func createTestBillingService(t *testing.T) billingServiceFixtures {
	repo := mockRepo.NewMockBillingRepository(t)
	connectionRepo := mockRepo.NewMockConnectionRepository(t)

	service := NewBillingService(BillingServiceParams{
		BillingRepo:    repo,
		ConnectionRepo: connectionRepo,
		Logger:         newDiscardLogger(),
	})

	return billingServiceFixtures{service: service, repo: repo, connectionRepo: connectionRepo}
}

func billPeriod() (time.Time, time.Time) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, -1)
}

func TestBillingService_CreateBill_WithConnection(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()
	connID := uuid.New()
	start, end := billPeriod()

	fx.connectionRepo.EXPECT().FindConnectionByID(ctx, connID).Return(&entity.ConsumerConnection{ID: connID, UserID: userID}, nil)
	fx.repo.EXPECT().CreateBill(ctx, mock.AnythingOfType("*entity.BillingData")).Return(nil)

	bill, err := fx.service.CreateBill(ctx, userID, &usecase.CreateBillInput{
		ConnectionID:  &connID,
		PeriodStart:   start,
		PeriodEnd:     end,
		UnitsConsumed: 240,
		Amount:        1920,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPending, bill.Status)
	assert.Equal(t, &connID, bill.ConnectionID)
}

func TestBillingService_CreateBill_ForeignConnection(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	connID := uuid.New()
	start, end := billPeriod()

	fx.connectionRepo.EXPECT().FindConnectionByID(ctx, connID).Return(&entity.ConsumerConnection{ID: connID, UserID: uuid.New()}, nil)

	_, err := fx.service.CreateBill(ctx, uuid.New(), &usecase.CreateBillInput{
		ConnectionID: &connID,
		PeriodStart:  start,
		PeriodEnd:    end,
	})

	assert.ErrorIs(t, err, domainerrors.ErrConnectionOwnershipViolation)
}

func TestBillingService_CreateBill_MissingConnection(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	connID := uuid.New()
	start, end := billPeriod()

	fx.connectionRepo.EXPECT().FindConnectionByID(ctx, connID).Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.CreateBill(ctx, uuid.New(), &usecase.CreateBillInput{
		ConnectionID: &connID,
		PeriodStart:  start,
		PeriodEnd:    end,
	})

	assert.ErrorIs(t, err, domainerrors.ErrConnectionNotFound)
}

func TestBillingService_CreateBill_Validation(t *testing.T) {
	start, end := billPeriod()

	tests := []struct {
		name  string
		input *usecase.CreateBillInput
	}{
		{name: "missing period", input: &usecase.CreateBillInput{}},
		{name: "inverted period", input: &usecase.CreateBillInput{PeriodStart: end, PeriodEnd: start}},
		{name: "negative amount", input: &usecase.CreateBillInput{PeriodStart: start, PeriodEnd: end, Amount: -1}},
		{name: "unknown status", input: &usecase.CreateBillInput{PeriodStart: start, PeriodEnd: end, Status: "disputed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBillingService(t)

			_, err := fx.service.CreateBill(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBillingService_UpdateBill_MarkPaid(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()
	start, end := billPeriod()
	bill := &entity.BillingData{
		ID:          uuid.New(),
		UserID:      userID,
		PeriodStart: start,
		PeriodEnd:   end,
		Amount:      1920,
		Status:      entity.BillStatusPending,
	}
	paid := entity.BillStatusPaid

	fx.repo.EXPECT().FindBillByID(ctx, bill.ID).Return(bill, nil)
	fx.repo.EXPECT().UpdateBill(ctx, bill).Return(nil)

	updated, err := fx.service.UpdateBill(ctx, userID, bill.ID, &usecase.UpdateBillInput{Status: &paid})

	require.NoError(t, err)
	assert.Equal(t, entity.BillStatusPaid, updated.Status)
}

func TestBillingService_ListBills_ErrorReturnsEmptySlice(t *testing.T) {
	fx := createTestBillingService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.repo.EXPECT().ListBills(ctx, userID).Return(nil, errors.New("db error"))

	bills, err := fx.service.ListBills(ctx, userID)

	require.Error(t, err)
	assert.NotNil(t, bills)
}
