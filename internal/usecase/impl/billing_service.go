package impl

import (
	"context"
	"log/slog"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type billingService struct {
	repo           repository.BillingRepository
	connectionRepo repository.ConnectionRepository
	logger         *slog.Logger
}

// BillingServiceParams holds dependencies for BillingService.
type BillingServiceParams struct {
	fx.In

	BillingRepo    repository.BillingRepository
	ConnectionRepo repository.ConnectionRepository
	Logger         *slog.Logger
}

// NewBillingService creates the billing service.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		repo:           params.BillingRepo,
		connectionRepo: params.ConnectionRepo,
		logger:         params.Logger,
	}
}

func (srv *billingService) ListBills(ctx context.Context, userID uuid.UUID) ([]*entity.BillingData, error) {
	bills, err := srv.repo.ListBills(ctx, userID)
	if err != nil {
		return []*entity.BillingData{}, errors.Wrap(err, "failed to list bills")
	}

	return bills, nil
}

func (srv *billingService) CreateBill(ctx context.Context, userID uuid.UUID, input *usecase.CreateBillInput) (*entity.BillingData, error) {
	bill := &entity.BillingData{
		UserID:        userID,
		ConnectionID:  input.ConnectionID,
		PeriodStart:   input.PeriodStart,
		PeriodEnd:     input.PeriodEnd,
		UnitsConsumed: input.UnitsConsumed,
		Amount:        input.Amount,
		DueDate:       input.DueDate,
		Status:        input.Status,
	}
	if bill.Status == "" {
		bill.Status = entity.BillStatusPending
	}
	if err := validateBill(bill); err != nil {
		return nil, err
	}

	if bill.ConnectionID != nil {
		conn, err := srv.connectionRepo.FindConnectionByID(ctx, *bill.ConnectionID)
		if err != nil {
			return nil, mapConnectionError(err, "failed to find bill connection")
		}
		if conn.UserID != userID {
			return nil, errors.Wrap(domainerrors.ErrConnectionOwnershipViolation, conn.ID.String())
		}
	}

	if err := srv.repo.CreateBill(ctx, bill); err != nil {
		return nil, mapConnectionError(err, "failed to create bill")
	}

	return bill, nil
}

func (srv *billingService) UpdateBill(ctx context.Context, userID, billID uuid.UUID, input *usecase.UpdateBillInput) (*entity.BillingData, error) {
	bill, err := loadOwned(ctx, srv.repo.FindBillByID, billOwner, userID, billID,
		repository.ErrBillNotFound, domainerrors.ErrBillNotFound, true)
	if err != nil {
		return nil, err
	}

	setIfPresent(&bill.UnitsConsumed, input.UnitsConsumed)
	setIfPresent(&bill.Amount, input.Amount)
	setIfPresent(&bill.Status, input.Status)
	if input.DueDate != nil {
		bill.DueDate = input.DueDate
	}
	if err := validateBill(bill); err != nil {
		return nil, err
	}

	if err := srv.repo.UpdateBill(ctx, bill); err != nil {
		return nil, mapNotFound(err, repository.ErrBillNotFound, domainerrors.ErrBillNotFound, "failed to update bill")
	}

	return bill, nil
}

func (srv *billingService) DeleteBill(ctx context.Context, userID, billID uuid.UUID) error {
	if _, err := loadOwned(ctx, srv.repo.FindBillByID, billOwner, userID, billID,
		repository.ErrBillNotFound, domainerrors.ErrBillNotFound, true); err != nil {
		return err
	}

	if err := srv.repo.DeleteBill(ctx, billID); err != nil {
		return mapNotFound(err, repository.ErrBillNotFound, domainerrors.ErrBillNotFound, "failed to delete bill")
	}

	return nil
}

func billOwner(b *entity.BillingData) uuid.UUID { return b.UserID }

func validateBill(b *entity.BillingData) error {
	switch {
	case b.PeriodStart.IsZero() || b.PeriodEnd.IsZero():
		return errors.Wrap(domainerrors.ErrValidationFailed, "billing period is required")
	case b.PeriodEnd.Before(b.PeriodStart):
		return errors.Wrap(domainerrors.ErrValidationFailed, "billing period end must not be before start")
	case b.UnitsConsumed < 0 || b.Amount < 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "units and amount must not be negative")
	case !b.Status.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown bill status %q", b.Status)
	}

	return nil
}
