package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/domain/service"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type connectionService struct {
	txManager repository.TransactionManager
	repo      repository.ConnectionRepository
	qrCode    service.QRCodeService
	logger    *slog.Logger
}

// ConnectionServiceParams holds dependencies for ConnectionService.
type ConnectionServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ConnectionRepo repository.ConnectionRepository
	QRCodeService  service.QRCodeService
	Logger         *slog.Logger
}

// NewConnectionService creates a new consumer connection service.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		txManager: params.TxManager,
		repo:      params.ConnectionRepo,
		qrCode:    params.QRCodeService,
		logger:    params.Logger,
	}
}

func (srv *connectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListConnections returns the primary connection first, then the rest oldest first.
func (srv *connectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]*entity.ConsumerConnection, error) {
	conns, err := srv.repo.ListConnections(ctx, userID)
	if err != nil {
		return []*entity.ConsumerConnection{}, errors.Wrap(err, "failed to list connections")
	}

	return conns, nil
}

// CreateConnection stores a connection. The user's first connection, or one
// created with IsPrimary, becomes primary in the same transaction.
func (srv *connectionService) CreateConnection(ctx context.Context, userID uuid.UUID, input *usecase.CreateConnectionInput) (*entity.ConsumerConnection, error) {
	conn := &entity.ConsumerConnection{
		UserID:           userID,
		ConsumerNumber:   strings.TrimSpace(input.ConsumerNumber),
		MeterNumber:      strings.TrimSpace(input.MeterNumber),
		ElectricityBoard: strings.TrimSpace(input.ElectricityBoard),
		ConnectionType:   input.ConnectionType,
		PhaseType:        input.PhaseType,
		SanctionedLoadKW: input.SanctionedLoadKW,
		Address:          input.Address,
	}
	if conn.ConnectionType == "" {
		conn.ConnectionType = entity.ConnectionTypeDomestic
	}
	if conn.PhaseType == "" {
		conn.PhaseType = entity.PhaseTypeSingle
	}
	if err := validateConnection(conn); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ConnectionRepo()

		count, err := repo.CountConnections(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count connections")
		}

		if err := repo.CreateConnection(ctx, conn); err != nil {
			return mapConnectionError(err, "failed to create connection")
		}

		if count > 0 && !input.IsPrimary {
			return nil
		}

		if err := promoteConnection(ctx, repo, userID, conn.ID); err != nil {
			return err
		}
		conn.IsPrimary = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create connection", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create connection transaction")
	}

	return conn, nil
}

// UpdateConnection applies a patch. The primary flag is not touched.
func (srv *connectionService) UpdateConnection(ctx context.Context, userID, connectionID uuid.UUID, input *usecase.UpdateConnectionInput) (*entity.ConsumerConnection, error) {
	conn, err := srv.loadOwned(ctx, userID, connectionID, true)
	if err != nil {
		return nil, err
	}

	setIfPresent(&conn.ConsumerNumber, input.ConsumerNumber)
	setIfPresent(&conn.MeterNumber, input.MeterNumber)
	setIfPresent(&conn.ElectricityBoard, input.ElectricityBoard)
	setIfPresent(&conn.ConnectionType, input.ConnectionType)
	setIfPresent(&conn.PhaseType, input.PhaseType)
	setIfPresent(&conn.SanctionedLoadKW, input.SanctionedLoadKW)
	setIfPresent(&conn.Address, input.Address)

	if err := validateConnection(conn); err != nil {
		return nil, err
	}

	if err := srv.repo.UpdateConnection(ctx, conn); err != nil {
		return nil, mapConnectionError(err, "failed to update connection")
	}

	return conn, nil
}

// DeleteConnection removes a connection. Deleting the primary promotes the
// oldest remaining connection in the same transaction.
func (srv *connectionService) DeleteConnection(ctx context.Context, userID, connectionID uuid.UUID) error {
	conn, err := srv.loadOwned(ctx, userID, connectionID, true)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ConnectionRepo()

		if err := repo.DeleteConnection(ctx, connectionID); err != nil {
			return mapConnectionError(err, "failed to delete connection")
		}

		if !conn.IsPrimary {
			return nil
		}

		oldest, err := repo.FindOldestConnection(ctx, userID)
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find replacement primary connection")
		}

		if err := repo.MarkPrimary(ctx, oldest.ID); err != nil {
			return errors.Wrap(err, "failed to promote connection")
		}

		srv.log(ctx).Info("Promoted connection to primary", slog.Any("connectionID", oldest.ID))

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete connection transaction")
	}

	return nil
}

// SetPrimaryConnection clears the flag on every connection of the user and
// sets it on one, in a single transaction.
func (srv *connectionService) SetPrimaryConnection(ctx context.Context, userID, connectionID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, userID, connectionID, true); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return promoteConnection(ctx, repoFactory.ConnectionRepo(), userID, connectionID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to set primary connection", slog.Any("connectionID", connectionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute set primary transaction")
	}

	return nil
}

// ConnectionQRCode renders the connection's consumer number and board as a PNG.
func (srv *connectionService) ConnectionQRCode(ctx context.Context, userID, connectionID uuid.UUID) ([]byte, error) {
	conn, err := srv.loadOwned(ctx, userID, connectionID, false)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateConnectionQR(conn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate connection QR code")
	}

	return png, nil
}

func (srv *connectionService) loadOwned(ctx context.Context, userID, connectionID uuid.UUID, mutation bool) (*entity.ConsumerConnection, error) {
	conn, err := srv.repo.FindConnectionByID(ctx, connectionID)
	if err != nil {
		return nil, mapConnectionError(err, "failed to find connection")
	}

	if conn.UserID != userID {
		if mutation {
			return nil, errors.Wrap(domainerrors.ErrConnectionOwnershipViolation, connectionID.String())
		}

		return nil, errors.Wrap(domainerrors.ErrConnectionNotFound, connectionID.String())
	}

	return conn, nil
}

// promoteConnection must run inside a transaction: clear first, then set.
func promoteConnection(ctx context.Context, repo repository.ConnectionRepository, userID, connectionID uuid.UUID) error {
	if err := repo.ClearPrimary(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear primary connection")
	}
	if err := repo.MarkPrimary(ctx, connectionID); err != nil {
		return mapConnectionError(err, "failed to mark primary connection")
	}

	return nil
}

func mapConnectionError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrConnectionNotFound):
		return errors.Wrap(domainerrors.ErrConnectionNotFound, msg)
	case errors.Is(err, repository.ErrDuplicateConnection):
		return errors.Wrap(domainerrors.ErrConnectionAlreadyExists, msg)
	default:
		return errors.Wrap(err, msg)
	}
}

func validateConnection(c *entity.ConsumerConnection) error {
	switch {
	case c.ConsumerNumber == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "consumer number is required")
	case c.ElectricityBoard == "":
		return errors.Wrap(domainerrors.ErrValidationFailed, "electricity board is required")
	case !c.ConnectionType.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown connection type %q", c.ConnectionType)
	case !c.PhaseType.IsValid():
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown phase type %q", c.PhaseType)
	case c.SanctionedLoadKW < 0:
		return errors.Wrap(domainerrors.ErrValidationFailed, "sanctioned load must not be negative")
	}

	return nil
}
