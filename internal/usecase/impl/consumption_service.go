package impl

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"time"

	"urjabandhu/config"
	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/analytics"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var consumptionCSVHeader = []string{"date", "consumption_kwh", "cost", "peak_demand_kw", "source"}

type consumptionService struct {
	repo        repository.ConsumptionRepository
	deviceRepo  repository.DeviceRepository
	profileRepo repository.ProfileRepository
	analytics   usecase.AnalyticsUsecase
	defaults    profileDefaults
	logger      *slog.Logger
	now         func() time.Time
}

// ConsumptionServiceParams holds dependencies for ConsumptionService.
type ConsumptionServiceParams struct {
	fx.In

	ConsumptionRepo repository.ConsumptionRepository
	DeviceRepo      repository.DeviceRepository
	ProfileRepo     repository.ProfileRepository
	Analytics       usecase.AnalyticsUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewConsumptionService creates the consumption service.
func NewConsumptionService(params ConsumptionServiceParams) usecase.ConsumptionUsecase {
	return &consumptionService{
		repo:        params.ConsumptionRepo,
		deviceRepo:  params.DeviceRepo,
		profileRepo: params.ProfileRepo,
		analytics:   params.Analytics,
		defaults:    newProfileDefaults(params.Config),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *consumptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListConsumption returns readings in the filter window, oldest first.
func (srv *consumptionService) ListConsumption(ctx context.Context, userID uuid.UUID, filter entity.ConsumptionFilter) ([]*entity.ConsumptionRecord, error) {
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return []*entity.ConsumptionRecord{}, errors.Wrap(domainerrors.ErrValidationFailed, "to must not be before from")
	}

	records, err := srv.repo.ListConsumption(ctx, userID, filter)
	if err != nil {
		return []*entity.ConsumptionRecord{}, errors.Wrap(err, "failed to list consumption")
	}

	return records, nil
}

// RecordConsumption stores a reading. The cost is derived from the profile's
// tariff when the caller does not supply it.
func (srv *consumptionService) RecordConsumption(ctx context.Context, userID uuid.UUID, input *usecase.RecordConsumptionInput) (*entity.ConsumptionRecord, error) {
	if input.ConsumptionKWh < 0 || input.PeakDemandKW < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "consumption and peak demand must not be negative")
	}

	if input.DeviceID != nil {
		if _, err := loadOwnedDevice(ctx, srv.deviceRepo, userID, *input.DeviceID, true); err != nil {
			return nil, err
		}
	}

	record := &entity.ConsumptionRecord{
		UserID:         userID,
		DeviceID:       input.DeviceID,
		RecordedAt:     input.RecordedAt,
		ConsumptionKWh: input.ConsumptionKWh,
		PeakDemandKW:   input.PeakDemandKW,
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = srv.now()
	}

	if input.Cost != nil {
		record.Cost = *input.Cost
	} else {
		rate, err := srv.rate(ctx, userID)
		if err != nil {
			return nil, err
		}
		record.Cost = input.ConsumptionKWh * rate
	}

	if err := srv.repo.CreateConsumption(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record consumption")
	}

	return record, nil
}

func (srv *consumptionService) rate(ctx context.Context, userID uuid.UUID) (float64, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return srv.defaults.rate, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to load tariff")
	}

	return profile.EnergyRate, nil
}

// ExportConsumptionCSV writes one row per bucket of the range's time series.
func (srv *consumptionService) ExportConsumptionCSV(ctx context.Context, userID uuid.UUID, r analytics.TimeRange, w io.Writer) error {
	series, err := srv.analytics.TimeSeries(ctx, userID, r)
	if err != nil {
		return errors.Wrap(err, "failed to build export series")
	}

	layout := time.DateOnly
	if r.Hourly() {
		layout = time.RFC3339
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(consumptionCSVHeader); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, p := range series.Points {
		row := []string{
			p.Timestamp.Format(layout),
			formatAmount(p.Consumption),
			formatAmount(p.Cost),
			formatAmount(p.PeakDemandKW),
			string(p.Source),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "failed to flush csv")
	}

	srv.log(ctx).Debug("Exported consumption", slog.Any("userID", userID), slog.Int("rows", len(series.Points)))

	return nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
