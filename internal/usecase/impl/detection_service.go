package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "urjabandhu/internal/delivery/context"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"
	"urjabandhu/internal/usecase"
	"urjabandhu/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type detectionService struct {
	storage  service.PhotoStorage
	detector service.DeviceDetector
	logger   *slog.Logger
}

// DetectionServiceParams holds dependencies for DetectionService.
type DetectionServiceParams struct {
	fx.In

	PhotoStorage   service.PhotoStorage
	DeviceDetector service.DeviceDetector
	Logger         *slog.Logger
}

// NewDetectionService creates the device detection service.
func NewDetectionService(params DetectionServiceParams) usecase.DetectionUsecase {
	return &detectionService{
		storage:  params.PhotoStorage,
		detector: params.DeviceDetector,
		logger:   params.Logger,
	}
}

func (srv *detectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DetectDevice stores the photo under a content-addressed key and runs the
// recognition function on it. Identical photos reuse the same key.
func (srv *detectionService) DetectDevice(ctx context.Context, userID uuid.UUID, input *usecase.DetectDeviceInput) (*entity.DetectionResult, error) {
	if !srv.detector.Enabled() {
		return nil, errors.Wrap(domainerrors.ErrDetectionUnavailable, "no detection backend configured")
	}
	if len(input.Photo) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhoto, "photo is empty")
	}

	ext, ok := util.ImageExtension(input.ContentType)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidPhoto, "unsupported content type %q", input.ContentType)
	}

	key := PhotoKey(userID, input.Photo, ext)
	storedKey, err := srv.storage.Upload(ctx, key, input.Photo, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}

	srv.log(ctx).Debug("Photo stored", slog.String("key", storedKey), slog.String("size", util.FormatBytes(int64(len(input.Photo)))))

	result, err := srv.detector.Detect(ctx, &service.DetectionRequest{
		UserID:      userID.String(),
		PhotoKey:    storedKey,
		ContentType: input.ContentType,
	})
	if err != nil {
		srv.log(ctx).Warn("Device detection failed", slog.String("key", storedKey), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to detect device")
	}

	return result, nil
}

// PhotoKey returns detections/{user}/{sha256}.{ext}.
func PhotoKey(userID uuid.UUID, photo []byte, ext string) string {
	return fmt.Sprintf("detections/%s/%s.%s", userID, util.Checksum(photo), ext)
}
