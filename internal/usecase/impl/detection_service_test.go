package impl

import (
	"context"
	"testing"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"
	mockSvc "urjabandhu/internal/mocks/service"
	"urjabandhu/internal/usecase"
	"urjabandhu/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detectionServiceFixtures struct {
	service  usecase.DetectionUsecase
	storage  *mockSvc.MockPhotoStorage
	detector *mockSvc.MockDeviceDetector
}

func createTestDetectionService(t *testing.T) detectionServiceFixtures {
	storage := mockSvc.NewMockPhotoStorage(t)
	detector := mockSvc.NewMockDeviceDetector(t)

	service := NewDetectionService(DetectionServiceParams{
		PhotoStorage:   storage,
		DeviceDetector: detector,
		Logger:         newDiscardLogger(),
	})

	return detectionServiceFixtures{service: service, storage: storage, detector: detector}
}

func TestDetectionService_DetectDevice(t *testing.T) {
	fx := createTestDetectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	photo := []byte("jpeg bytes")
	key := "detections/" + userID.String() + "/" + util.Checksum(photo) + ".jpg"

	fx.detector.EXPECT().Enabled().Return(true)
	fx.storage.EXPECT().Upload(ctx, key, photo, "image/jpeg").Return(key, nil)
	fx.detector.EXPECT().Detect(ctx, &service.DetectionRequest{
		UserID:      userID.String(),
		PhotoKey:    key,
		ContentType: "image/jpeg",
	}).Return(&entity.DetectionResult{DetectedText: "LG 1.5 Ton", Confidence: 0.9, PhotoKey: key}, nil)

	result, err := fx.service.DetectDevice(ctx, userID, &usecase.DetectDeviceInput{Photo: photo, ContentType: "image/jpeg"})

	require.NoError(t, err)
	assert.Equal(t, "LG 1.5 Ton", result.DetectedText)
}

func TestDetectionService_DetectDevice_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		input   *usecase.DetectDeviceInput
		wantErr error
	}{
		{
			name:    "backend disabled",
			enabled: false,
			input:   &usecase.DetectDeviceInput{Photo: []byte("x"), ContentType: "image/png"},
			wantErr: domainerrors.ErrDetectionUnavailable,
		},
		{
			name:    "empty photo",
			enabled: true,
			input:   &usecase.DetectDeviceInput{ContentType: "image/png"},
			wantErr: domainerrors.ErrInvalidPhoto,
		},
		{
			name:    "unsupported type",
			enabled: true,
			input:   &usecase.DetectDeviceInput{Photo: []byte("x"), ContentType: "application/pdf"},
			wantErr: domainerrors.ErrInvalidPhoto,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDetectionService(t)
			fx.detector.EXPECT().Enabled().Return(tt.enabled)

			_, err := fx.service.DetectDevice(context.Background(), uuid.New(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDetectionService_DetectDevice_DetectorFailure(t *testing.T) {
	fx := createTestDetectionService(t)

	ctx := context.Background()
	userID := uuid.New()
	photo := []byte("png bytes")

	fx.detector.EXPECT().Enabled().Return(true)
	fx.storage.EXPECT().Upload(ctx, PhotoKey(userID, photo, "png"), photo, "image/png").Return("stored", nil)
	fx.detector.EXPECT().Detect(ctx, &service.DetectionRequest{
		UserID:      userID.String(),
		PhotoKey:    "stored",
		ContentType: "image/png",
	}).Return(nil, errors.New("lambda timeout"))

	_, err := fx.service.DetectDevice(ctx, userID, &usecase.DetectDeviceInput{Photo: photo, ContentType: "image/png"})

	require.Error(t, err)
}

func TestPhotoKey_SamePhotoSameKey(t *testing.T) {
	userID := uuid.New()

	a := PhotoKey(userID, []byte("same"), "jpg")
	b := PhotoKey(userID, []byte("same"), "jpg")
	c := PhotoKey(userID, []byte("other"), "jpg")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
