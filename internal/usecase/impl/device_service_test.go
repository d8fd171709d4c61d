package impl

import (
	"context"
	"testing"

	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/repository"
	mockRepo "urjabandhu/internal/mocks/repository"
	mockSvc "urjabandhu/internal/mocks/service"
	"urjabandhu/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service     usecase.DeviceUsecase
	txManager   *mockRepo.MockTransactionManager
	deviceRepo  *mockRepo.MockDeviceRepository
	controlRepo *mockRepo.MockDeviceControlRepository
	commander   *mockSvc.MockDeviceCommander
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	controlRepo := mockRepo.NewMockDeviceControlRepository(t)
	commander := mockSvc.NewMockDeviceCommander(t)

	service := NewDeviceService(DeviceServiceParams{
		TxManager:   txManager,
		DeviceRepo:  deviceRepo,
		ControlRepo: controlRepo,
		Commander:   commander,
		Logger:      newDiscardLogger(),
	})

	return deviceServiceFixtures{
		service:     service,
		txManager:   txManager,
		deviceRepo:  deviceRepo,
		controlRepo: controlRepo,
		commander:   commander,
	}
}

func TestDeviceService_CreateDevice_CreatesDefaultControl(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	txControlRepo := mockRepo.NewMockDeviceControlRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DeviceRepo().Return(txDeviceRepo)
		f.EXPECT().DeviceControlRepo().Return(txControlRepo)
	})
	txDeviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.Device")).
		Run(func(_ context.Context, d *entity.Device) {
			d.ID = deviceID
		}).
		Return(nil)
	txControlRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.DeviceControl) bool {
			return c.DeviceID == deviceID && c.CanSetPowerLevel && c.CurrentState == entity.ControlStateOn
		})).
		Return(nil)

	device, err := fx.service.CreateDevice(ctx, userID, &usecase.CreateDeviceInput{
		Name:        " Bedroom AC ",
		Type:        entity.DeviceTypeHVAC,
		PowerRating: "1500",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bedroom AC", device.Name)
	assert.Equal(t, 1500.0, device.PowerRating)
	assert.Equal(t, entity.DeviceStatusActive, device.Status)
	assert.Equal(t, entity.DefaultEfficiencyScore, device.EfficiencyScore)
	assert.Zero(t, device.CurrentConsumption)
}

func TestDeviceService_CreateDevice_InvalidPowerRating(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.CreateDevice(context.Background(), uuid.New(), &usecase.CreateDeviceInput{
		Name:        "Fan",
		PowerRating: "abc",
	})

	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPowerRating)
}

func TestDeviceService_CreateDevice_TransactionFails(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	txControlRepo := mockRepo.NewMockDeviceControlRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DeviceRepo().Return(txDeviceRepo)
		f.EXPECT().DeviceControlRepo().Return(txControlRepo)
	})
	txDeviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(nil)
	txControlRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db error"))

	device, err := fx.service.CreateDevice(ctx, uuid.New(), &usecase.CreateDeviceInput{Name: "Fan"})

	assert.Nil(t, device)
	assert.Error(t, err)
}

func TestParsePowerRating(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "", want: 0},
		{raw: "  ", want: 0},
		{raw: "60", want: 60},
		{raw: "7.5", want: 7.5},
		{raw: "abc", wantErr: true},
		{raw: "-10", wantErr: true},
		{raw: "NaN", wantErr: true},
		{raw: "nan", wantErr: true},
		{raw: "Inf", wantErr: true},
		{raw: "+Inf", wantErr: true},
		{raw: "-Infinity", wantErr: true},
		{raw: "1e400", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parsePowerRating(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidPowerRating)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeviceService_GetDevice_ForeignIsNotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: uuid.New()}, nil)

	_, err := fx.service.GetDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_DeleteDevice_ForeignIsForbidden(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeleteDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestDeviceService_UpdateDevice_Patch(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{
		ID: uuid.New(), UserID: userID, Name: "Fan", Type: entity.DeviceTypeAppliance,
		Status: entity.DeviceStatusActive, EfficiencyScore: 80,
	}
	newName := "Ceiling fan"
	newRating := "75"

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.deviceRepo.EXPECT().UpdateDevice(ctx, device).Return(nil)

	updated, err := fx.service.UpdateDevice(ctx, userID, device.ID, &usecase.UpdateDeviceInput{
		Name:        &newName,
		PowerRating: &newRating,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ceiling fan", updated.Name)
	assert.Equal(t, 75.0, updated.PowerRating)
	assert.Equal(t, 80, updated.EfficiencyScore)
}

func TestDeviceService_UpdateDevice_InvalidEfficiency(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), UserID: userID, Name: "Fan", Type: entity.DeviceTypeOther, Status: entity.DeviceStatusActive}
	score := 140

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

	_, err := fx.service.UpdateDevice(ctx, userID, device.ID, &usecase.UpdateDeviceInput{EfficiencyScore: &score})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_GetDeviceControl_Missing(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	fx.controlRepo.EXPECT().FindByDeviceID(ctx, deviceID).Return(nil, repository.ErrDeviceControlNotFound)

	_, err := fx.service.GetDeviceControl(ctx, userID, deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceControlNotFound)
}

func TestDeviceService_UpdateDeviceControl_TurnOff(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.Device{ID: uuid.New(), UserID: userID, Status: entity.DeviceStatusActive}
	control := &entity.DeviceControl{DeviceID: device.ID, CanTurnOnOff: true, CurrentState: entity.ControlStateOn, CurrentPowerLevel: 100}
	off := entity.ControlStateOff

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.controlRepo.EXPECT().FindByDeviceID(ctx, device.ID).Return(control, nil)

	txControlRepo := mockRepo.NewMockDeviceControlRepository(t)
	txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DeviceControlRepo().Return(txControlRepo)
		f.EXPECT().DeviceRepo().Return(txDeviceRepo)
	})
	txControlRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.DeviceControl")).Return(nil)
	txDeviceRepo.EXPECT().
		UpdateDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool { return d.Status == entity.DeviceStatusInactive })).
		Return(nil)
	fx.commander.EXPECT().SendCommand(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.UpdateDeviceControl(ctx, userID, device.ID, &usecase.UpdateDeviceControlInput{State: &off})

	require.NoError(t, err)
	assert.Equal(t, entity.ControlStateOff, updated.CurrentState)
	assert.Equal(t, entity.ControlStateOn, control.CurrentState, "stored control must not be mutated before commit")
}

func TestDeviceService_UpdateDeviceControl_PowerLevelUnsupported(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	level := 50

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.Device{ID: deviceID, UserID: userID}, nil)
	fx.controlRepo.EXPECT().FindByDeviceID(ctx, deviceID).
		Return(&entity.DeviceControl{DeviceID: deviceID, CanTurnOnOff: true}, nil)

	_, err := fx.service.UpdateDeviceControl(ctx, userID, deviceID, &usecase.UpdateDeviceControlInput{PowerLevel: &level})

	assert.ErrorIs(t, err, domainerrors.ErrCapabilityNotSupported)
}

func TestDeviceService_ListDevices_ErrorReturnsEmptySlice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.deviceRepo.EXPECT().ListDevices(ctx, userID, entity.DeviceFilter{}).Return(nil, errors.New("db error"))

	devices, err := fx.service.ListDevices(ctx, userID, entity.DeviceFilter{})

	require.Error(t, err)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}
