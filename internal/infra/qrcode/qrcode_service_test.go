package qrcode

import (
	"encoding/json"
	"testing"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Non-positive size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestNewQRCodeServiceFromConfig_MissingSection(t *testing.T) {
	svc := NewQRCodeServiceFromConfig(&config.Config{})

	png, err := svc.GenerateConnectionQR(&entity.ConsumerConnection{ConsumerNumber: "123"})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_GenerateConnectionQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateConnectionQR(&entity.ConsumerConnection{
		ConsumerNumber:   "110012345678",
		ElectricityBoard: "BESCOM",
	})
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateConnectionQR_MissingConsumerNumber(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateConnectionQR(&entity.ConsumerConnection{ElectricityBoard: "BESCOM"})
	assert.Error(t, err)

	_, err = svc.GenerateConnectionQR(nil)
	assert.Error(t, err)
}

func TestQRCodeService_ParseConnectionQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	valid, err := json.Marshal(ConnectionPayload{
		Type:             connectionPayloadType,
		ConsumerNumber:   "110012345678",
		ElectricityBoard: "MSEDCL",
	})
	require.NoError(t, err)

	tests := []struct {
		name         string
		data         string
		wantConsumer string
		wantBoard    string
		wantErr      bool
	}{
		{"valid payload", string(valid), "110012345678", "MSEDCL", false},
		{"wrong type", `{"type":"subscription","consumer_number":"1"}`, "", "", true},
		{"missing consumer number", `{"type":"consumer_connection"}`, "", "", true},
		{"invalid json", `not-json`, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, board, err := svc.ParseConnectionQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantConsumer, consumer)
			assert.Equal(t, tt.wantBoard, board)
		})
	}
}
