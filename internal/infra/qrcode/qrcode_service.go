package qrcode

import (
	"encoding/json"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"
	"urjabandhu/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	connectionPayloadType = "consumer_connection"
	defaultSize           = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ConnectionPayload is the JSON carried by a connection QR code.
type ConnectionPayload struct {
	Type             string `json:"type"`
	ConsumerNumber   string `json:"consumer_number"`
	ElectricityBoard string `json:"electricity_board"`
	MeterNumber      string `json:"meter_number,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// NewQRCodeServiceFromConfig is the fx constructor; a missing section uses defaults.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateConnectionQR renders the connection's identifying fields as a PNG.
func (s *qrcodeService) GenerateConnectionQR(conn *entity.ConsumerConnection) ([]byte, error) {
	if conn == nil || conn.ConsumerNumber == "" {
		return nil, errors.New("consumer number is required")
	}

	jsonData, err := json.Marshal(ConnectionPayload{
		Type:             connectionPayloadType,
		ConsumerNumber:   conn.ConsumerNumber,
		ElectricityBoard: conn.ElectricityBoard,
		MeterNumber:      conn.MeterNumber,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) ParseConnectionQR(data string) (string, string, error) {
	var payload ConnectionPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return "", "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if payload.Type != connectionPayloadType {
		return "", "", errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.ConsumerNumber == "" {
		return "", "", errors.New("QR code has no consumer number")
	}

	return payload.ConsumerNumber, payload.ElectricityBoard, nil
}
