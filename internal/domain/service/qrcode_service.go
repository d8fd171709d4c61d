package service

import "urjabandhu/internal/domain/entity"

// QRCodeService renders consumer connection details as QR codes.
type QRCodeService interface {
	// GenerateConnectionQR returns a PNG encoding the connection's consumer number and board.
	GenerateConnectionQR(conn *entity.ConsumerConnection) ([]byte, error)

	// ParseConnectionQR reverses GenerateConnectionQR's payload.
	ParseConnectionQR(data string) (consumerNumber, board string, err error)
}
