package detection

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLambda struct {
	input *lambda.InvokeInput
	out   *lambda.InvokeOutput
	err   error
}

func (f *fakeLambda) Invoke(_ context.Context, params *lambda.InvokeInput, _ ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	f.input = params

	return f.out, f.err
}

func newTestDetector(client lambdaInvoker) *lambdaDetector {
	return &lambdaDetector{
		client:       client,
		functionName: "device-detect",
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestLambdaDetector_Detect(t *testing.T) {
	payload, err := json.Marshal(entity.DetectionResult{
		DetectedText: "LG 1.5 Ton Split AC",
		Confidence:   0.92,
		DeviceMatches: []entity.DeviceMatch{
			{Name: "Split AC", Type: entity.DeviceTypeHVAC, Brand: "LG", PowerRating: 1500, Confidence: 0.9},
		},
	})
	require.NoError(t, err)

	client := &fakeLambda{out: &lambda.InvokeOutput{Payload: payload}}
	detector := newTestDetector(client)

	result, err := detector.Detect(context.Background(), &service.DetectionRequest{UserID: "u", PhotoKey: "detections/u/abc.jpg", ContentType: "image/jpeg"})
	require.NoError(t, err)

	assert.Equal(t, "device-detect", aws.ToString(client.input.FunctionName))
	assert.Equal(t, "detections/u/abc.jpg", result.PhotoKey)
	assert.InDelta(t, 0.92, result.Confidence, 1e-9)
	require.Len(t, result.DeviceMatches, 1)
	assert.Equal(t, entity.DeviceTypeHVAC, result.DeviceMatches[0].Type)

	var sent service.DetectionRequest
	require.NoError(t, json.Unmarshal(client.input.Payload, &sent))
	assert.Equal(t, "image/jpeg", sent.ContentType)
}

func TestLambdaDetector_Detect_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeLambda
	}{
		{"invoke error", &fakeLambda{err: errors.New("timeout")}},
		{"function error", &fakeLambda{out: &lambda.InvokeOutput{FunctionError: aws.String("Unhandled")}}},
		{"malformed payload", &fakeLambda{out: &lambda.InvokeOutput{Payload: []byte("{")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestDetector(tt.client).Detect(context.Background(), &service.DetectionRequest{PhotoKey: "k"})
			assert.ErrorIs(t, err, domainerrors.ErrDetectionFailed)
		})
	}
}

func TestLambdaDetector_EmptyMatchesBecomeEmptySlice(t *testing.T) {
	client := &fakeLambda{out: &lambda.InvokeOutput{Payload: []byte(`{"detected_text":"","confidence":0}`)}}

	result, err := newTestDetector(client).Detect(context.Background(), &service.DetectionRequest{PhotoKey: "k"})
	require.NoError(t, err)
	assert.NotNil(t, result.DeviceMatches)
	assert.Empty(t, result.DeviceMatches)
}

func TestNewDeviceDetector_NotConfigured(t *testing.T) {
	detector, err := NewDeviceDetector(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.False(t, detector.Enabled())
	_, err = detector.Detect(context.Background(), &service.DetectionRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrDetectionUnavailable)
}
