// Package detection invokes the device recognition function on AWS Lambda.
package detection

import (
	"context"
	"encoding/json"
	"log/slog"

	"urjabandhu/config"
	"urjabandhu/internal/domain/entity"
	domainerrors "urjabandhu/internal/domain/errors"
	"urjabandhu/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type lambdaInvoker interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type lambdaDetector struct {
	client       lambdaInvoker
	functionName string
	logger       *slog.Logger
}

// Detect invokes the function synchronously and decodes its DetectionResult.
func (d *lambdaDetector) Detect(ctx context.Context, req *service.DetectionRequest) (*entity.DetectionResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	out, err := d.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(d.functionName),
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        payload,
	})
	if err != nil {
		return nil, domainerrors.ErrDetectionFailed.WrapMessage(err.Error())
	}
	if out.FunctionError != nil {
		d.logger.Warn("Detection function returned an error",
			slog.String("function_error", aws.ToString(out.FunctionError)),
			slog.String("photo_key", req.PhotoKey),
		)

		return nil, domainerrors.ErrDetectionFailed.WrapMessage(aws.ToString(out.FunctionError))
	}

	var result entity.DetectionResult
	if err := json.Unmarshal(out.Payload, &result); err != nil {
		return nil, domainerrors.ErrDetectionFailed.WrapMessage("malformed detection response")
	}
	if result.DeviceMatches == nil {
		result.DeviceMatches = []entity.DeviceMatch{}
	}
	result.PhotoKey = req.PhotoKey

	return &result, nil
}

func (d *lambdaDetector) Enabled() bool {
	return true
}

type disabledDetector struct{}

func (disabledDetector) Detect(context.Context, *service.DetectionRequest) (*entity.DetectionResult, error) {
	return nil, domainerrors.ErrDetectionUnavailable
}

func (disabledDetector) Enabled() bool {
	return false
}

// Params holds the dependencies for NewDeviceDetector.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDeviceDetector returns a Lambda-backed detector, or one that always
// reports ErrDetectionUnavailable when no function is configured.
func NewDeviceDetector(params Params) (service.DeviceDetector, error) {
	cfg := params.Config.Detection
	if cfg == nil || cfg.FunctionName == "" {
		params.Logger.Info("Detection function not configured, device detection disabled")

		return disabledDetector{}, nil
	}

	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	return &lambdaDetector{
		client:       lambda.NewFromConfig(awsCfg),
		functionName: cfg.FunctionName,
		logger:       params.Logger,
	}, nil
}
