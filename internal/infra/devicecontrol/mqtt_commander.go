// Package devicecontrol publishes device control commands over MQTT.
package devicecontrol

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"urjabandhu/config"
	"urjabandhu/internal/domain/lifecycle"
	"urjabandhu/internal/domain/service"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTopicPrefix = "urjabandhu"
	publishTimeout     = 5 * time.Second
	disconnectQuiesce  = 250
)

type mqttCommander struct {
	client      mqtt.Client
	topicPrefix string
	qos         byte
	logger      *slog.Logger
}

// Topic returns the control topic for a device: {prefix}/devices/{id}/control.
func Topic(prefix, deviceID string) string {
	return fmt.Sprintf("%s/devices/%s/control", prefix, deviceID)
}

// SendCommand publishes a retained command so a device that reconnects picks
// up its latest desired state.
func (c *mqttCommander) SendCommand(ctx context.Context, cmd *service.DeviceCommand) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return errors.WithStack(err)
	}

	topic := Topic(c.topicPrefix, cmd.DeviceID.String())
	token := c.client.Publish(topic, c.qos, true, payload)

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !token.WaitTimeout(timeout) {
		return errors.Errorf("timed out publishing to %s", topic)
	}
	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", topic)
	}

	c.logger.Debug("Device command published",
		slog.String("topic", topic),
		slog.String("state", cmd.State),
		slog.Int("power_level", cmd.PowerLevel),
	)

	return nil
}

func (c *mqttCommander) Close() error {
	if c.client.IsConnected() {
		c.client.Disconnect(disconnectQuiesce)
	}

	return nil
}

type noopCommander struct {
	logger *slog.Logger
}

func (c *noopCommander) SendCommand(_ context.Context, cmd *service.DeviceCommand) error {
	c.logger.Debug("[NoopMQTT] Broker not configured, command not sent",
		slog.String("device_id", cmd.DeviceID.String()),
		slog.String("state", cmd.State),
	)

	return nil
}

func (c *noopCommander) Close() error {
	return nil
}

// Params holds the dependencies for NewDeviceCommander.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDeviceCommander connects to the configured broker on start. Without a
// broker URL commands are logged and dropped.
func NewDeviceCommander(params Params) service.DeviceCommander {
	cfg := params.Config.MQTT
	logger := params.Logger
	if cfg == nil || cfg.BrokerURL == "" {
		logger.Info("MQTT not configured, device commands are not delivered")

		return &noopCommander{logger: logger}
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetKeepAlive(30 * time.Second).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Error("MQTT connection lost", slog.Any("error", err))
	}

	prefix := cfg.TopicPrefix
	if prefix == "" {
		prefix = defaultTopicPrefix
	}

	commander := &mqttCommander{
		client:      mqtt.NewClient(opts),
		topicPrefix: prefix,
		qos:         cfg.QoS,
		logger:      logger,
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			token := commander.client.Connect()
			if !token.WaitTimeout(lifecycle.DefaultTimeout) {
				// ConnectRetry keeps trying in the background.
				logger.Warn("MQTT broker not reachable yet", slog.String("broker", cfg.BrokerURL))

				return nil
			}

			return errors.WithStack(token.Error())
		},
		OnStop: func(context.Context) error {
			return commander.Close()
		},
	})

	return commander
}
