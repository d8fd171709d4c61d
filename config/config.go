package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "5MB"
	defaultEnergyRate         = 6.5
	defaultCurrency           = "INR"
	defaultRealtimeInterval   = 5 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowOrigins       []string `json:"allowOrigins" yaml:"allowOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Energy holds defaults applied to newly created profiles
	Energy *EnergyConfig `json:"energy" yaml:"energy"`

	// Analytics controls fixture fallback for empty dashboards
	Analytics *AnalyticsConfig `json:"analytics" yaml:"analytics"`

	// Realtime configures the websocket consumption feed
	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for consumer connection QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for automation event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Storage configuration for device photo uploads
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Detection configuration for the device recognition function
	Detection *DetectionConfig `json:"detection" yaml:"detection"`

	// Alerts configuration for SNS alert fan-out
	Alerts *AlertsConfig `json:"alerts" yaml:"alerts"`

	// MQTT configuration for device command publishing
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// EnergyConfig defines default tariff settings
type EnergyConfig struct {
	DefaultRate     float64 `json:"defaultRate" yaml:"defaultRate"`
	DefaultCurrency string  `json:"defaultCurrency" yaml:"defaultCurrency"`
}

// AnalyticsConfig defines analytics behaviour
type AnalyticsConfig struct {
	// FixtureFallback serves generated demo data when no live rows exist
	FixtureFallback bool `json:"fixtureFallback" yaml:"fixtureFallback"`
	// MovingAverageWindow is the window used for predictions
	MovingAverageWindow int `json:"movingAverageWindow" yaml:"movingAverageWindow"`
}

// RealtimeConfig defines websocket feed settings
type RealtimeConfig struct {
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines event publishing configuration
type PubSubConfig struct {
	// Provider type: "local", "google" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// PushAudience is the expected audience of push OIDC tokens. Empty means
	// the URL the push request was sent to.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// AMQP URL and exchange (for rabbitmq provider)
	AMQPURL    string `json:"amqpUrl" yaml:"amqpUrl"`
	Exchange   string `json:"exchange" yaml:"exchange"`
	RoutingKey string `json:"routingKey" yaml:"routingKey"`
}

// StorageConfig defines the blob bucket used for device photos.
// BucketURL accepts any gocloud URL: s3://, gs://, file:// or mem://
type StorageConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	Prefix    string `json:"prefix" yaml:"prefix"`
}

// DetectionConfig defines the device recognition function
type DetectionConfig struct {
	Region       string `json:"region" yaml:"region"`
	FunctionName string `json:"functionName" yaml:"functionName"`
}

// AlertsConfig defines SNS alert delivery
type AlertsConfig struct {
	Region   string `json:"region" yaml:"region"`
	TopicARN string `json:"topicArn" yaml:"topicArn"`
}

// MQTTConfig defines the broker receiving device commands
type MQTTConfig struct {
	BrokerURL   string `json:"brokerUrl" yaml:"brokerUrl"`
	ClientID    string `json:"clientId" yaml:"clientId"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
	QoS         byte   `json:"qos" yaml:"qos"`
}

// Validate reports missing settings the service cannot start without.
func (cfg *Config) Validate() error {
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is required")
	}
	if strings.TrimSpace(cfg.SecretKey.Access) == "" || strings.TrimSpace(cfg.SecretKey.Refresh) == "" {
		return errors.New("secretKey.access and secretKey.refresh are required")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Energy == nil {
		cfg.Energy = &EnergyConfig{}
	}
	if cfg.Energy.DefaultRate <= 0 {
		cfg.Energy.DefaultRate = defaultEnergyRate
	}
	if cfg.Energy.DefaultCurrency == "" {
		cfg.Energy.DefaultCurrency = defaultCurrency
	}
	if cfg.Analytics == nil {
		cfg.Analytics = &AnalyticsConfig{FixtureFallback: true}
	}
	if cfg.Analytics.MovingAverageWindow <= 0 {
		cfg.Analytics.MovingAverageWindow = 3
	}
	if cfg.Realtime == nil {
		cfg.Realtime = &RealtimeConfig{}
	}
	if cfg.Realtime.Interval <= 0 {
		cfg.Realtime.Interval = defaultRealtimeInterval
	}
}
