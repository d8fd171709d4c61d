package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const configFileName = "config.yaml"

// searchDirs covers running from the repo root, cmd/<binary> and tests in
// nested packages.
//
//nolint:gochecknoglobals
var searchDirs = []string{".", "config", "../config", "../../config"}

// New loads config.yaml, overlays environment variables, applies defaults
// and validates. A .env file, when present, seeds the environment first.
func New() (*Config, error) {
	loadDotEnv(".env", "../.env", "../../.env")

	path, err := findConfigFile(searchDirs)
	if err != nil {
		return nil, err
	}

	cfg, err := load(path, os.Environ())
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// POSTGRES_REPLICAS_<n>_HOST and friends; the list is not expressible in YAML keys.
	cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)

	return cfg, nil
}

func findConfigFile(dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %v", configFileName, dirs)
}

// load reads the YAML file, then environ on top of it. POSTGRES_SSL_MODE and
// POSTGRES_SSLMODE both land on postgres.sslMode when the file defines it.
func load(path string, environ []string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	tree := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		EnvironFunc: func() []string { return environ },
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, tree), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	cfg := new(Config)
	err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

// loadDotEnv loads the first readable file. Variables already set win.
func loadDotEnv(paths ...string) {
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}

func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"
		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
