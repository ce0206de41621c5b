package config

import (
	"aggregat4/cspenv/internal/domain"
	"aggregat4/cspenv/internal/logging"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kirsle/configdir"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

var logger = logging.ForComponent("internal.config")

const EnvPrefix = "CSP_"

type binding struct {
	Env string
	Key string
}

// bindings maps environment variables to record keys. Order is the order of the
// record fields and is kept when rendering.
var bindings = []binding{
	{"CSP_PRODUCTION", "production"},
	{"CSP_API_SERVER_URL", "apiServerUrl"},
	{"CSP_AUTH0_URL", "auth0.url"},
	{"CSP_AUTH0_AUDIENCE", "auth0.audience"},
	{"CSP_AUTH0_CLIENT_ID", "auth0.clientId"},
	{"CSP_AUTH0_CALLBACK_URL", "auth0.callbackURL"},
}

func keyForEnv(name string) string {
	for _, b := range bindings {
		if b.Env == name {
			return b.Key
		}
	}
	return ""
}

type Options struct {
	// ConfigFile is a JSON file with the same keys as the record. Empty means none.
	ConfigFile string
	// ConfigFileOptional skips ConfigFile silently when it does not exist.
	ConfigFileOptional bool
	// EnvFile is a dotenv file with CSP_ variables. Empty means none.
	EnvFile string
}

func GetDefaultConfigPath() string {
	return filepath.Join(configdir.LocalConfig("cspenv"), "cspenv.json")
}

// Load overlays the config file, the env file and the process environment on top of
// base, in that order, and validates the result. base itself is never modified.
func Load(base domain.Environment, opts Options) (domain.Environment, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(base, "koanf"), nil); err != nil {
		return domain.Environment{}, fmt.Errorf("error loading compiled environment: %w", err)
	}

	if opts.ConfigFile != "" {
		if err := loadConfigFile(k, opts.ConfigFile, opts.ConfigFileOptional); err != nil {
			return domain.Environment{}, err
		}
	}

	if opts.EnvFile != "" {
		if err := loadEnvFile(k, opts.EnvFile); err != nil {
			return domain.Environment{}, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", keyForEnv), nil); err != nil {
		return domain.Environment{}, fmt.Errorf("error loading environment variables: %w", err)
	}

	var result domain.Environment
	if err := k.UnmarshalWithConf("", &result, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return domain.Environment{}, fmt.Errorf("error decoding configuration: %w", err)
	}
	if err := Validate(result); err != nil {
		return domain.Environment{}, err
	}
	return result, nil
}

func loadConfigFile(k *koanf.Koanf, path string, optional bool) error {
	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			logging.Debug(logger, "No config file, using compiled values", "path", path)
			return nil
		}
		return fmt.Errorf("error reading config file %s: %w", path, err)
	}
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("error loading config file %s: %w", path, err)
	}
	logging.Debug(logger, "Loaded config file", "path", path)
	return nil
}

func loadEnvFile(k *koanf.Koanf, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("error reading env file %s: %w", path, err)
	}
	overrides := make(map[string]any, len(values))
	for name, value := range values {
		key := keyForEnv(name)
		if key == "" {
			if strings.HasPrefix(name, EnvPrefix) {
				logging.Warn(logger, "Ignoring unknown variable in env file", "variable", name, "path", path)
			}
			continue
		}
		overrides[key] = value
	}
	if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}
	logging.Debug(logger, "Loaded env file", "path", path, "variables", len(overrides))
	return nil
}

// EnvMap returns the record as CSP_ environment variables, the inverse of the
// bindings Load reads.
func EnvMap(e domain.Environment) map[string]string {
	values := map[string]string{
		"production":        strconv.FormatBool(e.Production),
		"apiServerUrl":      e.APIServerURL,
		"auth0.url":         e.Auth0.DomainPrefix,
		"auth0.audience":    e.Auth0.Audience,
		"auth0.clientId":    e.Auth0.ClientID,
		"auth0.callbackURL": e.Auth0.CallbackURL,
	}
	result := make(map[string]string, len(bindings))
	for _, b := range bindings {
		result[b.Env] = values[b.Key]
	}
	return result
}
