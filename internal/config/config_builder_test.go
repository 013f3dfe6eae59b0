package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validBase returns a config that passes validation; tests overlay it with
// the fields under test.
func validBase() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/profiles"
	cfg.App.TokenHashKey = "token-hash-key"
	cfg.App.SessionSignKey = "session-sign-key"
	return cfg
}

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier sources winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		validBase(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/profiles", cfg.Storage.DB.DSN)
}

// TestBuild_EarlierSourceWins verifies mergo does not overwrite a field that
// an earlier (higher-priority) source already set.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	higher := validBase()
	higher.Server.HTTPAddress = "0.0.0.0:9000"
	b.configs = append(b.configs,
		higher,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:8080"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
}

// TestBuild_ValidationRejectsMissingDSN verifies the validation pass runs on
// the merged result.
func TestBuild_ValidationRejectsMissingDSN(t *testing.T) {
	b := newConfigBuilder()
	cfg := validBase()
	cfg.Storage.DB.DSN = ""
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_ValidationRejectsBadPattern verifies that an uncompilable
// profile pattern fails validation.
func TestBuild_ValidationRejectsBadPattern(t *testing.T) {
	b := newConfigBuilder()
	cfg := validBase()
	cfg.Profile.ScreenName.Pattern = "([unclosed"
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidProfileRules)
}

// TestBuild_ValidationRejectsRecaptchaWithoutSecret verifies that requiring
// CAPTCHA without a secret is rejected.
func TestBuild_ValidationRejectsRecaptchaWithoutSecret(t *testing.T) {
	b := newConfigBuilder()
	cfg := validBase()
	cfg.Recaptcha.Required = true
	cfg.Recaptcha.Secret = ""
	b.configs = append(b.configs, cfg)

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidRecaptchaConfigs)
}

// TestWithJSON_MergesFileValues verifies that a JSON file referenced by an
// earlier source is loaded and merged.
func TestWithJSON_MergesFileValues(t *testing.T) {
	jsonCfg := StructuredJSONConfig{}
	jsonCfg.App.SessionIssuer = "json-issuer"
	jsonCfg.App.SessionDuration = Duration(time.Hour)
	path := writeTempJSONConfig(t, jsonCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.SessionIssuer)
	assert.Equal(t, time.Hour, b.configs[1].App.SessionDuration)
}

// TestWithJSON_MissingFile verifies that a dangling config path surfaces as
// a builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithDefaults_FillsUnsetFields verifies that defaults are merged last
// and only fill gaps.
func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/profiles"}},
		App: App{
			TokenHashKey:   "k1",
			SessionSignKey: "k2",
		},
	}
	b.configs = append(b.configs, cfg)

	merged, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultScreenNamePattern, merged.Profile.ScreenName.Pattern)
	assert.Equal(t, DefaultRecaptchaVerifyURL, merged.Recaptcha.VerifyURL)
	assert.Equal(t, "profile-core", merged.App.SessionIssuer)
	assert.Equal(t, "k1", merged.App.TokenHashKey)
}
