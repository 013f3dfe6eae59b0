package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// string-friendly [Duration] type so operators can write "30s" instead of
// nanosecond integers.
type StructuredJSONConfig struct {
	App struct {
		TokenHashKey    string   `json:"token_hash_key"`
		SessionSignKey  string   `json:"session_sign_key"`
		SessionIssuer   string   `json:"session_issuer"`
		SessionDuration Duration `json:"session_duration"`
		Version         string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Profile struct {
		Name       JSONFieldRule `json:"name,omitempty"`
		Text       JSONFieldRule `json:"text,omitempty"`
		ScreenName JSONFieldRule `json:"sn,omitempty"`
	} `json:"profile,omitempty"`

	Recaptcha struct {
		Secret    string   `json:"secret"`
		VerifyURL string   `json:"verify_url"`
		Timeout   Duration `json:"timeout"`
		Required  bool     `json:"required"`
	} `json:"recaptcha,omitempty"`
}

// JSONFieldRule is the JSON form of [FieldRule].
type JSONFieldRule struct {
	Pattern string `json:"pattern"`
	Message string `json:"message"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenHashKey:    jsonCfg.App.TokenHashKey,
			SessionSignKey:  jsonCfg.App.SessionSignKey,
			SessionIssuer:   jsonCfg.App.SessionIssuer,
			SessionDuration: time.Duration(jsonCfg.App.SessionDuration),
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Profile: Profile{
			Name:       FieldRule(jsonCfg.Profile.Name),
			Text:       FieldRule(jsonCfg.Profile.Text),
			ScreenName: FieldRule(jsonCfg.Profile.ScreenName),
		},
		Recaptcha: Recaptcha{
			Secret:    jsonCfg.Recaptcha.Secret,
			VerifyURL: jsonCfg.Recaptcha.VerifyURL,
			Timeout:   time.Duration(jsonCfg.Recaptcha.Timeout),
			Required:  jsonCfg.Recaptcha.Required,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
