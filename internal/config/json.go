package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so operators can keep a single JSON file with
// all settings.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		InternalToken string   `json:"internal_token"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Jobs struct {
			Path string `json:"path"`
		} `json:"jobs,omitempty"`

		S3 struct {
			Endpoint  string `json:"endpoint"`
			Region    string `json:"region"`
			Bucket    string `json:"bucket"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      int      `json:"rate_limit"`
		RateWindow     Duration `json:"rate_window"`
	} `json:"server,omitempty"`

	Jobs struct {
		TriggerAddress   string   `json:"trigger_address"`
		BackendBaseURL   string   `json:"backend_base_url"`
		CleanupTimeout   Duration `json:"cleanup_timeout"`
		UploadTimeout    Duration `json:"upload_timeout"`
		SaveTimeout      Duration `json:"save_timeout"`
		ReminderTimeout  Duration `json:"reminder_timeout"`
		ReminderInterval Duration `json:"reminder_interval"`
		CleanupInterval  Duration `json:"cleanup_interval"`
		CleanupBatchSize int      `json:"cleanup_batch_size"`
	} `json:"jobs,omitempty"`

	Mailer struct {
		ServerToken string `json:"server_token"`
		FromEmail   string `json:"from_email"`
		APIBaseURL  string `json:"api_base_url"`
	} `json:"mailer,omitempty"`
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
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			InternalToken: jsonCfg.App.InternalToken,
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Jobs: JobStore{
				Path: jsonCfg.Storage.Jobs.Path,
			},
			S3: S3{
				Endpoint:  jsonCfg.Storage.S3.Endpoint,
				Region:    jsonCfg.Storage.S3.Region,
				Bucket:    jsonCfg.Storage.S3.Bucket,
				AccessKey: jsonCfg.Storage.S3.AccessKey,
				SecretKey: jsonCfg.Storage.S3.SecretKey,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateWindow:     time.Duration(jsonCfg.Server.RateWindow),
		},
		Jobs: Jobs{
			TriggerAddress:   jsonCfg.Jobs.TriggerAddress,
			BackendBaseURL:   jsonCfg.Jobs.BackendBaseURL,
			CleanupTimeout:   time.Duration(jsonCfg.Jobs.CleanupTimeout),
			UploadTimeout:    time.Duration(jsonCfg.Jobs.UploadTimeout),
			SaveTimeout:      time.Duration(jsonCfg.Jobs.SaveTimeout),
			ReminderTimeout:  time.Duration(jsonCfg.Jobs.ReminderTimeout),
			ReminderInterval: time.Duration(jsonCfg.Jobs.ReminderInterval),
			CleanupInterval:  time.Duration(jsonCfg.Jobs.CleanupInterval),
			CleanupBatchSize: jsonCfg.Jobs.CleanupBatchSize,
		},
		Mailer: Mailer{
			ServerToken: jsonCfg.Mailer.ServerToken,
			FromEmail:   jsonCfg.Mailer.FromEmail,
			APIBaseURL:  jsonCfg.Mailer.APIBaseURL,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
