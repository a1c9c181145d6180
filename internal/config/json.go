package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
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

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Workers struct {
		CompactInterval   Duration `json:"compact_interval"`
		ReportConcurrency int      `json:"report_concurrency"`
	} `json:"workers,omitempty"`

	Watermark struct {
		Background string `json:"background"`
		Start      string `json:"start"`
		Bit        string `json:"bit"`
	} `json:"watermark,omitempty"`

	Exam struct {
		ExamID    int64    `json:"exam_id"`
		AttemptID int64    `json:"attempt_id"`
		UserID    int64    `json:"user_id"`
		UserName  string   `json:"user_name"`
		Questions []string `json:"questions"`
		Duration  Duration `json:"duration"`
	} `json:"exam,omitempty"`
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
			HashKey:       jsonCfg.App.HashKey,
			Version:       jsonCfg.App.Version,
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
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Workers: Workers{
			CompactInterval:   time.Duration(jsonCfg.Workers.CompactInterval),
			ReportConcurrency: jsonCfg.Workers.ReportConcurrency,
		},
		Watermark: Watermark{
			Background: jsonCfg.Watermark.Background,
			Start:      jsonCfg.Watermark.Start,
			Bit:        jsonCfg.Watermark.Bit,
		},
		Exam: Exam{
			ExamID:    jsonCfg.Exam.ExamID,
			AttemptID: jsonCfg.Exam.AttemptID,
			UserID:    jsonCfg.Exam.UserID,
			UserName:  jsonCfg.Exam.UserName,
			Questions: jsonCfg.Exam.Questions,
			Duration:  time.Duration(jsonCfg.Exam.Duration),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return errors.New("invalid duration")
	}
}
