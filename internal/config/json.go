package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Media struct {
			Backend  string `json:"backend"`
			RootDir  string `json:"root_dir"`
			AudioDir string `json:"audio_dir"`
			ImageDir string `json:"image_dir"`
			MinIO    struct {
				Endpoint  string `json:"endpoint"`
				AccessKey string `json:"access_key"`
				SecretKey string `json:"secret_key"`
				Bucket    string `json:"bucket"`
				Region    string `json:"region"`
				UseSSL    bool   `json:"use_ssl"`
			} `json:"minio,omitempty"`
		} `json:"media,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigin  string   `json:"allowed_origin"`
	} `json:"server,omitempty"`

	Upload struct {
		MaxAudioSize   int64 `json:"max_audio_size"`
		MaxImageSize   int64 `json:"max_image_size"`
		MaxRequestSize int64 `json:"max_request_size"`
	} `json:"upload,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
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

	media := jsonCfg.Storage.Media
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Media: Media{
				Backend:  media.Backend,
				RootDir:  media.RootDir,
				AudioDir: media.AudioDir,
				ImageDir: media.ImageDir,
				MinIO: MinIO{
					Endpoint:  media.MinIO.Endpoint,
					AccessKey: media.MinIO.AccessKey,
					SecretKey: media.MinIO.SecretKey,
					Bucket:    media.MinIO.Bucket,
					Region:    media.MinIO.Region,
					UseSSL:    media.MinIO.UseSSL,
				},
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigin:  jsonCfg.Server.AllowedOrigin,
		},
		Upload: Upload{
			MaxAudioSize:   jsonCfg.Upload.MaxAudioSize,
			MaxImageSize:   jsonCfg.Upload.MaxImageSize,
			MaxRequestSize: jsonCfg.Upload.MaxRequestSize,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
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
