package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds all configuration options.
type Settings struct {
	// OutputDir is where downloaded audio files are written.
	OutputDir string `json:"output_dir"`

	// LogDir is where per-run log files are written.
	LogDir string `json:"log_dir"`

	// AudioFormat is the target codec passed to the fetch engine.
	AudioFormat string `json:"audio_format"`

	// AudioQuality is the target quality passed to the fetch engine.
	AudioQuality string `json:"audio_quality"`

	// MaxConcurrentDownloads bounds parallel fetches during a batch.
	// 1 keeps the batch strictly sequential.
	MaxConcurrentDownloads int `json:"max_concurrent_downloads"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:              "output",
		LogDir:                 "logs",
		AudioFormat:            "mp3",
		AudioQuality:           "192K",
		MaxConcurrentDownloads: 1,
	}
}

// Load reads settings from a JSON file, then applies environment overrides.
//
// A missing file is not an error; defaults are used. An optional .env file
// in the working directory is loaded first, then the YTAUDIO_* variables
// override whatever the file provided.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else if err := json.Unmarshal(data, settings); err != nil {
			return nil, err
		}
	}

	settings.applyEnv()
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Settings) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("YTAUDIO_OUTPUT_DIR"); v != "" {
		s.OutputDir = v
	}
	if v := os.Getenv("YTAUDIO_LOG_DIR"); v != "" {
		s.LogDir = v
	}
	if v := os.Getenv("YTAUDIO_AUDIO_FORMAT"); v != "" {
		s.AudioFormat = v
	}
	if v := os.Getenv("YTAUDIO_AUDIO_QUALITY"); v != "" {
		s.AudioQuality = v
	}
	if v := os.Getenv("YTAUDIO_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.MaxConcurrentDownloads = n
		}
	}
}
