// Package config provides configuration management for ytaudio.
//
// Settings are read in three layers, later layers winning:
//
//  1. Defaults from DefaultSettings()
//  2. An optional JSON settings file
//  3. Environment variables (YTAUDIO_OUTPUT_DIR, YTAUDIO_LOG_DIR,
//     YTAUDIO_AUDIO_FORMAT, YTAUDIO_AUDIO_QUALITY, YTAUDIO_MAX_CONCURRENT),
//     with an optional .env file loaded first
//
//	settings, err := config.Load("/path/to/config.json")
//	// Missing file is fine; defaults + env apply.
package config
