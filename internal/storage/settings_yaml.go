package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"pomod/internal/config"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	PollIntervalMs       int    `yaml:"poll_interval_ms"`
	NotificationsEnabled *bool  `yaml:"notifications_enabled"`
	SoundEnabled         *bool  `yaml:"sound_enabled"`
	SoundFile            string `yaml:"sound_file"`
	SoundCommand         string `yaml:"sound_command"`

	Glyphs struct {
		Idle       string `yaml:"idle"`
		Work       string `yaml:"work"`
		ShortBreak string `yaml:"short_break"`
		LongBreak  string `yaml:"long_break"`
	} `yaml:"glyphs"`
}

// LoadSettings reads user settings from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (config.Settings, error) {
	settings := config.Default()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user settings to YAML.
func SaveSettings(appName string, settings config.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var fileData yamlSettings
	fileData.PollIntervalMs = int(settings.PollInterval / time.Millisecond)
	fileData.NotificationsEnabled = &settings.Notifications
	fileData.SoundEnabled = &settings.Sound.Enabled
	fileData.SoundFile = settings.Sound.File
	fileData.SoundCommand = settings.Sound.Command
	fileData.Glyphs.Idle = settings.Glyphs.Idle
	fileData.Glyphs.Work = settings.Glyphs.Work
	fileData.Glyphs.ShortBreak = settings.Glyphs.ShortBreak
	fileData.Glyphs.LongBreak = settings.Glyphs.LongBreak

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *config.Settings, fileData yamlSettings) {
	if fileData.PollIntervalMs > 0 {
		settings.PollInterval = time.Duration(fileData.PollIntervalMs) * time.Millisecond
	}
	if fileData.NotificationsEnabled != nil {
		settings.Notifications = *fileData.NotificationsEnabled
	}
	if fileData.SoundEnabled != nil {
		settings.Sound.Enabled = *fileData.SoundEnabled
	}
	if fileData.SoundFile != "" {
		settings.Sound.File = fileData.SoundFile
	}
	if fileData.SoundCommand != "" {
		settings.Sound.Command = fileData.SoundCommand
	}

	if fileData.Glyphs.Idle != "" {
		settings.Glyphs.Idle = fileData.Glyphs.Idle
	}
	if fileData.Glyphs.Work != "" {
		settings.Glyphs.Work = fileData.Glyphs.Work
	}
	if fileData.Glyphs.ShortBreak != "" {
		settings.Glyphs.ShortBreak = fileData.Glyphs.ShortBreak
	}
	if fileData.Glyphs.LongBreak != "" {
		settings.Glyphs.LongBreak = fileData.Glyphs.LongBreak
	}
}
