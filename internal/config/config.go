package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type MongoConfig struct {
	URL      string `yaml:"url"`
	Database string `yaml:"database"`
}

// LegacyConfig describes the secondary relational client source. It is
// best-effort everywhere: read failures contribute zero rows, never an
// error. Disabled by default.
type LegacyConfig struct {
	Enabled       bool   `yaml:"enabled"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	ConnectString string `yaml:"connect_string"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type FilesConfig struct {
	RootDir string `yaml:"root_dir"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Legacy   LegacyConfig   `yaml:"legacy"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	Auth     AuthConfig     `yaml:"auth"`
	Files    FilesConfig    `yaml:"files"`
}

// DefaultPath is where the server looks when no path is given.
const DefaultPath = "config/config.yaml"

func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "crmlite"
	}
	if cfg.Files.RootDir == "" {
		cfg.Files.RootDir = "./files"
	}
	return &cfg, nil
}
