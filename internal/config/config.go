// Package config loads webftp settings from a TOML file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Duration is a time.Duration that reads and writes as a Go duration string, ie "10m".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type SessionsConfig struct {
	IdleTimeout   Duration `toml:"idle_timeout"`
	SweepInterval Duration `toml:"sweep_interval"`
	MaxSessions   int      `toml:"max_sessions"`
}

type TransferConfig struct {
	MaxUploadBytes int64    `toml:"max_upload_bytes"`
	DialTimeout    Duration `toml:"dial_timeout"`
}

type FTPConfig struct {
	DisableEPSV        bool `toml:"disable_epsv"`
	InsecureSkipVerify bool `toml:"insecure_skip_verify"`
}

type SFTPConfig struct {
	KnownHostsFile        string `toml:"known_hosts_file"`
	InsecureIgnoreHostKey bool   `toml:"insecure_ignore_host_key"`
	KeyFile               string `toml:"key_file"`
	KeyPassphrase         string `toml:"key_passphrase"`
}

type Config struct {
	ListenAddr    string         `toml:"listen_addr"`
	MetricsAddr   string         `toml:"metrics_addr"`
	EncryptionKey string         `toml:"encryption_key"`
	DatabaseURL   string         `toml:"database_url"`
	Log           LogConfig      `toml:"log"`
	Sessions      SessionsConfig `toml:"sessions"`
	Transfer      TransferConfig `toml:"transfer"`
	FTP           FTPConfig      `toml:"ftp"`
	SFTP          SFTPConfig     `toml:"sftp"`
}

func Default() Config {
	return Config{
		ListenAddr: ":3000",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Sessions: SessionsConfig{
			IdleTimeout:   Duration(10 * time.Minute),
			SweepInterval: Duration(5 * time.Minute),
			MaxSessions:   256,
		},
		Transfer: TransferConfig{
			DialTimeout: Duration(15 * time.Second),
		},
		FTP: FTPConfig{
			InsecureSkipVerify: true,
		},
		SFTP: SFTPConfig{
			InsecureIgnoreHostKey: true,
		},
	}
}

// DefaultPath returns ~/.webftp/config.toml, or a relative path when there is no home directory.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil || home == "" {
		return filepath.Join(".webftp", "config.toml")
	}
	return filepath.Join(home, ".webftp", "config.toml")
}

// LoadOrCreate reads path, writing the defaults there first if it does not exist.  Environment overrides are applied
// to the result either way.
func LoadOrCreate(path string) (Config, error) {
	config := Default()

	path, err := homedir.Expand(path)
	if err != nil {
		return config, err
	}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return config, err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return config, err
		}

		configData, err := toml.Marshal(config)
		if err != nil {
			return config, err
		}

		// 0600: the file may come to hold the encryption key
		if err := os.WriteFile(path, configData, 0o600); err != nil {
			return config, err
		}
	} else {
		configData, err := os.ReadFile(path)
		if err != nil {
			return config, err
		}

		if err := toml.Unmarshal(configData, &config); err != nil {
			return config, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := config.applyEnv(os.LookupEnv); err != nil {
		return config, err
	}

	return config, config.normalize()
}

// Load applies environment overrides to the defaults without touching the filesystem.
func Load() (Config, error) {
	config := Default()
	if err := config.applyEnv(os.LookupEnv); err != nil {
		return config, err
	}
	return config, config.normalize()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.ListenAddr = ":" + v
	}
	if v, ok := lookup("WEBFTP_LISTEN_ADDR"); ok && v != "" {
		c.ListenAddr = v
	}
	if v, ok := lookup("WEBFTP_METRICS_ADDR"); ok && v != "" {
		c.MetricsAddr = v
	}
	if v, ok := lookup("ENCRYPTION_KEY"); ok && v != "" {
		c.EncryptionKey = v
	}
	if v, ok := lookup("DATABASE_URL"); ok && v != "" {
		c.DatabaseURL = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
	return nil
}

func (c *Config) normalize() error {
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	c.MetricsAddr = strings.TrimSpace(c.MetricsAddr)
	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)

	if c.ListenAddr == "" {
		c.ListenAddr = ":3000"
	}

	for _, p := range []*string{&c.SFTP.KnownHostsFile, &c.SFTP.KeyFile} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}

	if c.Sessions.IdleTimeout <= 0 {
		return errors.New("sessions.idle_timeout must be positive")
	}
	if c.Sessions.SweepInterval <= 0 {
		return errors.New("sessions.sweep_interval must be positive")
	}
	if c.Sessions.MaxSessions < 0 {
		return errors.New("sessions.max_sessions must not be negative")
	}
	if c.Transfer.MaxUploadBytes < 0 {
		return errors.New("transfer.max_upload_bytes must not be negative")
	}
	if c.Transfer.DialTimeout < 0 {
		return errors.New("transfer.dial_timeout must not be negative")
	}
	return nil
}
