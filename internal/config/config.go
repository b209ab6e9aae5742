// Package config loads the command configuration from a TOML file and the
// LAMBDA_* environment variables.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/alextanhongpin/lambda/types/clock"
	"github.com/alextanhongpin/lambda/types/env"
	"github.com/alextanhongpin/lambda/validator"
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Workers WorkersConfig `toml:"workers"`
	Words   WordsConfig   `toml:"words"`
	Clock   ClockConfig   `toml:"clock"`
}

type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `toml:"format" validate:"oneof=text json"`
}

type WorkersConfig struct {
	Count int      `toml:"count" validate:"gte=0,lte=100"`
	Sleep Duration `toml:"sleep"`
}

type WordsConfig struct {
	DataFile  string `toml:"data_file" validate:"required"`
	MinLength int    `toml:"min_length" validate:"gte=0"`
}

// ClockConfig pins the demo clock. Now is an RFC 3339 timestamp or a
// "yyyy-MM-dd HH:mm:ss" local date-time; empty means the system clock.
type ClockConfig struct {
	Now  string `toml:"now"`
	Zone string `toml:"zone"`
}

// Duration is a time.Duration written as "1s" or "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Workers: WorkersConfig{
			Count: 5,
			Sleep: Duration{time.Second},
		},
		Words: WordsConfig{
			DataFile:  "data.txt",
			MinLength: 5,
		},
	}
}

// Load reads the defaults, then the file at path if it is not empty, then
// the environment. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cause.New(codes.NotFound, "config/file_not_found", "The config file does not exist").Wrap(err)
		}
		if err != nil {
			return nil, cause.New(codes.BadRequest, "config/invalid_file", "The config file is not valid TOML").Wrap(err)
		}
	}

	if err := cfg.overrideFromEnv(); err != nil {
		return nil, cause.New(codes.BadRequest, "config/invalid_env", "An environment variable is invalid").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, cause.New(codes.BadRequest, "config/invalid", "The config is invalid").Wrap(err)
	}

	return cfg, nil
}

func (c *Config) overrideFromEnv() error {
	return errors.Join(
		env.Override(&c.Log.Level, "LAMBDA_LOG_LEVEL"),
		env.Override(&c.Log.Format, "LAMBDA_LOG_FORMAT"),
		env.Override(&c.Workers.Count, "LAMBDA_WORKERS"),
		env.OverrideDuration(&c.Workers.Sleep.Duration, "LAMBDA_WORKER_SLEEP"),
		env.Override(&c.Words.DataFile, "LAMBDA_DATA_FILE"),
		env.Override(&c.Words.MinLength, "LAMBDA_MIN_WORD_LENGTH"),
		env.Override(&c.Clock.Now, "LAMBDA_NOW"),
		env.Override(&c.Clock.Zone, "LAMBDA_ZONE"),
	)
}

func (c *Config) Validate() error {
	if err := validator.Struct[Config]().Check(*c); err != nil {
		return err
	}

	if _, err := c.Location(); err != nil {
		return validator.NewErrors(validator.Field("zone", err))
	}

	if _, err := c.NewClock(); err != nil {
		return validator.NewErrors(validator.Field("now", err))
	}

	return nil
}

// Location returns the configured zone, or the local zone when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Clock.Zone == "" {
		return time.Local, nil
	}

	return time.LoadLocation(c.Clock.Zone)
}

// NewClock returns a clock fixed at Clock.Now, or the system clock.
func (c *Config) NewClock() (clock.Clock, error) {
	if c.Clock.Now == "" {
		return clock.System(), nil
	}

	loc, err := c.Location()
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(time.RFC3339, c.Clock.Now); err == nil {
		return clock.Fixed(t.In(loc)), nil
	}

	t, err := clock.Parse("yyyy-MM-dd HH:mm:ss", c.Clock.Now)
	if err != nil {
		return nil, err
	}

	return clock.Fixed(clock.FromLocal(t, loc)), nil
}
