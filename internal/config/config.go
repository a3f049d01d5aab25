package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// App config
type Config struct {
	Server     ServerConfig
	Telegram   TelegramConfig
	Extractor  ExtractorConfig
	Transcoder TranscoderConfig
	Limits     LimitsConfig
	Worker     WorkerConfig
	Logger     Logger
}

type ServerConfig struct {
	AppVersion string
	Port       string
	Mode       string
}

type TelegramConfig struct {
	Token       string `validate:"required"`
	PollTimeout int
}

// ExtractorConfig controls the yt-dlp invocation. CookiesPath is optional;
// when empty, Instagram extraction runs unauthenticated.
type ExtractorConfig struct {
	BinPath     string
	CookiesPath string
	Retries     int
	MaxTitleLen int
}

type TranscoderConfig struct {
	FFmpegPath  string
	FFprobePath string
	Preset      string
	AudioRate   string
}

// LimitsConfig holds the size policy, all sizes in megabytes.
// SafeLimitMB must stay below HardLimitMB to leave transport overhead margin.
type LimitsConfig struct {
	TargetHeight  int
	ReducedHeight int
	HardLimitMB   int64
	SafeLimitMB   int64
	VideoLimitMB  int64
}

type WorkerConfig struct {
	Concurrency int `validate:"gt=0"`
	MaxCPUUsage float64
}

type Logger struct {
	Development       bool
	DisableCaller     bool
	DisableStacktrace bool
	Encoding          string
	Level             string
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.AddConfigPath(".")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFound) {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	applyDefaults(&c)
	if c.Telegram.Token == "" {
		c.Telegram.Token = os.Getenv("BOT_TOKEN")
	}
	if c.Extractor.CookiesPath == "" {
		c.Extractor.CookiesPath = os.Getenv("IG_COOKIES_PATH")
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
	if c.Telegram.PollTimeout == 0 {
		c.Telegram.PollTimeout = 30
	}
	if c.Extractor.BinPath == "" {
		c.Extractor.BinPath = "yt-dlp"
	}
	if c.Extractor.Retries == 0 {
		c.Extractor.Retries = 3
	}
	if c.Extractor.MaxTitleLen == 0 {
		c.Extractor.MaxTitleLen = 200
	}
	if c.Transcoder.FFmpegPath == "" {
		c.Transcoder.FFmpegPath = "ffmpeg"
	}
	if c.Transcoder.FFprobePath == "" {
		c.Transcoder.FFprobePath = "ffprobe"
	}
	if c.Transcoder.Preset == "" {
		c.Transcoder.Preset = "veryfast"
	}
	if c.Transcoder.AudioRate == "" {
		c.Transcoder.AudioRate = "128k"
	}
	if c.Limits.TargetHeight == 0 {
		c.Limits.TargetHeight = 480
	}
	if c.Limits.ReducedHeight == 0 {
		c.Limits.ReducedHeight = 360
	}
	if c.Limits.HardLimitMB == 0 {
		c.Limits.HardLimitMB = 2000
	}
	if c.Limits.SafeLimitMB == 0 {
		c.Limits.SafeLimitMB = 1900
	}
	if c.Limits.VideoLimitMB == 0 {
		c.Limits.VideoLimitMB = 50
	}
	if c.Worker.Concurrency == 0 {
		c.Worker.Concurrency = 2
	}
	if c.Worker.MaxCPUUsage == 0 {
		c.Worker.MaxCPUUsage = 90.0
	}
}
