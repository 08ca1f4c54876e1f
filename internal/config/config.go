// Package config loads runtime settings from the environment and an
// optional config file. Every value has a default, so all binaries run
// with zero configuration.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	CoursesFile string `mapstructure:"courses_file"`
	FacultyFile string `mapstructure:"faculty_file"`
	RoomsFile   string `mapstructure:"rooms_file"`
	ExportFile  string `mapstructure:"export_file"`

	ElectiveAttempts int   `mapstructure:"elective_attempts"`
	Seed             int64 `mapstructure:"seed"`
	GroupByBasket    bool  `mapstructure:"group_by_basket"`

	Port      int    `mapstructure:"port"`
	DataDir   string `mapstructure:"data_dir"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads .env (when present), then TIMETABLE_* environment
// variables and an optional timetable.yaml in the working directory.
func Load() (*Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("courses_file", "./res/courses.csv")
	v.SetDefault("faculty_file", "./res/faculty.csv")
	v.SetDefault("rooms_file", "./res/rooms.csv")
	v.SetDefault("export_file", "timetable.csv")
	v.SetDefault("elective_attempts", 3000)
	v.SetDefault("seed", 0)
	v.SetDefault("group_by_basket", false)
	v.SetDefault("port", 8080)
	v.SetDefault("data_dir", "db")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetConfigName("timetable")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("TIMETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Logger builds a zap logger honouring the configured level and format.
func (c *Config) Logger() (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if c.LogFormat == "json" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "timestamp"
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	if c.LogLevel != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}
	return zapCfg.Build()
}
