package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Settings struct {
	Log       LogSettings       `mapstructure:"log"`
	Output    OutputSettings    `mapstructure:"output"`
	Docs      DocsSettings      `mapstructure:"docs"`
	Questions QuestionsSettings `mapstructure:"questions"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputSettings struct {
	Format string `mapstructure:"format"`
}

type DocsSettings struct {
	// Corpus is a YAML corpus path; empty selects the embedded corpus.
	Corpus   string `mapstructure:"corpus"`
	Language string `mapstructure:"language"`
}

type QuestionsSettings struct {
	DefaultTimeLimit int `mapstructure:"default_time_limit"`
}

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

var ErrInvalidOutputFormat = errors.New("invalid output format")

// Load reads settings from an optional YAML file and LEARNKICK_* env vars.
// A config file that cannot be found in the search path is not an error.
func Load(configFile string) (*Settings, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("learnkick")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.learnkick")
	}

	v.SetEnvPrefix("LEARNKICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	s.Output.Format = strings.ToLower(strings.TrimSpace(s.Output.Format))
	if err := ValidateOutputFormat(s.Output.Format); err != nil {
		return nil, err
	}
	if s.Questions.DefaultTimeLimit <= 0 {
		s.Questions.DefaultTimeLimit = 15000
	}

	return &s, nil
}

func ValidateOutputFormat(format string) error {
	switch format {
	case OutputTable, OutputJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q (want table|json)", ErrInvalidOutputFormat, format)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("output.format", OutputTable)

	v.SetDefault("docs.corpus", "")
	v.SetDefault("docs.language", "en")

	v.SetDefault("questions.default_time_limit", 15000)
}
