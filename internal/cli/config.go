package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/mcoot/connectn/internal/model"
	"github.com/mcoot/connectn/internal/services/match"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	Output  string
	Verbose bool
	NoColor bool
	EnvFile string

	// Game parameters
	Teams       int
	Rows        int
	Columns     int
	RunLength   int
	FirstTurn   int
	RandomFirst bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputText,
		EnvFile:   getEnvOrDefault("CONNECTN_ENV_FILE", ".env"),
		Teams:     model.DefaultNumTeams,
		Rows:      model.DefaultNumRows,
		Columns:   model.DefaultNumColumns,
		RunLength: model.DefaultRunLength,
		FirstTurn: int(model.DefaultFirstTurn),
	}
}

// Load reads the env file, then fills every setting not given as a flag from the environment
func (c *Config) Load(flags *pflag.FlagSet) error {
	if err := godotenv.Load(c.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", c.EnvFile, err)
	}

	if !flags.Changed("output") {
		c.Output = getEnvOrDefault("CONNECTN_OUTPUT", c.Output)
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q: must be %q or %q", c.Output, OutputText, OutputJSON)
	}

	ints := []struct {
		flag string
		env  string
		dst  *int
	}{
		{"teams", "CONNECTN_TEAMS", &c.Teams},
		{"rows", "CONNECTN_ROWS", &c.Rows},
		{"columns", "CONNECTN_COLUMNS", &c.Columns},
		{"run-length", "CONNECTN_RUN_LENGTH", &c.RunLength},
		{"first", "CONNECTN_FIRST", &c.FirstTurn},
	}
	for _, setting := range ints {
		if flags.Changed(setting.flag) {
			continue
		}
		if err := getEnvInt(setting.env, setting.dst); err != nil {
			return err
		}
	}

	if !flags.Changed("random-first") {
		if val := os.Getenv("CONNECTN_RANDOM_FIRST"); val != "" {
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("CONNECTN_RANDOM_FIRST: %w", err)
			}
			c.RandomFirst = b
		}
	}

	return nil
}

// Params converts the game settings into match parameters
func (c *Config) Params() match.Params {
	return match.Params{
		Teams:       c.Teams,
		Rows:        c.Rows,
		Columns:     c.Columns,
		RunLength:   c.RunLength,
		FirstTurn:   c.FirstTurn,
		RandomFirst: c.RandomFirst,
	}
}

// bindGameFlags registers the game parameter flags
func bindGameFlags(flags *pflag.FlagSet, c *Config) {
	flags.IntVar(&c.Teams, "teams", c.Teams, "Number of teams (env: CONNECTN_TEAMS)")
	flags.IntVar(&c.Rows, "rows", c.Rows, "Number of grid rows (env: CONNECTN_ROWS)")
	flags.IntVar(&c.Columns, "columns", c.Columns, "Number of grid columns (env: CONNECTN_COLUMNS)")
	flags.IntVar(&c.RunLength, "run-length", c.RunLength, "Tokens in a row needed to win (env: CONNECTN_RUN_LENGTH)")
	flags.IntVar(&c.FirstTurn, "first", c.FirstTurn, "Team that moves first (env: CONNECTN_FIRST)")
	flags.BoolVar(&c.RandomFirst, "random-first", c.RandomFirst, "Pick the first team at random (env: CONNECTN_RANDOM_FIRST)")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, dst *int) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
