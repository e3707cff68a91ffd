// Package simconfig loads and validates run configuration for a model run.
//
// Configuration is read from environment variables (and a .env file if
// present) using struct tags, then validated.
//
// Usage:
//
//	import "github.com/gmt-dos/actors-go/pkg/simconfig"
//
//	var cfg simconfig.RunConfig
//	if err := simconfig.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package simconfig

import (
	"github.com/gmt-dos/actors-go/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// RunConfig is the ambient configuration for a model run: how long to run,
// the nominal sampling frequency it is expressed against, and where the
// Arrow/Parquet logger should write its output.
type RunConfig struct {
	// StepBudget is the number of discrete simulation steps an initiator's
	// finite signal should produce before signaling end-of-stream. Zero
	// means run until the client itself exhausts (no externally imposed cap).
	StepBudget int `env:"SIM_STEP_BUDGET" env-default:"0"`

	// SampleRateHz is the simulation's base sampling frequency in Hz. The
	// runtime does not read it (Model.Flowchart prints only NI and NO);
	// actor rate factors (NI, NO) are what the runtime actually enforces.
	SampleRateHz float64 `env:"SIM_SAMPLE_RATE_HZ" env-default:"1000" validate:"gt=0"`

	// LogBufferSize is a channel capacity for logger edges, default 64.
	// Nothing in this module reads it; graph.Log does not use it.
	LogBufferSize int `env:"SIM_LOG_BUFFER_SIZE" env-default:"64" validate:"gt=0"`

	// ParquetPath is a file name to pass to arrowlog.New; Logger.Flush
	// writes the Parquet file there.
	ParquetPath string `env:"SIM_PARQUET_PATH" env-default:"data.parquet"`

	// LogLevel and LogFormat configure pkg/log.
	LogLevel  string `env:"LOG_LEVEL" env-default:"INFO"`
	LogFormat string `env:"LOG_FORMAT" env-default:"JSON"`
}

// Load reads configuration from a .env file or environment variables and
// validates it.
func Load[T any](cfg *T) error {
	if err := cleanenv.ReadConfig(".env", cfg); err != nil {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return errors.Wrap(err, "failed to read env config")
		}
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "config validation failed")
	}

	return nil
}
