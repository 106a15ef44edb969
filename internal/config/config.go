// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/paydown/paydown/pkg/constants"
	"github.com/paydown/paydown/pkg/datetime"
	"github.com/paydown/paydown/pkg/validation"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for paydown.
type Configuration struct {
	Loans    []LoanSpec    `yaml:"loans"`
	AsOfDate string        `yaml:"asOfDate,omitempty"`
	Logging  LoggingConfig `yaml:"logging,omitempty"`
	Output   OutputConfig  `yaml:"output,omitempty"`
	Storage  StorageConfig `yaml:"storage,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format        string `yaml:"format,omitempty"` // pretty, csv
	ShowSchedules bool   `yaml:"showSchedules,omitempty"`
	ShowBaselines bool   `yaml:"showBaselines,omitempty"`
}

// StorageConfig holds local storage configuration options
type StorageConfig struct {
	File     string `yaml:"file,omitempty"` // sqlite database path
	Disabled bool   `yaml:"disabled,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// StorageFile returns the configured sqlite path or the default.
func (c *Configuration) StorageFile() string {
	if c.Storage.File == "" {
		return constants.DefaultStoreFile
	}
	return c.Storage.File
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Loans) == 0 {
		warnings = append(warnings, "no loans configured")
	}

	if c.AsOfDate != "" {
		if _, err := datetime.ParseMonth(c.AsOfDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("asOfDate %q is not in the %s layout and will be ignored",
				c.AsOfDate, DateTimeLayout))
		}
	}

	names := make(map[string]bool)
	for i := range c.Loans {
		loan := &c.Loans[i]

		if loan.Name == "" {
			warnings = append(warnings, fmt.Sprintf("loan %d has no name", i+1))
		}
		if names[loan.Name] {
			warnings = append(warnings, fmt.Sprintf("duplicate loan name '%s'", loan.Name))
		}
		names[loan.Name] = true

		termMonths, err := loan.Term.Months()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Loan '%s': %v", loan.Name, err))
			continue
		}

		if _, err := loan.Parameters(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Loan '%s' has invalid parameters: %v", loan.Name, err))
			continue
		}

		warnings = append(warnings, validation.ValidateEarlyPayments(loan.Name, termMonths, loan.EarlyPaymentEvents())...)
		warnings = append(warnings, validation.ValidateRateAdjustments(loan.Name, termMonths, loan.RateAdjustmentEvents())...)
	}

	return warnings
}
