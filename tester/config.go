package tester

import (
	"fmt"

	"github.com/spf13/viper"
)

// Case is one configured group of checks sharing a description, an expected
// exit code, and stream visibility flags.
type Case struct {
	Description string
	Code        int
	ShowStdout  bool
	ShowStderr  bool
	Files       []string // fixture paths relative to Config.Dir
	Inputs      []string // inline source texts fed to stdin
}

// Config is the driver configuration, usually loaded from test.json.
type Config struct {
	App   string // program under test
	Dir   string // directory with fixture files
	Cases []Case
}

type rawCase struct {
	Description string   `mapstructure:"description"`
	Code        int      `mapstructure:"code"`
	Stdout      string   `mapstructure:"stdout"`
	Stderr      string   `mapstructure:"stderr"`
	Files       []string `mapstructure:"files"`
	Inputs      []string `mapstructure:"inputs"`
}

// Load reads the configuration file. Recognized keys are "app" (program
// path), "input-directory", and "tests", a list of cases with "description",
// "code", optional "stdout"/"stderr" visibility ("show" or "hide"; stdout is
// hidden and stderr is shown by default), "files", and "inputs".
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if e := v.ReadInConfig(); e != nil {
		return nil, fmt.Errorf("cannot read config: %w", e)
	}

	var raw []rawCase
	if e := v.UnmarshalKey("tests", &raw); e != nil {
		return nil, fmt.Errorf("malformed tests list: %w", e)
	}

	config := &Config{App: v.GetString("app"), Dir: v.GetString("input-directory")}
	if config.App == "" {
		return nil, fmt.Errorf("%s: missing app", path)
	}

	for i, rc := range raw {
		showStdout, e := showFlag(rc.Stdout, false)
		if e != nil {
			return nil, fmt.Errorf("test #%d: stdout: %w", i+1, e)
		}
		showStderr, e := showFlag(rc.Stderr, true)
		if e != nil {
			return nil, fmt.Errorf("test #%d: stderr: %w", i+1, e)
		}
		config.Cases = append(config.Cases, Case{
			Description: rc.Description,
			Code:        rc.Code,
			ShowStdout:  showStdout,
			ShowStderr:  showStderr,
			Files:       rc.Files,
			Inputs:      rc.Inputs,
		})
	}
	return config, nil
}

func showFlag(value string, byDefault bool) (bool, error) {
	switch value {
	case "":
		return byDefault, nil
	case "show":
		return true, nil
	case "hide":
		return false, nil
	}
	return false, fmt.Errorf("expecting \"show\" or \"hide\", got %q", value)
}
