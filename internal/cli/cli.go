package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/battlesched/internal/app"
	"github.com/specialistvlad/battlesched/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// ParseScheduler processes the scheduler command's arguments. It returns the
// validated configuration, a boolean indicating if the program should exit
// cleanly (help was requested), or an ExitError.
func ParseScheduler(args []string, output io.Writer) (*app.SchedulerConfig, bool, error) {
	slog.Debug("Scheduler CLI parser started.")
	flagSet := flag.NewFlagSet("scheduler", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
scheduler - Orders battles to minimise their total weighted completion time.

Usage:
  scheduler [options] DATASET_PATH

Arguments:
  DATASET_PATH
    CSV file with a "tiempo,peso" header and one "<duration>,<weight>" per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	verifyFlag := flagSet.Bool("verify", false, "Fail if the computed order is not locally optimal.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "expected exactly one dataset path"}
	}

	cfg, err := app.NewSchedulerConfig(app.SchedulerConfig{
		DatasetPath: flagSet.Arg(0),
		Verify:      *verifyFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("Scheduler CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// ParseBench processes the benchmark command's arguments. Only flags that
// were given explicitly end up in the returned Overrides, so they take
// precedence over the configuration file without masking it.
func ParseBench(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("Bench CLI parser started.")
	flagSet := flag.NewFlagSet("bench", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
bench - Measures how a scheduler's run time grows with its input size.

Usage:
  bench [options] SCHEDULER_PATH

Arguments:
  SCHEDULER_PATH
    Program to benchmark. It is run as "SCHEDULER_PATH DATASET_PATH" once per size.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an .hcl configuration file or a directory of them.")
	datasetsFlag := flagSet.String("datasets", "", "Directory where generated datasets are cached. (default \"datatest\")")
	seedFlag := flagSet.Int64("seed", 0, "Base seed for dataset generation. (default 42)")
	sizesFlag := flagSet.String("sizes", "", "Comma-separated dataset sizes, ascending. (default 1000..2048000, doubling)")
	launcherFlag := flagSet.String("launcher", "", "Command prefix used to run the scheduler, e.g. \"python3\".")
	chartFlag := flagSet.String("chart", "", "Chart output file; a bare name is placed in the dataset directory. (default \"benchmark.png\")")
	reportFlag := flagSet.String("report", "", "Optional YAML file receiving the samples and fitted models.")
	inProcessFlag := flagSet.Bool("in-process", false, "Time the built-in scheduler instead of an external program.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	slog.Debug("Arguments parsed successfully.")

	overrides := &config.Model{}
	var visitErr error
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "datasets":
			overrides.DatasetDir = *datasetsFlag
		case "seed":
			overrides.Seed = config.Int64(*seedFlag)
		case "sizes":
			sizes, err := parseSizes(*sizesFlag)
			if err != nil && visitErr == nil {
				visitErr = err
			}
			overrides.Sizes = sizes
		case "launcher":
			overrides.Launcher = strings.Fields(*launcherFlag)
		case "chart":
			overrides.Chart = *chartFlag
		case "report":
			overrides.Report = *reportFlag
		}
	})
	if visitErr != nil {
		return nil, false, usageError(visitErr)
	}

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "expected a single scheduler path"}
	}
	if flagSet.NArg() == 0 && !*inProcessFlag {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing path to the scheduler under test"}
	}

	cfg, err := app.NewConfig(app.Config{
		SubjectPath: flagSet.Arg(0),
		ConfigPath:  *configFlag,
		InProcess:   *inProcessFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		Overrides:   overrides,
	})
	if err != nil {
		return nil, false, usageError(err)
	}

	slog.Debug("Bench CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func parseSizes(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	sizes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid -sizes value %q: %w", s, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("invalid -sizes value %q: sizes must be positive", s)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}
