package main

import (
	"flag"
	"fmt"
	"jl/internal/cli"
	"jl/internal/evaluator"
	"jl/internal/util"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	help      bool
	version   bool
	// logging
	logLevel string
	logFile  string
	// config vars
	configFile  string
	prelude     string
	historyFile string
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	// interpreter config
	flag.StringVar(&configFile, "config", "", "TOML config file (default $"+util.ConfigEnvVar+")")
	flag.StringVar(&prelude, "prelude", "", "Comma separated builtin libraries to import at startup")
	flag.StringVar(&historyFile, "history", defaultHistoryFile(), "REPL history file")
	// log config
	flag.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {
	flag.Usage = printHelp
	flag.Parse()

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	config := util.Configuration{
		Version:     Version,
		BuildDate:   BuildDate,
		Commit:      Commit,
		LogLevel:    logLevel,
		LogFile:     logFile,
		HistoryFile: historyFile,
		Prelude:     util.ParsePrelude(prelude),
	}

	if configFile == "" {
		configFile = os.Getenv(util.ConfigEnvVar)
	}
	if configFile != "" {
		if err := config.LoadConfigFile(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(cli.ExitFatal)
		}
		// flags given explicitly win over the file
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "log-level":
				config.LogLevel = logLevel
			case "log-file":
				config.LogFile = logFile
			case "history":
				config.HistoryFile = historyFile
			case "prelude":
				config.Prelude = util.ParsePrelude(prelude)
			}
		})
	}

	// Creates a new Logger that uses a JSONHandler to write to the log writer
	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevelFromString(config.LogLevel),
	}
	logWriter := configureLogWriter(config.LogFile)
	defaultLogger := slog.New(slog.NewJSONHandler(logWriter, loggerOptions))
	slog.SetDefault(defaultLogger)

	code := cli.New(config).Run(flag.Args())
	if logWriter != os.Stderr {
		logWriter.Close()
	}
	os.Exit(code)
}

func configureLogWriter(logFile string) *os.File {
	var logWriter *os.File
	var err error
	if logFile != "" {
		// Create parent directories if they don't exist
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for '%s': %v; falling back to stderr\n", logFile, err)
			return os.Stderr
		}
		logWriter, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", logFile, err)
			logWriter = os.Stderr
		}
	} else {
		logWriter = os.Stderr
	}
	return logWriter
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jl_history")
}

func printVersion() {
	fmt.Printf("jl version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: jl [options] [file]

Options:
  -config <path>     TOML config file. Defaults to $%s when set.
  -prelude <mods>    Comma separated libraries to import at startup.
  -history <path>    REPL history file. Default is ~/.jl_history.
  -help              Display this help information and exit.
  -version           Display version information and exit.
  -log-level <level> Set the log level: debug, info, warn, error. Default is 'warn'.
  -log-file <path>   Specify a log file to write logs. Default is stderr.

Details:
Programs are JSON values. With no file a REPL reads one value per line.

Libraries:
  %s

Examples:
  jl                            Start the REPL
  jl -prelude std::io prog.json Evaluate prog.json with std::io imported
  jl -log-level=error prog.json Hide evaluator warnings

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, util.ConfigEnvVar, strings.Join(evaluator.ModuleNames(), ", "), Version, BuildDate, Commit)
}

func logLevelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
