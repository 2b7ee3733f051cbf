package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "bpship.dev/pkg/bpship/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "bpship"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName        = "root"
	extensionFlagName   = "extension"
	ledgerFileFlagName  = "ledger-file"
	versionFileFlagName = "version-file"
	vcsBinaryFlagName   = "vcs"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	rootConfigKey        = "warehouse.root"
	extensionConfigKey   = "warehouse.extension"
	ledgerFileConfigKey  = "ledger.file"
	versionFileConfigKey = "release.version_file"
	vcsBinaryConfigKey   = "vcs.binary"
	vcsTimeoutConfigKey  = "vcs.command_timeout"

	defaultRoot        = "."
	defaultExtension   = ".bp"
	defaultLedgerFile  = "iteration.json"
	defaultVersionFile = "version.json"
	defaultVCSBinary   = "git"
	defaultVCSTimeout  = 2 * time.Minute

	envPrefix = "BPSHIP"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".bpship.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(rootConfigKey, defaultRoot)
	viper.SetDefault(extensionConfigKey, defaultExtension)
	viper.SetDefault(ledgerFileConfigKey, defaultLedgerFile)
	viper.SetDefault(versionFileConfigKey, defaultVersionFile)
	viper.SetDefault(vcsBinaryConfigKey, defaultVCSBinary)
	viper.SetDefault(vcsTimeoutConfigKey, int64(defaultVCSTimeout.Seconds()))

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// configFromViper builds the explicit configuration every component takes.
func configFromViper() m.Config {
	return m.Config{
		Root:           viper.GetString(rootConfigKey),
		LedgerFile:     viper.GetString(ledgerFileConfigKey),
		VersionFile:    viper.GetString(versionFileConfigKey),
		ArtifactExt:    viper.GetString(extensionConfigKey),
		VCSBinary:      viper.GetString(vcsBinaryConfigKey),
		CommandTimeout: time.Duration(viper.GetInt64(vcsTimeoutConfigKey)) * time.Second,
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
