package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// LogLevelEnv overrides the default log level when --verbose is not given.
const LogLevelEnv = "LAPORAN_LOG_LEVEL"

// ResolveLogLevel picks the log level: debug when verbose, otherwise the
// value of LAPORAN_LOG_LEVEL, defaulting to warn.
func ResolveLogLevel(verbose bool) (zapcore.Level, error) {
	if verbose {
		return zapcore.DebugLevel, nil
	}

	if override, ok := os.LookupEnv(LogLevelEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			var level zapcore.Level
			if err := level.UnmarshalText([]byte(strings.ToLower(override))); err != nil {
				return zapcore.WarnLevel, fmt.Errorf("parse %s: %w", LogLevelEnv, err)
			}
			return level, nil
		}
	}

	return zapcore.WarnLevel, nil
}
