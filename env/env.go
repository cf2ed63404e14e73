// Package env reads configuration from environment variables, with _FILE
// indirection and a /run/secrets fallback for containerized deployments.
package env

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/Davincible/batbelt/utils"
)

// GetEnv reads an environment variable, falls back to the _FILE version if
// not set, and as a third check, reads from a default secrets file under
// /run/secrets/{ENV}.
func GetEnv(key string, defaultValue ...string) string {
	defaultVal := ""
	if len(defaultValue) > 0 {
		defaultVal = defaultValue[0]
	}

	// First, check if the environment variable is directly set
	if value := os.Getenv(key); len(value) != 0 {
		return value
	}

	// If the env var is not set, check the _FILE version
	if filePath := os.Getenv(key + "_FILE"); len(filePath) != 0 {
		content, err := os.ReadFile(filePath)
		if err != nil {
			log.Printf("Error reading file for env var %s_FILE: %v", key, err)
			return defaultVal
		}

		if value := strings.TrimSpace(string(content)); len(value) != 0 {
			return value
		}
	}

	// Finally, check /run/secrets/{key}
	if secretsFilePath := filepath.Join("/run/secrets", key); fileExists(secretsFilePath) {
		content, err := os.ReadFile(secretsFilePath)
		if err != nil {
			log.Printf("Error reading secret file for env var %s: %v", secretsFilePath, err)
			return defaultVal
		}

		if value := strings.TrimSpace(string(content)); len(value) != 0 {
			return value
		}
	}

	// If no values found, return the default
	return defaultVal
}

// GetEnvInt64 reads an int64 environment variable with the same fallbacks as
// GetEnv.
func GetEnvInt64[T int | int64](key string, defaultValue ...T) int64 {
	if valueStr := GetEnv(key, ""); len(valueStr) != 0 {
		if parsed, err := cast.ToInt64E(valueStr); err == nil {
			return parsed
		}
	}

	if len(defaultValue) > 0 {
		return int64(defaultValue[0])
	}

	return 0
}

// GetEnvInt reads an int environment variable with the same fallbacks as
// GetEnv.
func GetEnvInt(key string, defaultValue ...int) int {
	return int(GetEnvInt64(key, defaultValue...))
}

// GetEnvFloat64 reads a float64 environment variable with the same fallbacks
// as GetEnv.
func GetEnvFloat64(key string, defaultValue ...float64) float64 {
	if valueStr := GetEnv(key, ""); len(valueStr) != 0 {
		if parsed, err := cast.ToFloat64E(valueStr); err == nil {
			return parsed
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return 0
}

// GetEnvBool reads a boolean environment variable. Accepts the forms
// strconv.ParseBool does ("1", "t", "true", ...).
func GetEnvBool(key string, defaultValue ...bool) bool {
	if valueStr := GetEnv(key, ""); len(valueStr) != 0 {
		if parsed, err := cast.ToBoolE(valueStr); err == nil {
			return parsed
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return false
}

// GetEnvDuration reads a duration environment variable. Both the standard
// "1h30m" syntax and the day-extended "2d12h" syntax are accepted.
func GetEnvDuration(key string, defaultValue ...time.Duration) time.Duration {
	if valueStr := GetEnv(key, ""); len(valueStr) != 0 {
		if parsed, err := utils.ParseDuration(valueStr); err == nil {
			return parsed
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return 0
}

// GetEnvStringSlice reads a comma-separated environment variable.
// Empty segments are dropped and whitespace trimmed.
func GetEnvStringSlice(key string, defaultValues ...string) []string {
	if valueStr := GetEnv(key, ""); len(valueStr) != 0 {
		parts := strings.Split(valueStr, ",")
		values := make([]string, 0, len(parts))

		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); len(trimmed) != 0 {
				values = append(values, trimmed)
			}
		}

		return values
	}

	if len(defaultValues) > 0 {
		return defaultValues
	}

	return nil
}

// GetEnvInt64Slice reads a comma-separated int64 environment variable,
// skipping segments that fail to parse.
func GetEnvInt64Slice(key string, defaultValues ...int64) []int64 {
	if valueStr := GetEnv(key, ""); len(valueStr) != 0 {
		parts := strings.Split(valueStr, ",")
		values := make([]int64, 0, len(parts))

		for _, part := range parts {
			if parsed, err := cast.ToInt64E(strings.TrimSpace(part)); err == nil {
				values = append(values, parsed)
			}
		}

		return values
	}

	if len(defaultValues) > 0 {
		return defaultValues
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
