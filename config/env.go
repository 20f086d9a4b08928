package config

import (
	"os"
	"strconv"
	"time"
)

// Schedule holds the tunable windows and cadences for a scheduler run.
// Values come from the environment with documented defaults; the
// defaults reflect one jurisdiction's meeting cadence and are not
// semantically meaningful constants.
type Schedule struct {
	MinutesLastDays int
	AgendasLastDays int
	AgendasNextDays int
	Cooldown        time.Duration
	Cadence         time.Duration
	MaxPostsPerRun  int
}

// ScheduleFromEnv builds a Schedule from environment variables:
// FRESH_MINUTES_LAST_DAYS, FRESH_AGENDAS_LAST_DAYS,
// FRESH_AGENDAS_NEXT_DAYS, PER_SOURCE_COOLDOWN_HOURS, MAX_POSTS_PER_RUN
func ScheduleFromEnv() Schedule {
	return Schedule{
		MinutesLastDays: envInt("FRESH_MINUTES_LAST_DAYS", DefaultMinutesLastDays),
		AgendasLastDays: envInt("FRESH_AGENDAS_LAST_DAYS", DefaultAgendasLastDays),
		AgendasNextDays: envInt("FRESH_AGENDAS_NEXT_DAYS", DefaultAgendasNextDays),
		Cooldown:        time.Duration(envInt("PER_SOURCE_COOLDOWN_HOURS", DefaultCooldownHours)) * time.Hour,
		Cadence:         time.Duration(DefaultCadenceHours) * time.Hour,
		MaxPostsPerRun:  envInt("MAX_POSTS_PER_RUN", DefaultMaxPostsPerRun),
	}
}

// EnvBool reports whether the named variable is set to a truthy value
// ("1", "true", "yes", case-insensitive)
func EnvBool(name string) bool {
	switch os.Getenv(name) {
	case "1", "true", "TRUE", "True", "yes", "YES", "Yes":
		return true
	}
	return false
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
