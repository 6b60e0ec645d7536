package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type trainerEnvironment struct {
	RestPort          string
	PersistMethod     string
	DealerHitsSoft17  string
	ScriptDir         string
	DefaultRestPort   int
	DefaultScriptPath string
}

// TrainerEnvironment is a helper object for accessing environment variables.
var TrainerEnvironment = &trainerEnvironment{
	RestPort:          "REST_PORT",
	PersistMethod:     "PERSIST_METHOD",
	DealerHitsSoft17:  "DEALER_HITS_SOFT_17",
	ScriptDir:         "SCRIPT_DIR",
	DefaultRestPort:   8080,
	DefaultScriptPath: "test/trainer-scripts",
}

func (t *trainerEnvironment) GetRestPort() int {
	portStr := os.Getenv(t.RestPort)
	if portStr == "" {
		return t.DefaultRestPort
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil {
		environmentLogger.Error().Msgf("Invalid REST port %s, using default %d", portStr, t.DefaultRestPort)
		return t.DefaultRestPort
	}
	return portNum
}

func (t *trainerEnvironment) GetPersistMethod() string {
	method := os.Getenv(t.PersistMethod)
	if method == "" {
		return "memory"
	}
	return method
}

// GetDealerHitsSoft17 reports the house-rule variant. The default table
// stands on soft 17.
func (t *trainerEnvironment) GetDealerHitsSoft17() bool {
	v := os.Getenv(t.DealerHitsSoft17)
	return v == "1" || strings.ToLower(v) == "true"
}

func (t *trainerEnvironment) GetScriptDir() string {
	dir := os.Getenv(t.ScriptDir)
	if dir == "" {
		return t.DefaultScriptPath
	}
	return dir
}
