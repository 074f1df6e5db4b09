package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development gets a human
// console writer, everything else stays structured JSON.
func InitLogger(appEnv string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if appEnv == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// PrintLogInfo records the outcome of a handler call. Email may be nil for
// unauthenticated or unparsable requests; err may be nil on success.
func PrintLogInfo(email *string, statusCode int, functionName string, err error) {
	evt := log.Info()
	switch {
	case statusCode >= 500:
		evt = log.Error()
	case statusCode >= 400:
		evt = log.Warn()
	}

	if email != nil {
		evt = evt.Str("email", *email)
	}
	if err != nil {
		evt = evt.Err(err)
	}
	evt.Int("status", statusCode).Str("op", functionName).Send()
}
