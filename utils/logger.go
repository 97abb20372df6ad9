package utils

import (
	"log"
	"os"
)

// LoggerConfig tunes the application logger.
type LoggerConfig struct {
	// Output stream (os.Stdout, a file, ...)
	Output *os.File
	// Include file:line of the call site
	Verbose bool
}

// InitLogger builds the shared application logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	flags := log.LstdFlags | log.LUTC
	if cfg.Verbose {
		flags |= log.Lshortfile
	}
	return log.New(cfg.Output, "[Eduport] ", flags)
}
