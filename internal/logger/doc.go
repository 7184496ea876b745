// Package logger builds the zerolog loggers used by the command line tools.
//
// The level is read from the ARID_LOG_LEVEL environment variable and
// defaults to info.
package logger
