// Package logger provides structured logging for the transcribe library,
// built on zerolog. Components obtain named loggers through the registry
// (logger.Get) so hosts can route or silence individual components.
package logger
