// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for logging. The Warn channel is wrapped by
// the delegate option adapter to suppress known-benign engine warnings, so
// implementations must tolerate being decorated.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
