package adapters

// NoOpLoggerAdapter discards every message
type NoOpLoggerAdapter struct{}

var _ LoggerAdapter = (*NoOpLoggerAdapter)(nil)

func NewNoOpLoggerAdapter() *NoOpLoggerAdapter {
	return &NoOpLoggerAdapter{}
}

func (n *NoOpLoggerAdapter) Debug(string, ...any) {}
func (n *NoOpLoggerAdapter) Info(string, ...any)  {}
func (n *NoOpLoggerAdapter) Warn(string, ...any)  {}
func (n *NoOpLoggerAdapter) Error(string, ...any) {}
