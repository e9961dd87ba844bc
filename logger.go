package debugsink

// Logger receives the adapters' own lifecycle messages (port opened, jumper
// state and so on). It is never used for trace output, which goes through a
// Debugger. Plain strings keep TinyGo builds free of the fmt package.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

var pkgLogger Logger = nopLogger{}

// SetLogger replaces the package logger. A nil logger silences it.
func SetLogger(l Logger) {
	if l == nil {
		pkgLogger = nopLogger{}
		return
	}
	pkgLogger = l
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}
