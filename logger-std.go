//go:build !tinygo

package debugsink

import (
	"log"
)

func init() {
	pkgLogger = &stdLogger{}
}

// stdLogger writes through the standard library log package.
type stdLogger struct{}

func (l *stdLogger) Debug(msg string) { log.Print("debugsink [DEBUG] " + msg) }
func (l *stdLogger) Info(msg string)  { log.Print("debugsink [INFO]  " + msg) }
func (l *stdLogger) Warn(msg string)  { log.Print("debugsink [WARN]  " + msg) }
func (l *stdLogger) Error(msg string) { log.Print("debugsink [ERROR] " + msg) }
