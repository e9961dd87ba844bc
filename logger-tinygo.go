//go:build tinygo

package debugsink

import (
	"machine"
)

func init() {
	pkgLogger = &serialLogger{}
}

// serialLogger writes straight to machine.Serial.
type serialLogger struct{}

func (l *serialLogger) log(level, msg string) {
	machine.Serial.Write([]byte("debugsink "))
	machine.Serial.Write([]byte(level))
	machine.Serial.Write([]byte(msg))
	machine.Serial.Write([]byte(LineEnding))
}

func (l *serialLogger) Debug(msg string) { l.log("[DEBUG] ", msg) }
func (l *serialLogger) Info(msg string)  { l.log("[INFO]  ", msg) }
func (l *serialLogger) Warn(msg string)  { l.log("[WARN]  ", msg) }
func (l *serialLogger) Error(msg string) { l.log("[ERROR] ", msg) }
