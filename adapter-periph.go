//go:build !tinygo

package debugsink

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// ConnSink adapts a periph.io connection to a Sink. Every Write is one
// write-only transaction.
type ConnSink struct {
	c conn.Conn
}

// NewConnSink wraps c.
func NewConnSink(c conn.Conn) *ConnSink {
	return &ConnSink{c: c}
}

func (s *ConnSink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := s.c.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *ConnSink) String() string {
	return "debugsink(" + s.c.String() + ")"
}

// jumperPin is the part of gpio.PinIn needed to sample the debug jumper.
type jumperPin interface {
	In(pull gpio.Pull, edge gpio.Edge) error
	Read() gpio.Level
}

// jumperEnabled samples the jumper with the internal pull-up on.
// A jumper to ground enables output.
func jumperEnabled(p jumperPin) (bool, error) {
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return false, err
	}
	return p.Read() == gpio.Low, nil
}

// Config holds the configuration for the Linux/periph.io debug port.
type Config struct {
	// SpiBusPath is the path to the SPI bus the serial bridge sits on.
	// Defaults to "/dev/spidev0.0" if not provided.
	SpiBusPath string
	// SpiClockHz is the SPI clock frequency in Hz.
	// Defaults to 1000000 (1MHz) if not provided.
	SpiClockHz int
	// EnablePin is the GPIO pin number (BCM numbering) of the debug jumper.
	// Optional. If not provided, output starts disabled unless ForceEnable is set.
	EnablePin int
	// ForceEnable turns output on regardless of the jumper.
	ForceEnable bool
}

// Port is a Debugger bound to an opened periph.io SPI port.
type Port struct {
	*Debugger
	sink   *ConnSink
	closer io.Closer
}

// Open initializes the periph.io host, opens the SPI port described by c and
// returns a Port whose Debugger writes to it. The enabled flag is taken from
// the jumper pin (or ForceEnable) only after the sink is ready.
func Open(c Config) (*Port, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("%w: failed to initialize periph.io host: %w", ErrPkg, err)
	}

	if c.SpiBusPath == "" {
		c.SpiBusPath = "/dev/spidev0.0"
	}
	if c.SpiClockHz == 0 {
		c.SpiClockHz = 1000000
	}

	p, err := spireg.Open(c.SpiBusPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open SPI port: %w", ErrPkg, err)
	}

	sc, err := p.Connect(physic.Frequency(c.SpiClockHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("%w: failed to create SPI connection: %w", ErrPkg, err)
	}

	enabled := c.ForceEnable
	if c.EnablePin != 0 && !enabled {
		name := fmt.Sprintf("GPIO%d", c.EnablePin)
		pin := gpioreg.ByName(name)
		if pin == nil {
			p.Close()
			return nil, fmt.Errorf("%w: %w: %s", ErrPkg, ErrNoPin, name)
		}
		enabled, err = jumperEnabled(pin)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("%w: failed to read jumper %s: %w", ErrPkg, name, err)
		}
		if enabled {
			pkgLogger.Info("Debug jumper " + name + " set, output enabled.")
		} else {
			pkgLogger.Debug("Debug jumper " + name + " open, output disabled.")
		}
	}

	sink := NewConnSink(sc)
	d := New(sink)
	d.SetEnabled(enabled)
	pkgLogger.Info("Debug port " + c.SpiBusPath + " opened.")

	return &Port{Debugger: d, sink: sink, closer: p}, nil
}

// Close disables output and releases the SPI port.
func (p *Port) Close() error {
	p.SetEnabled(false)
	if p.closer == nil {
		return nil
	}
	if err := p.closer.Close(); err != nil {
		pkgLogger.Warn("Failed to close SPI port")
		return fmt.Errorf("%w: failed to close SPI port: %w", ErrPkg, err)
	}
	pkgLogger.Info("Debug port closed.")
	return nil
}

func (p *Port) String() string {
	return p.sink.String()
}
