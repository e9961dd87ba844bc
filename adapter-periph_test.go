//go:build !tinygo

package debugsink

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// --- Mocks ---

type mockConn struct {
	tx    []byte
	calls int
	err   error
}

func (m *mockConn) Tx(w, r []byte) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	if r != nil {
		return errors.New("unexpected read buffer")
	}
	m.tx = append(m.tx, w...)
	return nil
}

func (m *mockConn) Duplex() conn.Duplex { return conn.Full }
func (m *mockConn) String() string      { return "mockConn" }
func (m *mockConn) Halt() error         { return nil }

type mockJumper struct {
	pull  gpio.Pull
	level gpio.Level
	err   error
}

func (m *mockJumper) In(pull gpio.Pull, edge gpio.Edge) error {
	m.pull = pull
	return m.err
}

func (m *mockJumper) Read() gpio.Level { return m.level }

type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

// --- Tests ---

func TestConnSink(t *testing.T) {
	c := &mockConn{}
	d := New(NewConnSink(c))
	d.SetEnabled(true)

	d.Print(Text("T="))
	d.Println(Float(21.5))
	d.Print(Text(""))

	if want := []byte("T=21.50\r\n"); !bytes.Equal(c.tx, want) {
		t.Errorf("Expected %q on the wire, got %q", want, c.tx)
	}
	// Empty writes must not produce a transaction.
	if c.calls != 3 {
		t.Errorf("Expected 3 transactions, got %d", c.calls)
	}
}

func TestConnSinkError(t *testing.T) {
	errBus := errors.New("bus fault")
	s := NewConnSink(&mockConn{err: errBus})

	n, err := s.Write([]byte("x"))
	if !errors.Is(err, errBus) || n != 0 {
		t.Errorf("Expected (0, %v), got (%d, %v)", errBus, n, err)
	}

	// Emission ignores sink errors.
	d := New(s)
	d.SetEnabled(true)
	d.Print(Text("still fine"))
}

func TestConnSinkString(t *testing.T) {
	if got := NewConnSink(&mockConn{}).String(); got != "debugsink(mockConn)" {
		t.Errorf("Expected %q, got %q", "debugsink(mockConn)", got)
	}
}

func TestJumperEnabled(t *testing.T) {
	tests := []struct {
		name  string
		level gpio.Level
		want  bool
	}{
		{"tied low", gpio.Low, true},
		{"open", gpio.High, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &mockJumper{level: tt.level}
			got, err := jumperEnabled(p)
			if err != nil {
				t.Fatalf("jumperEnabled failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if p.pull != gpio.PullUp {
				t.Errorf("Expected pull-up, got %v", p.pull)
			}
		})
	}
}

func TestJumperError(t *testing.T) {
	p := &mockJumper{level: gpio.Low, err: errors.New("busy")}
	if ok, err := jumperEnabled(p); err == nil || ok {
		t.Errorf("Expected error and disabled, got %v, %v", ok, err)
	}
}

func TestPortClose(t *testing.T) {
	c := &mockConn{}
	closer := &mockCloser{}
	sink := NewConnSink(c)
	p := &Port{Debugger: New(sink), sink: sink, closer: closer}
	p.SetEnabled(true)

	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !closer.closed {
		t.Error("Expected port to be closed")
	}
	if p.Enabled() {
		t.Error("Expected output to be disabled after Close")
	}

	p.Print(Text("late"))
	if len(c.tx) != 0 {
		t.Errorf("Expected no output after Close, got %q", c.tx)
	}
}

func TestPortCloseError(t *testing.T) {
	sink := NewConnSink(&mockConn{})
	p := &Port{Debugger: New(sink), sink: sink, closer: &mockCloser{err: errors.New("ebusy")}}
	SetLogger(nil)
	defer SetLogger(&stdLogger{})

	err := p.Close()
	if !errors.Is(err, ErrPkg) {
		t.Errorf("Expected error wrapping ErrPkg, got %v", err)
	}
}
