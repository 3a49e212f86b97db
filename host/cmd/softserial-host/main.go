package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"softserial/host/link"
	"softserial/host/serial"

	tty "github.com/mattn/go-tty"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device wired to the soft serial pins")
	baud    = flag.Int("baud", 9600, "Baud rate, must match the firmware")
	mode    = flag.String("mode", "term", "term: interactive terminal, check: echo integrity test")
	frames  = flag.Int("frames", 100, "Probe frames to send in check mode")
	payload = flag.Int("payload", 16, "Payload bytes per probe frame")
	timeout = flag.Duration("timeout", 500*time.Millisecond, "Echo timeout per frame")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

// escapeKey (Ctrl-]) leaves terminal mode
const escapeKey = 0x1d

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	l, err := link.ConnectWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer l.Close()
	l.Verbose = *verbose

	switch *mode {
	case "term":
		err = runTerminal(l.Port())
	case "check":
		err = runCheck(l)
	default:
		err = fmt.Errorf("unknown mode %q (want term or check)", *mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		l.Close()
		os.Exit(1)
	}
}

func runCheck(l *link.Link) error {
	fmt.Printf("Checking soft serial link on %s at %d baud (%d frames x %d bytes)...\n",
		*device, *baud, *frames, *payload)

	start := time.Now()
	rep, err := l.Check(link.CheckConfig{
		Frames:     *frames,
		PayloadLen: *payload,
		Timeout:    *timeout,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%v in %v\n", rep, time.Since(start).Round(time.Millisecond))
	if !rep.OK() {
		return errors.New("link check failed")
	}
	fmt.Println("PASS")
	return nil
}

func runTerminal(port serial.Port) error {
	t, err := tty.Open()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer t.Close()

	restore, err := t.Raw()
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer restore()

	fmt.Printf("Connected to %s at %d baud. Ctrl-] to exit.\r\n", *device, *baud)

	done := make(chan struct{})
	defer close(done)
	go pump(os.Stdout, port, done)

	var enc [utf8.UTFMax]byte
	for {
		r, err := t.ReadRune()
		if err != nil {
			return fmt.Errorf("failed to read keyboard: %w", err)
		}
		if r == escapeKey {
			fmt.Print("\r\n")
			return nil
		}
		n := utf8.EncodeRune(enc[:], r)
		if _, err := port.Write(enc[:n]); err != nil {
			return fmt.Errorf("failed to write to port: %w", err)
		}
	}
}

// pump copies port output to w until done is closed. A read timeout shows up
// as io.EOF from the port and is not the end of the stream.
func pump(w io.Writer, port io.Reader, done <-chan struct{}) {
	buf := make([]byte, 64)
	for {
		select {
		case <-done:
			return
		default:
		}
		n, err := port.Read(buf)
		if n > 0 {
			w.Write(buf[:n])
		}
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(os.Stderr, "\r\nError: %v\r\n", err)
			return
		}
	}
}
