package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sendcast/sendcast-cli/internal/styles"
)

// Mode selects the presentation channel for a command invocation.
type Mode int

const (
	ModePretty Mode = iota
	ModeJSON
	ModeQuiet
)

// Printer routes human and machine output for one command invocation.
// Pretty mode renders styled text; JSON mode emits exactly one envelope;
// quiet mode suppresses everything except errors.
type Printer struct {
	mode Mode
	out  io.Writer
	err  io.Writer
}

// NewPrinter creates a printer writing to stdout/stderr.
func NewPrinter(mode Mode) *Printer {
	return &Printer{mode: mode, out: os.Stdout, err: os.Stderr}
}

// NewPrinterTo creates a printer with explicit writers, for tests.
func NewPrinterTo(mode Mode, out, errOut io.Writer) *Printer {
	return &Printer{mode: mode, out: out, err: errOut}
}

func (p *Printer) Mode() Mode    { return p.mode }
func (p *Printer) JSON() bool    { return p.mode == ModeJSON }
func (p *Printer) Quiet() bool   { return p.mode == ModeQuiet }
func (p *Printer) Pretty() bool  { return p.mode == ModePretty }
func (p *Printer) Out() io.Writer { return p.out }

// Successf prints a checkmarked success line. Pretty mode only.
func (p *Printer) Successf(format string, args ...interface{}) {
	if !p.Pretty() {
		return
	}
	fmt.Fprintln(p.out, styles.PassStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// Infof prints a bulleted info line. Pretty mode only.
func (p *Printer) Infof(format string, args ...interface{}) {
	if !p.Pretty() {
		return
	}
	fmt.Fprintln(p.out, styles.MutedStyle.Render("• "+fmt.Sprintf(format, args...)))
}

// Warnf prints a highlighted warning line. Pretty mode only.
func (p *Printer) Warnf(format string, args ...interface{}) {
	if !p.Pretty() {
		return
	}
	fmt.Fprintln(p.out, styles.WarnStyle.Render("! "+fmt.Sprintf(format, args...)))
}

// Errorf prints a single-line error to stderr. Printed in every mode:
// quiet suppresses noise, never errors. JSON callers should prefer
// ErrorEnvelope so machine consumers get a parseable shape.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.err, styles.FailStyle.Render("✖ Error: ")+fmt.Sprintf(format, args...))
}

// Println prints raw text. Pretty mode only.
func (p *Printer) Println(args ...interface{}) {
	if !p.Pretty() {
		return
	}
	fmt.Fprintln(p.out, args...)
}

// Envelope emits a JSON envelope to stdout. JSON mode only; in other
// modes it is a no-op so callers can emit unconditionally.
func (p *Printer) Envelope(env Envelope) error {
	if !p.JSON() {
		return nil
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(p.out, string(data))
	return nil
}

// ErrorEnvelope emits a failure envelope to stderr in JSON mode, or a
// plain error line otherwise.
func (p *Printer) ErrorEnvelope(env Envelope) {
	if p.JSON() {
		data, err := json.MarshalIndent(env, "", "  ")
		if err == nil {
			fmt.Fprintln(p.err, string(data))
			return
		}
	}
	msg := "unknown error"
	if env.Error != nil {
		msg = *env.Error
	}
	p.Errorf("%s", msg)
}
