package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/sendcast/sendcast-cli/internal/styles"
)

// Spinner renders cooperative progress indication during remote calls.
// It stays silent in JSON and quiet modes so machine output is never
// interleaved with chrome.
type Spinner struct {
	p       *Printer
	message string

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// NewSpinner creates a spinner bound to a printer.
func NewSpinner(p *Printer, message string) *Spinner {
	return &Spinner{p: p, message: message}
}

// Start begins rendering frames. No-op outside pretty mode.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running || !s.p.Pretty() {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	frames := spinner.MiniDot.Frames
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(time.Second / 10)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-s.stop:
				fmt.Fprint(s.p.Out(), "\r\033[K")
				return
			case <-ticker.C:
				frame := styles.MutedStyle.Render(frames[i%len(frames)])
				fmt.Fprintf(s.p.Out(), "\r%s %s", frame, s.message)
				i++
			}
		}
	}()
}

// Success stops the spinner and prints a checkmarked completion line.
func (s *Spinner) Success(message string) {
	s.halt()
	s.p.Successf("%s", message)
}

// Fail stops the spinner and prints a failure marker. The error itself
// is reported by the caller.
func (s *Spinner) Fail(message string) {
	s.halt()
	if s.p.Pretty() {
		fmt.Fprintln(s.p.Out(), styles.FailStyle.Render("✖ "+message))
	}
}

func (s *Spinner) halt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	close(s.stop)
	<-s.done
	s.running = false
}
