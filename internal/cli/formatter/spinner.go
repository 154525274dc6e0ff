package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner draws a progress line on w while the catalog loads. After the
// first second it appends the elapsed time, so a slow remote catalog is
// visibly still in flight.
type Spinner struct {
	w       io.Writer
	message string

	once    sync.Once
	started bool
	stop    chan struct{}
	done    chan struct{}
}

func NewSpinner(w io.Writer, message string) *Spinner {
	return &Spinner{
		w:       w,
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation. Call Stop to end it.
func (s *Spinner) Start() {
	s.started = true
	go func() {
		defer close(s.done)
		begin := time.Now()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.stop:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprint(s.w, "\r\033[K"+spinnerLine(spinnerFrames[i%len(spinnerFrames)], s.message, time.Since(begin)))
			}
		}
	}()
}

// Stop ends the animation and clears the line. Calling it more than once,
// or without Start, is fine.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		if s.started {
			<-s.done
		}
	})
}

func spinnerLine(frame, message string, elapsed time.Duration) string {
	line := "  " + StylePurple.Render(frame) + " " + Dim(message)
	if elapsed >= time.Second {
		line += Dim(fmt.Sprintf(" (%ds)", int(elapsed/time.Second)))
	}
	return line
}

// StartSpinner starts a spinner on w and returns its Stop.
func StartSpinner(w io.Writer, message string) func() {
	s := NewSpinner(w, message)
	s.Start()
	return s.Stop
}
