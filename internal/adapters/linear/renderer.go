// Package linear provides a synchronous, line-buffered progress renderer.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"github.com/shinolab/autd3-link-soem/internal/ui/output"
	"github.com/shinolab/autd3-link-soem/internal/ui/style"
)

// Renderer implements ports.Renderer with chronological, step-prefixed lines.
// Step output goes to stdout; status lines go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	steps   map[string]*stepState
	buffers map[string]*bytes.Buffer
}

type stepState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer using the CI colour profile. Nil writers
// default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	return NewRendererWithProfile(stdout, stderr, output.ColorProfileANSI)
}

// NewRendererWithProfile creates a Renderer using profileFn for status colours.
func NewRendererWithProfile(stdout, stderr io.Writer, profileFn func() termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithProfile(stderr, profileFn),
		steps:   make(map[string]*stepState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op; the renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}
	return nil
}

// OnPlanEmit prints the planned steps in order.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan := strings.Join(steps, " "+style.Arrow+" ")
	_, _ = fmt.Fprintf(r.stderr, "Running %d step(s): %s\n", len(steps), plan)
}

// OnStepStart prints a step start message.
func (r *Renderer) OnStepStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[spanID] = &stepState{name: name, startTime: startTime}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnStepLog buffers data and prints complete lines with the step prefix.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Keep the partial line for the next write.
			if len(line) > 0 {
				rest := new(bytes.Buffer)
				rest.Write(line)
				r.buffers[spanID] = rest
			}
			break
		}
		r.printLineLocked(step.name, line)
	}
}

// OnStepComplete flushes the step's buffer and prints its outcome.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(step.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", step.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	} else {
		symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}

	delete(r.steps, spanID)
	delete(r.buffers, spanID)
}

// flushBufferLocked must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(step.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked must be called with r.mu held.
func (r *Renderer) printLineLocked(stepName string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", stepName, line)
}
