// Package pipeline runs ordered, fallible build steps.
//
// Steps run one at a time in declaration order. The first failure stops the
// chain; later steps never start. A Finally step, when present, runs exactly
// once after the chain whether or not it failed.
package pipeline

import (
	"context"
	"errors"

	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/core/domain"
	"github.com/shinolab/autd3-link-soem/internal/core/ports"
)

// StepStatus is the lifecycle state of a step within one run.
type StepStatus string

const (
	// StatusPending indicates the step has not started.
	StatusPending StepStatus = "Pending"
	// StatusCompleted indicates the step finished successfully.
	StatusCompleted StepStatus = "Completed"
	// StatusFailed indicates the step returned an error.
	StatusFailed StepStatus = "Failed"
	// StatusSkipped indicates the step never started because an earlier one failed.
	StatusSkipped StepStatus = "Skipped"
)

// Step is one unit of work: an external invocation, or an in-process action
// when Action is set.
type Step struct {
	Invocation domain.Invocation
	Action     func(ctx context.Context) error
	// Name overrides the label derived from the invocation.
	Name string
}

// Exec returns a step running inv through the executor.
func Exec(inv domain.Invocation) Step {
	return Step{Invocation: inv}
}

// Do returns a step running action in process.
func Do(name string, action func(ctx context.Context) error) Step {
	return Step{Name: name, Action: action}
}

// Label names the step in progress output.
func (s Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Invocation.Label()
}

// Describe renders the step for a dry run.
func (s Step) Describe() string {
	if s.Action != nil {
		return "(" + s.Label() + ")"
	}
	return s.Invocation.String()
}

// Pipeline is an ordered list of steps with an optional trailing step that
// always runs.
type Pipeline struct {
	Steps   []Step
	Finally *Step
}

// Single returns a pipeline of one invocation.
func Single(inv domain.Invocation) Pipeline {
	return Pipeline{Steps: []Step{Exec(inv)}}
}

// Labels returns the labels of every step, Finally included, in run order.
func (p Pipeline) Labels() []string {
	labels := make([]string, 0, len(p.Steps)+1)
	for _, s := range p.all() {
		labels = append(labels, s.Label())
	}
	return labels
}

// Describe returns the dry-run rendering of every step in run order.
func (p Pipeline) Describe() []string {
	lines := make([]string, 0, len(p.Steps)+1)
	for _, s := range p.all() {
		lines = append(lines, s.Describe())
	}
	return lines
}

func (p Pipeline) all() []Step {
	if p.Finally == nil {
		return p.Steps
	}
	return append(append([]Step(nil), p.Steps...), *p.Finally)
}

// Report records the outcome of each step of one run, in run order.
type Report struct {
	Labels   []string
	Statuses []StepStatus
}

// Runner executes pipelines, wrapping each step in a tracing span.
type Runner struct {
	executor ports.Executor
	tracer   ports.Tracer
}

// NewRunner creates a Runner.
func NewRunner(executor ports.Executor, tracer ports.Tracer) *Runner {
	return &Runner{executor: executor, tracer: tracer}
}

// Run executes p and returns the first step failure joined with any Finally
// failure.
func (r *Runner) Run(ctx context.Context, p Pipeline) (Report, error) {
	steps := p.all()
	report := Report{
		Labels:   p.Labels(),
		Statuses: make([]StepStatus, len(steps)),
	}
	for i := range report.Statuses {
		report.Statuses[i] = StatusPending
	}

	r.tracer.EmitPlan(ctx, report.Labels)

	var runErr error
	for i, step := range p.Steps {
		if runErr == nil {
			if err := ctx.Err(); err != nil {
				runErr = zerr.Wrap(err, "build interrupted")
			}
		}
		if runErr != nil {
			report.Statuses[i] = StatusSkipped
			continue
		}

		if err := r.runStep(ctx, step); err != nil {
			report.Statuses[i] = StatusFailed
			runErr = err
			continue
		}
		report.Statuses[i] = StatusCompleted
	}

	if p.Finally == nil {
		return report, runErr
	}

	// Finally must run even when ctx was cancelled by an earlier failure.
	finalErr := r.runStep(context.WithoutCancel(ctx), *p.Finally)
	last := len(steps) - 1
	if finalErr != nil {
		report.Statuses[last] = StatusFailed
	} else {
		report.Statuses[last] = StatusCompleted
	}

	return report, errors.Join(runErr, finalErr)
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	var opts []ports.SpanOption
	if step.Action == nil {
		opts = append(opts, ports.WithCommand(step.Invocation.String()))
	}

	ctx, span := r.tracer.Start(ctx, step.Label(), opts...)
	defer span.End()

	var err error
	if step.Action != nil {
		err = step.Action(ctx)
	} else {
		err = r.executor.Execute(ctx, step.Invocation, span, span)
	}

	if err != nil {
		span.RecordError(err)
	}
	return err
}
