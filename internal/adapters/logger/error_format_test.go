package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"

	"github.com/shinolab/autd3-link-soem/internal/adapters/logger"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
		{
			name: "plain error",
			err:  errors.New("simple"),
			want: []logger.ErrorEntry{{Message: "simple"}},
		},
		{
			name: "zerr chain ending in plain error",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "middle", Metadata: map[string]any{}},
				{Message: "root"},
			},
		},
		{
			name: "metadata stays with its link",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				return zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")
			}(),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{"outer_key": "outer_val"}},
				{Message: "inner", Metadata: map[string]any{"inner_key": "inner_val"}},
			},
		},
		{
			name: "empty link folds metadata forward",
			err:  zerr.With(errors.New("denied"), "path", "Cargo.toml"),
			want: []logger.ErrorEntry{
				{Message: "denied", Metadata: map[string]any{"path": "Cargo.toml"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"cause_key": "cause_val"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      cause_key: cause_val",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a", "mike": "m"},
			}},
			want: "Error: error\n       alpha: a\n       mike: m\n       zebra: z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
