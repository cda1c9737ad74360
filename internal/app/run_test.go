package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shandysiswandi/gobank/internal/bank/auth"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "clean exit", err: nil, want: ExitOK},
		{name: "login exhausted", err: pkgerror.NewUnauthorized(auth.ErrTooManyAttempts), want: ExitFailure},
		{name: "wrapped login failure", err: fmt.Errorf("run: %w", pkgerror.NewUnauthorized(auth.ErrTooManyAttempts)), want: ExitFailure},
		{name: "internal failure", err: errors.New("boom"), want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDefaultConfigCoversModuleKeys(t *testing.T) {
	defaults := defaultConfig()
	for _, key := range []string{
		"console.pause",
		"credentials.bcrypt_cost",
		"receipts.workers",
		"receipts.buffer",
		"receipts.max_retries",
		"receipts.base_backoff",
		"statement.enabled",
		"statement.address",
	} {
		if _, ok := defaults[key]; !ok {
			t.Fatalf("missing default for %q", key)
		}
	}
}
