// Package auth gates a session behind an ID/password pair with a bounded
// number of attempts.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
)

const (
	MaxAttempts    = 3
	IDLength       = 11
	PasswordLength = 6
)

var (
	ErrInvalidID       = errors.New("id must be 11 digits long")
	ErrInvalidPassword = errors.New("password must be 6 digits long")
	ErrWrongPassword   = errors.New("password does not match")
	ErrTooManyAttempts = errors.New("too many failed attempts")
)

// Prompter supplies credentials for one attempt and is told why an attempt
// was rejected.
type Prompter interface {
	Credentials(ctx context.Context, attempt int) (id, password string, err error)
	Reject(ctx context.Context, reason error)
}

type CredentialStore interface {
	Verify(ctx context.Context, id, secret string) (bool, error)
	Enroll(ctx context.Context, id, secret string) error
}

type Dependency struct {
	Prompter    Prompter
	Credentials CredentialStore
}

type Authenticator struct {
	prompter    Prompter
	credentials CredentialStore
}

func New(dep Dependency) *Authenticator {
	return &Authenticator{
		prompter:    dep.Prompter,
		credentials: dep.Credentials,
	}
}

// Authenticate asks for credentials until a valid pair is given or
// MaxAttempts is used up. A read error from the prompter ends the attempt
// loop and counts as exhaustion.
func (a *Authenticator) Authenticate(ctx context.Context) (entity.Account, error) {
	if a.prompter == nil {
		return entity.Account{}, pkgerror.NewServer(errors.New("missing prompter"))
	}

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		id, password, err := a.prompter.Credentials(ctx, attempt)
		if err != nil {
			slog.WarnContext(ctx, "credential input ended", "attempt", attempt, "error", err)
			return entity.Account{}, pkgerror.NewUnauthorized(ErrTooManyAttempts)
		}

		if err := a.check(ctx, id, password); err != nil {
			slog.InfoContext(ctx, "login attempt rejected", "attempt", attempt, "error", err)
			a.prompter.Reject(ctx, err)
			continue
		}

		return entity.NewAccount(id, password), nil
	}

	slog.WarnContext(ctx, "login attempts exhausted", "max_attempts", MaxAttempts)
	return entity.Account{}, pkgerror.NewUnauthorized(ErrTooManyAttempts)
}

func (a *Authenticator) check(ctx context.Context, id, password string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if a.credentials == nil {
		return nil
	}

	ok, err := a.credentials.Verify(ctx, id, password)
	switch {
	case errors.Is(err, pkgerror.ErrNotFound):
		if err := a.credentials.Enroll(ctx, id, password); err != nil {
			return pkgerror.NewServer(err)
		}
		return nil
	case err != nil:
		return pkgerror.NewServer(err)
	case !ok:
		return pkgerror.NewBusinessError(ErrWrongPassword, pkgerror.CodeUnauthorized)
	}
	return nil
}

func ValidateID(id string) error {
	if !digitsOfLength(id, IDLength) {
		return pkgerror.NewInvalidInput(ErrInvalidID)
	}
	return nil
}

func ValidatePassword(password string) error {
	if !digitsOfLength(password, PasswordLength) {
		return pkgerror.NewInvalidInput(ErrInvalidPassword)
	}
	return nil
}

func digitsOfLength(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
