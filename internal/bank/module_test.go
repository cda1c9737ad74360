package bank

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gobank/internal/bank/auth"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mapConfig map[string]any

func (m mapConfig) GetInt(key string) int64 {
	v, _ := m[key].(int)
	return int64(v)
}

func (m mapConfig) GetBool(key string) bool {
	v, _ := m[key].(bool)
	return v
}

func (m mapConfig) GetFloat(string) float64 { return 0 }

func (m mapConfig) GetString(key string) string {
	v, _ := m[key].(string)
	return v
}

func (m mapConfig) GetDuration(key string) time.Duration {
	v, _ := m[key].(time.Duration)
	return v
}

func (m mapConfig) GetBinary(string) []byte         { return nil }
func (m mapConfig) GetArray(string) []string        { return nil }
func (m mapConfig) GetMap(string) map[string]string { return nil }
func (m mapConfig) Close() error                    { return nil }

func newModule(t *testing.T, input string) (*Module, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	m, err := New(Dependency{
		Config: mapConfig{
			"receipts.buffer":         16,
			"receipts.workers":        1,
			"receipts.base_backoff":   time.Millisecond,
			"credentials.bcrypt_cost": bcrypt.MinCost,
		},
		In:  strings.NewReader(input),
		Out: out,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, m.Close(context.Background()))
	})

	return m, out
}

func TestModule_Session(t *testing.T) {
	m, out := newModule(t, "12345678901\n123456\n1\n100\n2\n150\n3\n98765432109\n40\n4\n5\n")

	require.NoError(t, m.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Enter User ID: Enter Password: ")
	assert.Contains(t, text, "Successfully deposited 100. New balance: 100\n")
	assert.Contains(t, text, "Insufficient balance.\n")
	assert.Contains(t, text, "Successfully sent 40 to 98765432109. New balance: 60\n")
	assert.Contains(t, text, "Recipient ID: 98765432109, Amount: 40, Date: ")
	assert.True(t, strings.HasSuffix(text, "Exiting.\n"))

	_, active := m.session.Current()
	assert.False(t, active)

	ok, err := m.ledger.CheckPassword(context.Background(), "12345678901", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.ledger.CheckPassword(context.Background(), "12345678901", "654321")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestModule_LoginExhausted(t *testing.T) {
	m, out := newModule(t, "1 1\n22 22\n333 333\n")

	err := m.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)
	assert.True(t, pkgerror.HasCode(err, pkgerror.CodeUnauthorized))

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "Invalid ID. ID must be 11 digits long.\n"))
	assert.True(t, strings.HasSuffix(text, "Too many failed attempts. Exiting.\n"))
	assert.NotContains(t, text, "1. Deposit")
}

func TestModule_InputEndsDuringLogin(t *testing.T) {
	m, out := newModule(t, "12345678901\n")

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)
	assert.Contains(t, out.String(), "Too many failed attempts. Exiting.\n")
}

func TestNew_RequiresIO(t *testing.T) {
	_, err := New(Dependency{Config: mapConfig{}})
	assert.Error(t, err)
}
