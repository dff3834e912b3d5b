package rsablock_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/keys"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/logging"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/numtheory"
)

func newTestCipher(t *testing.T, workers int, opts ...rsablock.Option) *rsablock.Cipher {
	t.Helper()
	c, err := rsablock.New(rsablock.Config{P: 43, Q: 59, E: 13, Workers: workers}, opts...)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := newTestCipher(t, 1)
	assert.Equal(t, keys.PublicKey{N: 2537, E: 13}, c.PublicKey())
	assert.Equal(t, int64(937), c.PrivateKey().D)
	assert.Equal(t, 4, c.BlockSize())
}

func TestNewInvalid(t *testing.T) {
	_, err := rsablock.New(rsablock.Config{P: 43, Q: 59, E: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, rsablock.ErrInvalidConfig)

	var rerr *rsablock.Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "New", rerr.Op)
}

func TestNewNoInverse(t *testing.T) {
	// Passes validation (e coprime to phi) but q is not invertible mod p.
	_, err := rsablock.New(rsablock.Config{P: 6, Q: 9, E: 7})
	require.Error(t, err)
	assert.ErrorIs(t, err, rsablock.ErrNoInverse)
	assert.ErrorIs(t, err, numtheory.ErrNoInverse)
}

func TestEncryptDecryptBlocks(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		c := newTestCipher(t, workers)
		ctx := context.Background()

		ct, err := c.EncryptBlocks(ctx, []int64{704, 1115})
		require.NoError(t, err)
		assert.Equal(t, []int64{981, 461}, ct)

		pt, err := c.DecryptBlocks(ctx, []int64{981, 461})
		require.NoError(t, err)
		assert.Equal(t, []int64{704, 1115}, pt)
	}
}

func TestTextRoundTrip(t *testing.T) {
	c := newTestCipher(t, 2)
	ctx := context.Background()

	ct, err := c.EncryptText(ctx, "abcdefghij")
	require.NoError(t, err)
	assert.Len(t, ct, 5)

	text, err := c.DecryptText(ctx, ct)
	require.NoError(t, err)
	assert.Equal(t, "abcdefghij", text)

	ct, err = c.EncryptText(ctx, "hello")
	require.NoError(t, err)
	text, err = c.DecryptText(ctx, ct)
	require.NoError(t, err)
	assert.Equal(t, "hellox", text)
}

func TestBlockOutOfRange(t *testing.T) {
	c := newTestCipher(t, 1)
	ctx := context.Background()

	_, err := c.EncryptBlocks(ctx, []int64{1, 2537})
	assert.ErrorIs(t, err, rsablock.ErrBlockOutOfRange)

	_, err = c.DecryptText(ctx, []int64{-1})
	assert.ErrorIs(t, err, rsablock.ErrBlockOutOfRange)
}

func TestCancelledContext(t *testing.T) {
	c := newTestCipher(t, 4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.EncryptText(ctx, "abcdef")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := rsablock.NewMetrics(reg)
	c := newTestCipher(t, 1, rsablock.WithMetrics(m))
	ctx := context.Background()

	ct, err := c.EncryptText(ctx, "abcdefghij")
	require.NoError(t, err)
	_, err = c.DecryptText(ctx, ct)
	require.NoError(t, err)
	_, err = c.DecryptBlocks(ctx, []int64{9999})
	require.Error(t, err)

	assert.Equal(t, float64(5), testutil.ToFloat64(m.BlocksTotal.WithLabelValues("encrypt")))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.BlocksTotal.WithLabelValues("decrypt")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.OperationErrors.WithLabelValues("decrypt")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.OperationDuration))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *rsablock.Metrics
	m.RecordOperation("encrypt", 1, 0, nil)
}

func TestLoggingRedactsPrivateKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSON(&buf, slog.LevelDebug)

	c := newTestCipher(t, 1, rsablock.WithLogger(logger))
	_, err := c.EncryptText(context.Background(), "abc")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "cipher ready")
	assert.Contains(t, out, `"private_key":{"private_key":"[redacted]"}`)
	assert.Contains(t, out, "cipher operation done")
	assert.False(t, strings.Contains(out, `"d":937`))
}
