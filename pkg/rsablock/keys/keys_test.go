package keys_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/keys"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/numtheory"
)

func TestMakePublicKey(t *testing.T) {
	pub := keys.MakePublicKey(43, 59, 13)
	assert.Equal(t, keys.PublicKey{N: 2537, E: 13}, pub)
}

func TestMakePrivateKey(t *testing.T) {
	priv, err := keys.MakePrivateKey(43, 59, 13)
	require.NoError(t, err)

	assert.Equal(t, keys.PrivateKey{
		P:    43,
		Q:    59,
		D:    937,
		DP:   13,
		DQ:   9,
		QInv: 35,
	}, priv)
	assert.Equal(t, int64(2537), priv.N())

	phi := int64(42 * 58)
	assert.Equal(t, int64(1), (priv.D*13)%phi)
	assert.Equal(t, int64(1), (priv.QInv*priv.Q)%priv.P)
}

func TestMakePrivateKeyNoInverse(t *testing.T) {
	// e = 3 shares a factor with (43-1)(59-1).
	_, err := keys.MakePrivateKey(43, 59, 3)
	require.Error(t, err)

	var nie *numtheory.NoInverseError
	require.True(t, errors.As(err, &nie))
	assert.Equal(t, int64(3), nie.A)
	assert.Equal(t, int64(2436), nie.N)

	// p and q sharing a factor makes q non-invertible mod p.
	_, err = keys.MakePrivateKey(6, 9, 7)
	assert.ErrorIs(t, err, numtheory.ErrNoInverse)
}

func TestNewKeyPair(t *testing.T) {
	pub, priv, err := keys.NewKeyPair(61, 53, 17)
	require.NoError(t, err)
	assert.Equal(t, int64(3233), pub.N)
	assert.Equal(t, int64(17), pub.E)
	assert.Equal(t, int64(2753), priv.D)
	assert.Equal(t, pub.N, priv.N())

	_, _, err = keys.NewKeyPair(43, 59, 3)
	assert.ErrorIs(t, err, numtheory.ErrNoInverse)
}

func TestPrivateKeyRedaction(t *testing.T) {
	priv, err := keys.MakePrivateKey(43, 59, 13)
	require.NoError(t, err)

	for _, s := range []string{
		priv.String(),
		fmt.Sprintf("%v", priv),
		fmt.Sprintf("%+v", priv),
		fmt.Sprintf("%#v", priv),
	} {
		assert.NotContains(t, s, "937")
		assert.Contains(t, s, "[redacted]")
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
	logger.Info("key loaded", "key", priv, "pub", keys.MakePublicKey(43, 59, 13))

	out := buf.String()
	assert.False(t, strings.Contains(out, "937"), "log output leaked d: %s", out)
	assert.Contains(t, out, "key.private_key=[redacted]")
	assert.Contains(t, out, "pub.n=2537")
}
