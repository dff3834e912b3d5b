package keys

import (
	"log/slog"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/logging"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/numtheory"
)

// PublicKey is the encryption half of a key pair: modulus N = p·q and
// public exponent E.
type PublicKey struct {
	N int64
	E int64
}

// PrivateKey holds the CRT decryption parameters derived from p, q and e.
//
//	D    = e⁻¹ mod (p−1)(q−1)
//	DP   = D mod (p−1)
//	DQ   = D mod (q−1)
//	QInv = q⁻¹ mod p
//
// String and LogValue never expose the fields.
type PrivateKey struct {
	P    int64
	Q    int64
	D    int64
	DP   int64
	DQ   int64
	QInv int64
}

// MakePublicKey returns {p·q, e}. The inputs are not validated: p and q must
// be prime and e coprime to (p−1)(q−1).
func MakePublicKey(p, q, e int64) PublicKey {
	return PublicKey{N: p * q, E: e}
}

// MakePrivateKey derives the private key for primes p, q and public exponent
// e. The *numtheory.NoInverseError from either inverse is returned as is.
func MakePrivateKey(p, q, e int64) (PrivateKey, error) {
	d, err := numtheory.ModularInverse(e, (p-1)*(q-1))
	if err != nil {
		return PrivateKey{}, err
	}

	qinv, err := numtheory.ModularInverse(q, p)
	if err != nil {
		return PrivateKey{}, err
	}

	return PrivateKey{
		P:    p,
		Q:    q,
		D:    d,
		DP:   d % (p - 1),
		DQ:   d % (q - 1),
		QInv: qinv,
	}, nil
}

// NewKeyPair builds both keys from the same (p, q, e).
func NewKeyPair(p, q, e int64) (PublicKey, PrivateKey, error) {
	priv, err := MakePrivateKey(p, q, e)
	if err != nil {
		return PublicKey{}, PrivateKey{}, err
	}
	return MakePublicKey(p, q, e), priv, nil
}

// N returns the modulus p·q.
func (k PrivateKey) N() int64 {
	return k.P * k.Q
}

func (k PrivateKey) String() string {
	return "PrivateKey{" + logging.Placeholder() + "}"
}

// GoString keeps %#v from printing the fields.
func (k PrivateKey) GoString() string {
	return k.String()
}

// LogValue implements slog.LogValuer.
func (k PrivateKey) LogValue() slog.Value {
	return slog.GroupValue(logging.Redacted("private_key"))
}

// LogValue implements slog.LogValuer.
func (k PublicKey) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("n", k.N),
		slog.Int64("e", k.E),
	)
}
