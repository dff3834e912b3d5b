package cipher

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/keys"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/numtheory"
)

// Encrypt maps every block b to b^E mod N. Blocks must be in [0, N).
func Encrypt(blocks []int64, pub keys.PublicKey) []int64 {
	out := make([]int64, len(blocks))
	for i, b := range blocks {
		out[i] = EncryptBlock(b, pub)
	}
	return out
}

// Decrypt recovers every block with Garner's CRT reconstruction.
func Decrypt(blocks []int64, priv keys.PrivateKey) []int64 {
	out := make([]int64, len(blocks))
	for i, c := range blocks {
		out[i] = DecryptBlock(c, priv)
	}
	return out
}

// EncryptBlock encrypts a single block.
func EncryptBlock(b int64, pub keys.PublicKey) int64 {
	return numtheory.FastModularExponentiation(b, pub.E, pub.N)
}

// DecryptBlock decrypts a single block:
//
//	m1 = c^DP mod p
//	m2 = c^DQ mod q
//	h  = QInv·(m1 − m2) mod p
//	m  = m2 + h·q
//
// The result equals ChineseRemainderTheorem([m1, m2], [p, q]) mod p·q.
func DecryptBlock(c int64, priv keys.PrivateKey) int64 {
	m1 := numtheory.FastModularExponentiation(c, priv.DP, priv.P)
	m2 := numtheory.FastModularExponentiation(c, priv.DQ, priv.Q)

	diff := m1 - m2
	if diff < 0 {
		diff += priv.P
	}
	h := numtheory.MulMod(priv.QInv, diff, priv.P)

	return m2 + h*priv.Q
}

// EncryptConcurrent is Encrypt with blocks spread over up to workers
// goroutines. workers <= 0 means runtime.GOMAXPROCS(0). The output order
// matches the input order.
func EncryptConcurrent(ctx context.Context, blocks []int64, pub keys.PublicKey, workers int) ([]int64, error) {
	return transform(ctx, blocks, workers, func(b int64) int64 {
		return EncryptBlock(b, pub)
	})
}

// DecryptConcurrent is Decrypt with blocks spread over up to workers
// goroutines. workers <= 0 means runtime.GOMAXPROCS(0). The output order
// matches the input order.
func DecryptConcurrent(ctx context.Context, blocks []int64, priv keys.PrivateKey, workers int) ([]int64, error) {
	return transform(ctx, blocks, workers, func(c int64) int64 {
		return DecryptBlock(c, priv)
	})
}

func transform(ctx context.Context, blocks []int64, workers int, fn func(int64) int64) ([]int64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]int64, len(blocks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, b := range blocks {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = fn(b)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop early without any goroutine observing cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
