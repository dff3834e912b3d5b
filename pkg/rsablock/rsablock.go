package rsablock

import (
	"context"
	"fmt"
	"time"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/cipher"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/codec"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/keys"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/logging"
)

const (
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

// Cipher runs the text pipeline for one key pair:
//
//	text -> codec.ToBlocks -> cipher.Encrypt -> ciphertext blocks
//	ciphertext blocks -> cipher.Decrypt -> codec.FromBlocks -> text
//
// A Cipher is immutable after New and safe for concurrent use.
type Cipher struct {
	pub     keys.PublicKey
	priv    keys.PrivateKey
	workers int
	logger  logging.Logger
	metrics *Metrics
}

// Option customizes a Cipher.
type Option func(*Cipher)

// WithLogger sets the logger. The default discards records.
func WithLogger(l logging.Logger) Option {
	return func(c *Cipher) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the collectors updated on every call.
func WithMetrics(m *Metrics) Option {
	return func(c *Cipher) {
		c.metrics = m
	}
}

// New validates cfg and derives the key pair.
func New(cfg Config, opts ...Option) (*Cipher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrap("New", err)
	}

	pub, priv, err := keys.NewKeyPair(cfg.P, cfg.Q, cfg.E)
	if err != nil {
		return nil, wrap("New", err)
	}

	c := &Cipher{
		pub:     pub,
		priv:    priv,
		workers: cfg.Workers,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.logger.Debug(context.Background(), "cipher ready",
		"public_key", pub,
		"private_key", priv,
		"block_size", codec.BlockSize(pub.N),
		"workers", c.workers,
	)
	return c, nil
}

// PublicKey returns the encryption key.
func (c *Cipher) PublicKey() keys.PublicKey {
	return c.pub
}

// PrivateKey returns the decryption key.
func (c *Cipher) PrivateKey() keys.PrivateKey {
	return c.priv
}

// BlockSize returns the digit width of a plaintext block.
func (c *Cipher) BlockSize() int {
	return codec.BlockSize(c.pub.N)
}

// EncryptText encodes lowercase text into blocks and encrypts them. The
// final block is padded with 'x', so DecryptText may return trailing x's.
func (c *Cipher) EncryptText(ctx context.Context, text string) ([]int64, error) {
	blocks, err := codec.ToBlocks(text, c.pub.N)
	if err != nil {
		return nil, wrap("EncryptText", err)
	}
	ct, err := c.EncryptBlocks(ctx, blocks)
	if err != nil {
		return nil, wrap("EncryptText", err)
	}
	return ct, nil
}

// DecryptText decrypts blocks and decodes them back to text.
func (c *Cipher) DecryptText(ctx context.Context, blocks []int64) (string, error) {
	pt, err := c.DecryptBlocks(ctx, blocks)
	if err != nil {
		return "", wrap("DecryptText", err)
	}
	return codec.FromBlocks(pt, c.pub.N), nil
}

// EncryptBlocks encrypts blocks in order. Every block must lie in [0, n).
func (c *Cipher) EncryptBlocks(ctx context.Context, blocks []int64) ([]int64, error) {
	return c.run(ctx, opEncrypt, blocks, func(ctx context.Context) ([]int64, error) {
		if c.workers == 1 {
			return cipher.Encrypt(blocks, c.pub), nil
		}
		return cipher.EncryptConcurrent(ctx, blocks, c.pub, c.workers)
	})
}

// DecryptBlocks decrypts blocks in order. Every block must lie in [0, n).
func (c *Cipher) DecryptBlocks(ctx context.Context, blocks []int64) ([]int64, error) {
	return c.run(ctx, opDecrypt, blocks, func(ctx context.Context) ([]int64, error) {
		if c.workers == 1 {
			return cipher.Decrypt(blocks, c.priv), nil
		}
		return cipher.DecryptConcurrent(ctx, blocks, c.priv, c.workers)
	})
}

func (c *Cipher) run(ctx context.Context, op string, blocks []int64, fn func(context.Context) ([]int64, error)) ([]int64, error) {
	start := time.Now()

	var out []int64
	err := c.checkBlocks(blocks)
	if err == nil {
		out, err = fn(ctx)
	}

	elapsed := time.Since(start)
	c.metrics.RecordOperation(op, len(blocks), elapsed, err)
	if err != nil {
		c.logger.Warn(ctx, "cipher operation failed", "op", op, "blocks", len(blocks), "error", err)
		return nil, err
	}

	c.logger.Debug(ctx, "cipher operation done", "op", op, "blocks", len(blocks), "duration", elapsed)
	return out, nil
}

func (c *Cipher) checkBlocks(blocks []int64) error {
	for i, b := range blocks {
		if b < 0 || b >= c.pub.N {
			return fmt.Errorf("%w: block[%d]=%d, n=%d", ErrBlockOutOfRange, i, b, c.pub.N)
		}
	}
	return nil
}
