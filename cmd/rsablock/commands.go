package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/codec"
)

func runKeys(cCtx *cli.Context) error {
	c, err := newCipher(cCtx)
	if err != nil {
		return err
	}

	pub := c.PublicKey()
	priv := c.PrivateKey()
	w := cCtx.App.Writer

	fmt.Fprintf(w, "public:  n=%d e=%d\n", pub.N, pub.E)
	if !cCtx.Bool("reveal") {
		fmt.Fprintf(w, "private: %v\n", priv)
		return nil
	}
	fmt.Fprintf(w, "private: p=%d q=%d d=%d dp=%d dq=%d qinv=%d\n",
		priv.P, priv.Q, priv.D, priv.DP, priv.DQ, priv.QInv)
	return nil
}

func runEncode(cCtx *cli.Context) error {
	c, err := newCipher(cCtx)
	if err != nil {
		return err
	}

	blocks, err := codec.ToBlocks(cCtx.String("text"), c.PublicKey().N)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Fprintln(cCtx.App.Writer, formatBlocks(blocks))
	return nil
}

func runEncrypt(cCtx *cli.Context) error {
	c, err := newCipher(cCtx)
	if err != nil {
		return err
	}

	text := cCtx.String("text")
	if err := checkLowercase(text); err != nil {
		return err
	}

	blocks, err := c.EncryptText(cCtx.Context, text)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	fmt.Fprintln(cCtx.App.Writer, formatBlocks(blocks))
	return nil
}

func runDecrypt(cCtx *cli.Context) error {
	c, err := newCipher(cCtx)
	if err != nil {
		return err
	}

	blocks, err := parseBlocks(cCtx.String("blocks"))
	if err != nil {
		return err
	}

	text, err := c.DecryptText(cCtx.Context, blocks)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	fmt.Fprintln(cCtx.App.Writer, text)
	return nil
}

// newCipher builds the Cipher from --config, with explicit flags taking
// precedence over file values.
func newCipher(cCtx *cli.Context) (*rsablock.Cipher, error) {
	cfg := rsablock.Config{}
	if path := cCtx.String("config"); path != "" {
		loaded, err := rsablock.ReadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
	}

	if cCtx.IsSet("p") {
		cfg.P = cCtx.Int64("p")
	}
	if cCtx.IsSet("q") {
		cfg.Q = cCtx.Int64("q")
	}
	if cCtx.IsSet("e") {
		cfg.E = cCtx.Int64("e")
	}
	if cCtx.IsSet("workers") {
		cfg.Workers = cCtx.Int("workers")
	}
	if cCtx.IsSet("log-level") {
		cfg.LogLevel = cCtx.String("log-level")
	}

	logger, err := cfg.Logger(cCtx.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	return rsablock.New(cfg, rsablock.WithLogger(logger))
}

func checkLowercase(text string) error {
	for i := 0; i < len(text); i++ {
		if text[i] < 'a' || text[i] > 'z' {
			return fmt.Errorf("text: character %q at offset %d is not a lowercase letter", text[i], i)
		}
	}
	return nil
}

func parseBlocks(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	blocks := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("blocks: %w", err)
		}
		blocks = append(blocks, v)
	}
	return blocks, nil
}

func formatBlocks(blocks []int64) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = strconv.FormatInt(b, 10)
	}
	return strings.Join(parts, ",")
}
