package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "rsablock",
		Usage:     "Textbook RSA block cipher over lowercase text (not secure)",
		Version:   rsablock.WrapperVersion(),
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:   "keys",
				Usage:  "Print the key pair derived from p, q and e",
				Flags:  append(keyFlags(), &cli.BoolFlag{Name: "reveal", Usage: "print private key parameters in the clear"}),
				Action: runKeys,
			},
			{
				Name:  "encode",
				Usage: "Print the plaintext blocks of a message without encrypting",
				Flags: append(keyFlags(), &cli.StringFlag{
					Name:     "text",
					Aliases:  []string{"t"},
					Usage:    "lowercase message",
					Required: true,
				}),
				Action: runEncode,
			},
			{
				Name:  "encrypt",
				Usage: "Encrypt a lowercase message into ciphertext blocks",
				Flags: append(keyFlags(), &cli.StringFlag{
					Name:     "text",
					Aliases:  []string{"t"},
					Usage:    "lowercase message",
					Required: true,
				}),
				Action: runEncrypt,
			},
			{
				Name:  "decrypt",
				Usage: "Decrypt comma-separated ciphertext blocks",
				Flags: append(keyFlags(), &cli.StringFlag{
					Name:     "blocks",
					Aliases:  []string{"b"},
					Usage:    "ciphertext blocks, e.g. 981,461",
					Required: true,
				}),
				Action: runDecrypt,
			},
		},
	}
}

func keyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML file with p, q, e, workers and log_level",
		},
		&cli.Int64Flag{Name: "p", Usage: "first prime"},
		&cli.Int64Flag{Name: "q", Usage: "second prime"},
		&cli.Int64Flag{Name: "e", Usage: "public exponent"},
		&cli.IntFlag{Name: "workers", Usage: "goroutines per call (0 = GOMAXPROCS)"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
	}
}
