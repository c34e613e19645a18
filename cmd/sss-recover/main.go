// Command sss-recover reconstructs Shamir secrets from share documents.
//
// Each argument names a JSON, YAML or CBOR document ("-" reads standard
// input). The secret of every document is printed in decimal, one per line.
//
// Exit status is 0 on success, 1 for malformed input, 2 when the shares are
// mathematically inconsistent and 3 when -verify does not match.
package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/sss-lib/core/errs"
	"github.com/mr-shifu/sss-lib/core/hash"
	"github.com/mr-shifu/sss-lib/core/share"
	"github.com/mr-shifu/sss-lib/pkg/document"
	comm_cfg "github.com/mr-shifu/sss-lib/pkg/recovery/common/config"
	"github.com/mr-shifu/sss-lib/pkg/recovery/config"
	"github.com/mr-shifu/sss-lib/pkg/vault"
	"github.com/mr-shifu/sss-lib/protocols/shamir"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitOK        = 0
	exitMalformed = 1
	exitNumeric   = 2
	exitMismatch  = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {

	// Define command-line parameters

	flags := flag.NewFlagSet("sss-recover", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var formatName string
	flags.StringVar(&formatName, "format", "", "document format: json, yaml or cbor (default from file extension)")

	var modeName string
	flags.StringVar(&modeName, "mode", string(comm_cfg.ModeExact), "arithmetic: exact or field")

	var modulusText string
	flags.StringVar(&modulusText, "modulus", "", "prime modulus for field mode, decimal or 0x hex")

	var printDigest bool
	flags.BoolVar(&printDigest, "digest", false, "print the SHA3-256 digest of each secret")

	var verifyHex string
	flags.StringVar(&verifyHex, "verify", "", "expected SHA3-256 digest (hex) of every secret")

	var verbose bool
	flags.BoolVar(&verbose, "v", false, "log at debug level")

	var workers int
	flags.IntVar(&workers, "workers", runtime.NumCPU(), "documents recovered concurrently")

	if err := flags.Parse(args); err != nil {
		return exitMalformed
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	stdinArgs := 0
	for _, path := range paths {
		if path == "-" {
			stdinArgs++
		}
	}
	if stdinArgs > 1 {
		fmt.Fprintln(stderr, "sss-recover: standard input (-) may be given only once")
		return exitMalformed
	}

	logger := newLogger(stderr, verbose)
	defer func() { _ = logger.Sync() }()

	mode, err := config.ParseMode(modeName)
	if err != nil {
		return fail(stderr, err)
	}
	var modulus *saferith.Modulus
	if mode == comm_cfg.ModeField || modulusText != "" {
		modulus, err = config.ParseModulus(modulusText)
		if err != nil {
			return fail(stderr, err)
		}
	}
	var expected []byte
	if verifyHex != "" {
		expected, err = hex.DecodeString(verifyHex)
		if err != nil || len(expected) != hash.DigestLengthBytes {
			fmt.Fprintf(stderr, "sss-recover: -verify needs a %d byte hex digest\n", hash.DigestLengthBytes)
			return exitMalformed
		}
	}

	// Load documents

	docs := make([]share.Document, len(paths))
	for i, path := range paths {
		docs[i], err = load(path, formatName, stdin)
		if err != nil {
			return fail(stderr, errors.WithMessage(err, path))
		}
	}

	// Recover

	r := shamir.NewInMemoryRecovery(vault.InMemoryVaultFactory{}, logger)
	secrets, err := r.RecoverAll(context.Background(), docs, mode, modulus, workers)
	if err != nil {
		return fail(stderr, err)
	}

	status := exitOK
	for i, secret := range secrets {
		digest := hash.Digest(secret)
		if printDigest {
			fmt.Fprintf(stdout, "%s %x\n", secret.String(), digest)
		} else {
			fmt.Fprintln(stdout, secret.String())
		}
		if expected != nil && !bytes.Equal(digest, expected) {
			fmt.Fprintf(stderr, "sss-recover: %s: digest mismatch\n", paths[i])
			status = exitMismatch
		}
	}
	return status
}

func load(path, formatName string, stdin io.Reader) (share.Document, error) {
	if formatName == "" {
		if path == "-" {
			return document.Read(stdin, document.JSON)
		}
		return document.Load(path)
	}

	format, err := document.ParseFormat(formatName)
	if err != nil {
		return share.Document{}, err
	}
	if path == "-" {
		return document.Read(stdin, format)
	}
	return document.LoadAs(path, format)
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	encoderConfig := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	if verbose {
		level = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "sss-recover: %v\n", err)
	if errs.IsNumeric(err) {
		return exitNumeric
	}
	return exitMalformed
}
