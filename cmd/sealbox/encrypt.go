package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	sealbox "github.com/sealbox/sealbox-go"
)

// readKeyFile loads a single-line base64 key file, tolerating trailing
// whitespace from editors.
func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// readPayload returns the positional argument, or stdin when no argument
// is given.
func readPayload(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// newEncryptCmd creates the encrypt subcommand. The public key path comes
// from the --public-key flag, the SEALBOX_PUBLIC_KEY environment variable,
// or the config file, in that order.
func newEncryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt [TEXT]",
		Short: "Encrypt a short text payload with the public key",
		Long: `Encrypt a UTF-8 text payload (at most 190 bytes) with the configured
public key and print the resulting base64 ciphertext. The payload is the
positional argument, or stdin when no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := readKeyFile(viper.GetString("public_key"))
			if err != nil {
				logFailure("encrypt", err)
				return err
			}

			kp, err := sealbox.ImportPublicKey(encoded)
			if err != nil {
				logFailure("encrypt", err)
				return err
			}

			plaintext, err := readPayload(cmd, args)
			if err != nil {
				logFailure("encrypt", err)
				return err
			}

			ciphertext, err := sealbox.FromKeyPair(kp).Encrypt(plaintext)
			if err != nil {
				logFailure("encrypt", err)
				return err
			}

			logger.Debug("payload encrypted", zap.String("op", "encrypt"))

			fmt.Fprintln(cmd.OutOrStdout(), ciphertext)
			return nil
		},
	}
}
