package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	sealbox "github.com/sealbox/sealbox-go"
)

// newKeygenCmd creates the keygen subcommand. It generates a fresh key
// pair and writes both halves as single-line base64 files: PREFIX.pub
// world-readable, PREFIX.key owner-only.
func newKeygenCmd() *cobra.Command {
	var outPrefix string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new RSA-OAEP key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cipher, err := sealbox.Generate()
			if err != nil {
				logFailure("keygen", err)
				return err
			}

			exported, err := cipher.Export()
			if err != nil {
				logFailure("keygen", err)
				return err
			}

			pubPath := outPrefix + ".pub"
			privPath := outPrefix + ".key"

			if err := os.WriteFile(pubPath, []byte(exported.PublicKey+"\n"), 0o644); err != nil {
				logFailure("keygen", err)
				return fmt.Errorf("write public key: %w", err)
			}
			if err := os.WriteFile(privPath, []byte(exported.PrivateKey+"\n"), 0o600); err != nil {
				logFailure("keygen", err)
				return fmt.Errorf("write private key: %w", err)
			}

			logger.Debug("key pair generated",
				zap.String("op", "keygen"),
				zap.String("suite", sealbox.Ciphersuite),
			)

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", pubPath, privPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPrefix, "out", "o", "sealbox", "output file prefix")

	return cmd
}
