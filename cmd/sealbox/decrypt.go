package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	sealbox "github.com/sealbox/sealbox-go"
)

// newDecryptCmd creates the decrypt subcommand. The private key path comes
// from the --private-key flag, the SEALBOX_PRIVATE_KEY environment
// variable, or the config file, in that order.
func newDecryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [CIPHERTEXT]",
		Short: "Decrypt a base64 ciphertext with the private key",
		Long: `Decrypt a base64 ciphertext with the configured private key and print
the plaintext. The ciphertext is the positional argument, or stdin when
no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := readKeyFile(viper.GetString("private_key"))
			if err != nil {
				logFailure("decrypt", err)
				return err
			}

			kp, err := sealbox.ImportPrivateKey(encoded)
			if err != nil {
				logFailure("decrypt", err)
				return err
			}

			ciphertext, err := readPayload(cmd, args)
			if err != nil {
				logFailure("decrypt", err)
				return err
			}

			plaintext, err := sealbox.FromKeyPair(kp).Decrypt(ciphertext)
			if err != nil {
				logFailure("decrypt", err)
				return err
			}

			logger.Debug("payload decrypted", zap.String("op", "decrypt"))

			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}
}
