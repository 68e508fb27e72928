// main.go sets up the command-line interface (CLI) for the sealbox
// utility using the Cobra library. It defines the root command, the
// keygen/encrypt/decrypt subcommands, and the main entry point. The
// CLI is a thin host around the sealbox library: it constructs one
// cipher per invocation and hands the handle to the subcommand.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	sealbox "github.com/sealbox/sealbox-go"
)

var version = "dev" // this will be set by the linker

var cfgFile string

// logger reports operation names and failure kinds only. Plaintext, key
// material, and ciphertext never reach it.
var logger = zap.NewNop()

// main is the entry point of the application.
func main() {
	if err := rootCmd.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}

var rootCmd *cobra.Command

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd = newRootCmd()

	// Set defaults in viper. These are used if not set in the config file
	// or by flags.
	viper.SetDefault("public_key", "sealbox.pub")
	viper.SetDefault("private_key", "sealbox.key")
}

// newRootCmd creates and configures a new root cobra command.
// Fresh instances are also created for isolated testing.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sealbox",
		Short: "sealbox encrypts short text payloads with RSA-OAEP.",
		Long: `sealbox generates RSA-OAEP-2048/SHA-256 key pairs, encrypts and
decrypts short UTF-8 text payloads, and stores key material as
transport-safe base64 (SPKI for public keys, PKCS#8 for private keys).

Plaintexts are limited to 190 bytes per message; chunk larger payloads
yourself or use a hybrid scheme.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool("verbose") {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				logger = l
			}
			return nil
		},
	}

	cmd.AddCommand(newKeygenCmd())
	cmd.AddCommand(newEncryptCmd())
	cmd.AddCommand(newDecryptCmd())

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sealbox.yaml or $HOME/.sealbox.yaml)")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
	cmd.PersistentFlags().String("public-key", "sealbox.pub", "path to the base64 SPKI public key")
	cmd.PersistentFlags().String("private-key", "sealbox.key", "path to the base64 PKCS#8 private key")

	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("public_key", cmd.PersistentFlags().Lookup("public-key"))
	viper.BindPFlag("private_key", cmd.PersistentFlags().Lookup("private-key"))

	return cmd
}

// initConfig reads in a configuration file and environment variables.
// Viper searches for sealbox.yaml in the current and home directories and
// binds environment variables prefixed with "SEALBOX".
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("sealbox")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SEALBOX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; flags, env, and defaults cover it.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "read config %s: %v\n", cfgFile, err)
		}
	}
}

// failureKind maps an error to a stable diagnostic label. Labels carry no
// payload data and are safe to log.
func failureKind(err error) string {
	switch {
	case errors.Is(err, sealbox.ErrKeyGeneration):
		return "key_generation"
	case errors.Is(err, sealbox.ErrKeyExport):
		return "key_export"
	case errors.Is(err, sealbox.ErrKeyImport):
		return "key_import"
	case errors.Is(err, sealbox.ErrPlaintextTooLarge):
		return "plaintext_too_large"
	case errors.Is(err, sealbox.ErrInvalidCiphertextEncoding):
		return "ciphertext_encoding"
	case errors.Is(err, sealbox.ErrDecryption):
		return "decryption"
	case errors.Is(err, sealbox.ErrMissingPublicKey), errors.Is(err, sealbox.ErrMissingPrivateKey):
		return "missing_key"
	default:
		return "io"
	}
}

// logFailure records a failed operation with its kind only.
func logFailure(op string, err error) {
	logger.Warn("operation failed",
		zap.String("op", op),
		zap.String("kind", failureKind(err)),
	)
}
