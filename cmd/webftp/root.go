package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend"
	"github.com/c2fo/webftp/backend/ftp"
	"github.com/c2fo/webftp/backend/sftp"
	"github.com/c2fo/webftp/credential"
	"github.com/c2fo/webftp/internal/config"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "webftp",
		Short:         "Browser file manager gateway for FTP, FTPS and SFTP servers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file (default ~/.webftp/config.toml)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newEncryptCmd())
	rootCmd.AddCommand(newDecryptCmd())
	rootCmd.AddCommand(newLsCmd())

	return rootCmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", configPath, err)
	}
	return cfg, nil
}

// registerBackends replaces the default transports with ones built from cfg.
func registerBackends(cfg config.Config) {
	ftpTransport := ftp.NewTransport(ftp.WithOptions(ftp.Options{
		DialTimeout:        cfg.Transfer.DialTimeout.Std(),
		DisableEPSV:        cfg.FTP.DisableEPSV,
		InsecureSkipVerify: cfg.FTP.InsecureSkipVerify,
	}))
	backend.Register(webftp.ProtocolFTP, ftpTransport)
	backend.Register(webftp.ProtocolFTPS, ftpTransport)

	backend.Register(webftp.ProtocolSFTP, sftp.NewTransport(sftp.WithOptions(sftp.Options{
		KeyFilePath:           cfg.SFTP.KeyFile,
		KeyPassphrase:         cfg.SFTP.KeyPassphrase,
		KnownHostsFile:        cfg.SFTP.KnownHostsFile,
		InsecureIgnoreHostKey: cfg.SFTP.InsecureIgnoreHostKey,
		DialTimeout:           cfg.Transfer.DialTimeout.Std(),
	})))
}

func newCipher(cfg config.Config) (*credential.Cipher, error) {
	if cfg.EncryptionKey == "" {
		return nil, fmt.Errorf("%w: set encryption_key or ENCRYPTION_KEY", webftp.ErrConfiguration)
	}
	return credential.New(cfg.EncryptionKey)
}
