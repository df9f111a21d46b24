package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c2fo/webftp"
	"github.com/c2fo/webftp/backend"
	"github.com/c2fo/webftp/utils"
)

const passwordEnv = "WEBFTP_PASSWORD"

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls <protocol://user@host[:port]/path>",
		Short: "List a remote directory",
		Example: `  webftp ls sftp://bob@sftp.example.com/home/bob
  WEBFTP_PASSWORD=s3cr3t webftp ls ftps://bob@ftp.example.com:990/pub --secure implicit`,
		Args: cobra.ExactArgs(1),
		RunE: runLsCmd,
	}

	cmd.Flags().StringP("password", "p", "", "password (default $"+passwordEnv+")")
	cmd.Flags().String("secure", "", "FTP TLS mode: explicit or implicit")
	cmd.Flags().Duration("timeout", time.Minute, "overall timeout")

	return cmd
}

func runLsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	registerBackends(cfg)

	conf, p, err := utils.ParseRemoteURL(args[0])
	if err != nil {
		return err
	}
	if pw, _ := cmd.Flags().GetString("password"); pw != "" {
		conf.Password = pw
	} else if pw := os.Getenv(passwordEnv); pw != "" {
		conf.Password = pw
	}
	secure, _ := cmd.Flags().GetString("secure")
	if conf.TLS, err = webftp.ParseTLSMode(secure); err != nil {
		return err
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	entries, err := list(ctx, conf, p)
	if err != nil {
		return err
	}
	return printEntries(cmd.OutOrStdout(), entries)
}

func list(ctx context.Context, cfg webftp.ConnectionConfig, p string) ([]webftp.FileEntry, error) {
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	t, err := backend.Backend(cfg.Protocol)
	if err != nil {
		return nil, err
	}

	conn, err := t.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = conn.Close() }()

	return conn.List(ctx, p)
}

// printEntries writes directories first, then files, each sorted by name.
func printEntries(w io.Writer, entries []webftp.FileEntry) error {
	slices.SortFunc(entries, func(a, b webftp.FileEntry) int {
		if a.Kind != b.Kind {
			if a.Kind == webftp.KindDirectory {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})

	dirName := color.New(color.FgBlue, color.Bold).SprintFunc()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		name := e.Name
		if e.Kind == webftp.KindDirectory {
			name = dirName(name + "/")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", perms(e), e.Size, modified(e.ModifyTime), name)
	}
	return tw.Flush()
}

func perms(e webftp.FileEntry) string {
	kind := "-"
	if e.Kind == webftp.KindDirectory {
		kind = "d"
	}
	if e.Rights == nil {
		return kind + "?????????"
	}
	return kind + e.Rights.User + e.Rights.Group + e.Rights.Other
}

func modified(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format(time.DateTime)
}
