package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/qyinm/staffdir/export"
	"github.com/qyinm/staffdir/fetcher"
	"github.com/qyinm/staffdir/logging"
)

type exportFlags struct {
	format string
	query  string
	output string
}

func newExportCmd(root *rootFlags) *cobra.Command {
	flags := &exportFlags{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the directory as a static HTML page or JSON",
		Long: `Resolve the directory once, apply the optional query and write the
table view (photo, name, job, admission date, phone) to stdout or a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, root, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "html", "Output format: html|json")
	cmd.Flags().StringVar(&flags.query, "query", "", "Only include employees matching this text")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func runExport(cmd *cobra.Command, root *rootFlags, flags *exportFlags) error {
	f, err := export.ParseFormat(flags.format)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, root)
	if err != nil {
		return err
	}
	logging.InitWriter(cmd.ErrOrStderr(), cfg.LogLevel)

	source := fetcher.New(cfg.FetcherOptions())
	employees, err := source.GetEmployees(cmd.Context())
	if err != nil {
		return err
	}
	snapshot := export.NewSnapshot(employees, flags.query, cfg.AssetDir, time.Now())
	logging.Info("exporting", "format", f, "rows", snapshot.Total, "of", len(employees))

	if flags.output == "" {
		return writeSnapshot(cmd.OutOrStdout(), f, snapshot)
	}
	file, err := os.Create(flags.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	return writeAndClose(file, f, snapshot)
}

// writeAndClose reports a failed Close, which is where buffered data is
// finally flushed for some writers.
func writeAndClose(wc io.WriteCloser, f export.Format, s export.Snapshot) error {
	if err := writeSnapshot(wc, f, s); err != nil {
		_ = wc.Close()
		return err
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func writeSnapshot(w io.Writer, f export.Format, s export.Snapshot) error {
	if err := export.Write(w, f, s); err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}
