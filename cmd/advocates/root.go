package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advocates/internal/browse"
	"advocates/internal/client"
	"advocates/internal/config"
	"advocates/internal/logger"
)

type rootOptions struct {
	cfg     *config.ClientConfig
	logFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{cfg: config.LoadClient()}

	cmd := &cobra.Command{
		Use:          "advocates",
		Short:        "Browse the advocate directory from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.cfg.APIURL, "api-url", opts.cfg.APIURL, "base URL of the advocate API")
	pf.DurationVar(&opts.cfg.Timeout, "timeout", opts.cfg.Timeout, "request timeout")
	pf.IntVar(&opts.cfg.PageSize, "limit", opts.cfg.PageSize, "page size")
	pf.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	pf.DurationVar(&opts.cfg.Debounce, "debounce", opts.cfg.Debounce, "pause in typing before a search is sent")

	cmd.AddCommand(newBrowseCmd(opts), newListCmd(opts))
	return cmd
}

func newBrowseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactive search with paging (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		},
	}
}

func runBrowse(cmd *cobra.Command, opts *rootOptions) error {
	log, closeLog, err := browseLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	m := browse.New(client.New(opts.cfg.APIURL, opts.cfg.Timeout), browse.Options{
		Debounce: opts.cfg.Debounce,
		Limit:    opts.cfg.PageSize,
		Logger:   log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

// browseLogger writes to --log-file when given. The terminal belongs to the UI otherwise, so logs are dropped.
func browseLogger(opts *rootOptions) (*zap.Logger, func(), error) {
	if opts.logFile == "" {
		return zap.NewNop(), func() {}, nil
	}
	f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.NewWithWriter(f, opts.cfg.LogLevel, time.Local)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return log, func() {
		_ = log.Sync()
		_ = f.Close()
	}, nil
}
