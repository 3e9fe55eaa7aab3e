package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendlens/statement-engine/internal/domain/statement/service"
	"github.com/spendlens/statement-engine/pkg/config"
	"github.com/spendlens/statement-engine/pkg/money"
)

func newParseCommand() *cobra.Command {
	var (
		format string
		asCSV  bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a statement file and print its withdrawals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := newLogger(cfg.Log.Level)
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var opts []service.Option
			if cfg.Engine.MonthFirstDates {
				opts = append(opts, service.WithMonthFirstDates())
			}
			engine := service.New(logger, opts...)

			result, err := parseByFormat(engine, data, resolveFormat(format, args[0]))
			if err != nil {
				return err
			}

			if asCSV {
				return writeCSV(cmd, result, cfg.Engine.Currency)
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "input format: xlsx, csv or pdf (default: by file extension)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "emit CSV instead of JSON")
	return cmd
}

func resolveFormat(flag, path string) string {
	if flag != "" {
		return flag
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return "xlsx"
	case ".pdf":
		return "pdf"
	default:
		return "csv"
	}
}

func parseByFormat(engine *service.Engine, data []byte, format string) (*service.Result, error) {
	switch format {
	case "xlsx":
		return engine.ParseWorkbook(data)
	case "csv":
		return engine.ParseCSV(data)
	case "pdf":
		return engine.ParsePDF(data)
	default:
		return nil, fmt.Errorf("unsupported format %q (want xlsx, csv or pdf)", format)
	}
}

func writeJSON(cmd *cobra.Command, result *service.Result) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeCSV(cmd *cobra.Command, result *service.Result, currency string) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"date", "description", "amount", "payment_method", "category"}); err != nil {
		return err
	}
	for _, tx := range result.Transactions {
		record := []string{
			tx.Date.Format("2006-01-02"),
			tx.Description,
			money.NewFromDecimal(tx.Amount, currency).Display(),
			string(tx.PaymentMethod),
			tx.SuggestedCategory,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
