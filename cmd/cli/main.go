package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finvault/balance-ledger/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledger-cli",
		Short: "Balance ledger CLI tool",
		Long:  `A command line interface for interacting with the balance ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(balanceCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(consistencyCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func balanceCmd() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "balance <accountID>",
		Short: "Show an account's balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON(balancePath(args[0], currency))
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "Show a single currency only")

	return cmd
}

func historyCmd() *cobra.Command {
	var (
		currency string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "history <accountID>",
		Short: "List an account's operations, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/balances/%s/history?limit=%d&offset=%d", args[0], limit, offset)
			if currency != "" {
				path += "&currency=" + currency
			}
			return getJSON(path)
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "Filter by currency")
	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	return cmd
}

func snapshotCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "snapshot <accountID>",
		Short: "Capture daily balance snapshots for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"account_id": args[0]}
			if date != "" {
				payload["date"] = date
			}
			return postJSON("/api/v1/snapshots", payload)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Snapshot date (YYYY-MM-DD), defaults to today")

	return cmd
}

func consistencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/ledger/consistency")
		},
	}
}

func migrateCmd() *cobra.Command {
	var (
		databaseURL    string
		migrationsPath string
		down           bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return fmt.Errorf("no database URL: set --database-url or DATABASE_URL")
			}

			if down {
				return postgres.RunMigrationsDown(databaseURL, migrationsPath)
			}
			return postgres.RunMigrations(databaseURL, migrationsPath)
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url", "", "Postgres connection URL (defaults to DATABASE_URL)")
	cmd.Flags().StringVar(&migrationsPath, "path", "migrations", "Path to migration files")
	cmd.Flags().BoolVar(&down, "down", false, "Roll back the last migration instead of applying")

	return cmd
}

func balancePath(accountID, currency string) string {
	if currency != "" {
		return "/api/v1/balances/" + accountID + "/" + currency
	}
	return "/api/v1/balances/" + accountID + "/"
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	client := &http.Client{Timeout: timeout}

	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
	} else {
		printJSON(decoded)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(out))
}
