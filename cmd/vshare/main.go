package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"vshare/internal/app"
	"vshare/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a ShareApp. The caller must defer
// app.Close(). operation identifies the CLI command being run.
func newApp(operation string) (*app.ShareApp, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config (run `vshare config init` first): %w", err)
	}

	a, err := app.NewShareApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "vshare",
	Short: "Share videos through a Git-hosted player page",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		// The current directory becomes the share repository root.
		repoDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		cfg := config.NewConfig(repoDir, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Repo Dir: %s\n", repoDir)
		fmt.Printf("Base URL: %s\n", cfg.BaseURL)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Repo Dir:   %s\n", cfg.RepoDir)
		fmt.Printf("Base URL:   %s\n", cfg.BaseURL)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Git Binary: %s\n", cfg.Git.Binary)
		fmt.Printf("Database:   %s\n", cfg.Database.Type)
		return nil
	},
}

// share command
var shareCmd = &cobra.Command{
	Use:   "share [VIDEO]",
	Short: "Copy a video into the repository and generate its player page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Share")
		if err != nil {
			return err
		}
		defer a.Close()

		var videoPath string
		if len(args) > 0 {
			videoPath = cleanInputPath(args[0])
		} else {
			videoPath, err = readVideoPath()
			if err != nil {
				return err
			}
		}

		res, err := a.Share(videoPath)
		if err != nil {
			// A failed share is reported but does not change the exit
			// status; only initialization failures do.
			fmt.Fprintf(os.Stderr, "Share failed: %v\n", err)
			return nil
		}

		for _, w := range res.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		fmt.Printf("Video:   %s\n", res.VideoPath)
		fmt.Printf("Page:    %s\n", res.PagePath)
		fmt.Printf("URL:     %s\n", res.PageURL)
		fmt.Printf("QR code: %s\n", res.QRPath)
		fmt.Println()
		fmt.Println("The page goes live after a manual push: git push origin main")
		return nil
	},
}

// readVideoPath reads the video path from stdin, printing a prompt only
// when stdin is a terminal.
func readVideoPath() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Print("Video file path: ")
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading video path: %w", err)
	}
	return cleanInputPath(line), nil
}

// cleanInputPath strips surrounding whitespace and quotes, which
// terminals add when a file is dragged into the prompt.
func cleanInputPath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return s
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View share history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("GetHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		recs, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(recs) == 0 {
			fmt.Println("No shares recorded.")
			return nil
		}

		for _, rec := range recs {
			status := "ok"
			if rec.Warnings != "" {
				status = "warn"
			}
			fmt.Printf("%s  %-4s  %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"), status, rec.PageURL)
			if rec.Warnings != "" {
				for _, w := range strings.Split(rec.Warnings, "\n") {
					fmt.Printf("    warning: %s\n", w)
				}
			}
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of shares to show")
}
