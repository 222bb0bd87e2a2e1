package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/dialogo/internal/config"
	"github.com/zhubert/dialogo/internal/logger"
)

var (
	skipConfirm bool
	cleanConfig bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove log files and, optionally, saved preferences",
	Long: `Removes every dialogo log file from /tmp. With --config it also deletes the
preferences file, so the next start uses defaults and shows the welcome help.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanConfig, "config", false, "Also delete ~/.dialogo/config.json")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	var configPath string
	if cleanConfig {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("error locating config: %w", err)
		}
		configPath = path
	}
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), configPath)
}

// runCleanWithReader allows injecting a reader for testing. An empty
// configPath leaves the preferences alone.
func runCleanWithReader(input io.Reader, out io.Writer, configPath string) error {
	logs, err := logger.LogFiles()
	if err != nil {
		return fmt.Errorf("error listing logs: %w", err)
	}

	hasConfig := false
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			hasConfig = true
		}
	}

	if len(logs) == 0 && !hasConfig {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will clean:")
	if len(logs) > 0 {
		fmt.Fprintf(out, "  - %d log file(s) in /tmp\n", len(logs))
	}
	if hasConfig {
		fmt.Fprintf(out, "  - preferences at %s\n", configPath)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// The running process may hold the debug log open
	logger.Close()
	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	configCleared := false
	if hasConfig {
		if err := os.Remove(configPath); err != nil {
			return fmt.Errorf("error removing config: %w", err)
		}
		configCleared = true
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}
	if configCleared {
		fmt.Fprintln(out, "  - preferences removed")
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
