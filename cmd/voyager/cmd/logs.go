package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"
)

var logsPrune bool

// backupPattern matches rotated backups: <basename>.log.<n>.
var backupPattern = regexp.MustCompile(`\.log\.\d+$`)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Lists log files in the log directory",
	Long: `Lists the active log files and rotated backups in the log
directory. With --prune, rotated backups are deleted; active files are
never touched.`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVar(&logsPrune, "prune", false, "delete rotated backups")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(cfg.Log.Dir)
	if os.IsNotExist(err) {
		cmd.Printf("no log directory at %s\n", cfg.Log.Dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read log directory %q: %w", cfg.Log.Dir, err)
	}

	var pruned int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(cfg.Log.Dir, name)
		if logsPrune && backupPattern.MatchString(name) {
			if err := os.Remove(path); err != nil {
				fmt.Fprintf(os.Stderr, "voyager: prune %s: %v\n", name, err)
				continue
			}
			pruned++
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		kind := "active"
		if backupPattern.MatchString(name) {
			kind = "backup"
		}
		cmd.Printf("%-8s %-44s %10d bytes  %s\n",
			kind, name, info.Size(), info.ModTime().Format("2006-01-02 15:04:05"))
	}
	if logsPrune {
		cmd.Printf("pruned %d backup(s)\n", pruned)
	}
	return nil
}
