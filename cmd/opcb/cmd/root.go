package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/editor"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "opcb",
	Short: "OpenTracePCB - structural PCB editing tools",
	Long: `OpenTracePCB (opcb) edits KiCad PCB files structurally: footprints,
nets, traces, zones and the board outline, with courtyard collision
checks on placement.

Examples:
  opcb info board.kicad_pcb                  # Show board summary
  opcb nets board.kicad_pcb                  # List all nets
  opcb nets board.kicad_pcb GND              # Show net details
  opcb edit move board.kicad_pcb R1 30 10    # Move a footprint
  opcb netlist board.kicad_pcb conn.yaml     # Re-derive nets from connections`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "editor config file (YAML)")
}

// loadEditorConfig resolves the session config: the --config file if given,
// the stock defaults otherwise.
func loadEditorConfig() (editor.Config, error) {
	if configPath == "" {
		return editor.DefaultConfig(), nil
	}
	return editor.LoadConfig(configPath)
}
