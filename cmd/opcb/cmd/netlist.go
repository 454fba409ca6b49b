package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/netlist"
)

var netlistApply bool

var netlistCmd = &cobra.Command{
	Use:   "netlist <board_file> <connections_file>",
	Short: "Extract nets from a connection list",
	Long: `Derive nets from a YAML connection list and optionally write them
back into the board's pads.

The connections file looks like:

  connections:
    - [R1:1, R2:1]
    - [R2:2, C1:1]
  labels:
    R1:1: GND

Connected pins merge into one net; a labelled pin names its whole net.
Unlabelled nets get generated Net-<k> names.`,
	Args: cobra.ExactArgs(2),
	RunE: runNetlist,
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.Flags().BoolVar(&netlistApply, "apply", false,
		"write the extracted nets back into the board file")
}

// connectionFile is the YAML shape of a connection list.
type connectionFile struct {
	Connections [][]string        `yaml:"connections"`
	Labels      map[string]string `yaml:"labels"`
}

func loadConnections(path string) ([]netlist.Connection, map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading connections: %w", err)
	}

	var file connectionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	conns := make([]netlist.Connection, 0, len(file.Connections))
	for i, pair := range file.Connections {
		if len(pair) != 2 {
			return nil, nil, fmt.Errorf("%s: connection %d has %d pins, want 2", path, i, len(pair))
		}
		conns = append(conns, netlist.Connection{A: pair[0], B: pair[1]})
	}
	return conns, file.Labels, nil
}

func runNetlist(cmd *cobra.Command, args []string) error {
	doc, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	conns, labels, err := loadConnections(args[1])
	if err != nil {
		return err
	}

	nl := netlist.Extract(conns, labels)

	color.New(color.FgCyan, color.Bold).Printf("Extracted %d nets\n", nl.NetCount())
	for _, net := range nl.Nets {
		fmt.Printf("  %-3d %-20s %s\n", net.ID, net.Name, strings.Join(net.Pins, " "))
	}

	if !netlistApply {
		return nil
	}

	doc.ApplyNetlist(nl)
	if err := saveBoard(args[0], doc); err != nil {
		return err
	}
	color.Green("applied %d nets to %s", nl.NetCount(), args[0])
	return nil
}
