package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Structural footprint edits",
	Long:  `Move, rotate, flip or delete footprints, with courtyard collision checks on placement.`,
}

var editMoveCmd = &cobra.Command{
	Use:   "move <board_file> <reference> <x> <y>",
	Short: "Move a footprint to a grid-snapped position",
	Args:  cobra.ExactArgs(4),
	RunE:  runEditMove,
}

var editRotateCmd = &cobra.Command{
	Use:   "rotate <board_file> <reference> <degrees>",
	Short: "Rotate a footprint counter-clockwise",
	Args:  cobra.ExactArgs(3),
	RunE:  runEditRotate,
}

var editFlipCmd = &cobra.Command{
	Use:   "flip <board_file> <reference>",
	Short: "Flip a footprint to the opposite board side",
	Args:  cobra.ExactArgs(2),
	RunE:  runEditFlip,
}

var editDeleteCmd = &cobra.Command{
	Use:   "delete <board_file> <reference>",
	Short: "Delete a footprint",
	Args:  cobra.ExactArgs(2),
	RunE:  runEditDelete,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.AddCommand(editMoveCmd)
	editCmd.AddCommand(editRotateCmd)
	editCmd.AddCommand(editFlipCmd)
	editCmd.AddCommand(editDeleteCmd)
}

// withSession loads the board, runs op on a fresh session, and saves the
// board back if op succeeds.
func withSession(path string, op func(*editor.Session) error) error {
	doc, err := loadBoard(path)
	if err != nil {
		return err
	}
	cfg, err := loadEditorConfig()
	if err != nil {
		return err
	}

	s := editor.NewSession(doc, cfg)
	if err := op(s); err != nil {
		return err
	}
	return saveBoard(path, s.Doc)
}

func parseCoord(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q: %w", arg, err)
	}
	return v, nil
}

func runEditMove(cmd *cobra.Command, args []string) error {
	x, err := parseCoord(args[2])
	if err != nil {
		return err
	}
	y, err := parseCoord(args[3])
	if err != nil {
		return err
	}

	return withSession(args[0], func(s *editor.Session) error {
		if err := s.MoveFootprint(args[1], x, y); err != nil {
			return err
		}
		color.Green("moved %s", args[1])
		return nil
	})
}

func runEditRotate(cmd *cobra.Command, args []string) error {
	degrees, err := parseCoord(args[2])
	if err != nil {
		return err
	}

	return withSession(args[0], func(s *editor.Session) error {
		if err := s.RotateFootprint(args[1], degrees); err != nil {
			return err
		}
		color.Green("rotated %s by %g", args[1], degrees)
		return nil
	})
}

func runEditFlip(cmd *cobra.Command, args []string) error {
	return withSession(args[0], func(s *editor.Session) error {
		if err := s.FlipFootprint(args[1]); err != nil {
			return err
		}
		color.Green("flipped %s", args[1])
		return nil
	})
}

func runEditDelete(cmd *cobra.Command, args []string) error {
	return withSession(args[0], func(s *editor.Session) error {
		if err := s.DeleteFootprint(args[1]); err != nil {
			return err
		}
		color.Green("deleted %s", args[1])
		return nil
	})
}
