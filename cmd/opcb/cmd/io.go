package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// loadBoard parses a board file into a document.
func loadBoard(path string) (*board.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board: %w", err)
	}
	defer f.Close()

	root, err := sexp.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if root.Tag() != "kicad_pcb" {
		return nil, fmt.Errorf("%s: not a board file (top-level %q)", path, root.Tag())
	}
	return board.New(root), nil
}

// saveBoard writes the document back to path.
func saveBoard(path string, doc *board.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing board: %w", err)
	}
	if err := sexp.Write(f, doc.Root); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
