// Package importer turns a fixed-format WBS CSV export into a domain.WBS.
package importer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/wbs/internal/domain"
)

// Load opens the CSV at path, parses it with f and closes it.
func Load(path string, f Format, title string) (*domain.WBS, error) {
	if errs := ValidateFormat(f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid csv format: %w", errors.Join(errs...))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening wbs file: %w", err)
	}
	defer file.Close()

	wbs, err := Parse(file, f, title)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return wbs, nil
}

// Parse reads a WBS from r. The format is assumed valid.
func Parse(r io.Reader, f Format, title string) (*domain.WBS, error) {
	rows, err := ReadRows(r, f)
	if err != nil {
		return nil, err
	}
	return Convert(rows, title)
}
