package driver

import (
	"errors"
	"io/fs"
	"os"

	"github.com/GriffinCanCode/minic/pkg/diag"
	"github.com/GriffinCanCode/minic/pkg/logger"
)

// LoadSource reads the whole input file.
func LoadSource(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, diag.Wrap(diag.FileNotFound, err, "opening %s", path)
		}
		return nil, diag.Wrap(diag.FailedToReadFile, err, "reading %s", path)
	}
	logger.LogFileProcessing(path, len(src))
	return src, nil
}
