package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

func loadFile(ctx context.Context, files afero.Fs, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("analysis loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(files, path)
	if err != nil {
		return nil, fmt.Errorf("analysis loader: read %q: %w", path, err)
	}
	return data, nil
}
