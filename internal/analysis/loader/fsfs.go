package loader

import (
	"context"
	"errors"
	"io/fs"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("analysis loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("analysis loader: fs is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return fs.ReadFile(files, name)
}
