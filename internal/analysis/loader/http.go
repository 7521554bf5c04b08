package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

func loadHTTP(ctx context.Context, client *resty.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("analysis loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("analysis loader: url is required")
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("analysis loader: fetch %q: %w", url, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, errors.New("analysis loader: unexpected status " + resp.Status())
	}
	return resp.Body(), nil
}
