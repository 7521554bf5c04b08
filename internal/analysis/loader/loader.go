package loader

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"

	"github.com/goliatone/go-partyreport/pkg/analysis"
)

// Loader implements analysis.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level partyreport package.
type Loader struct {
	files     afero.Fs
	fs        fs.FS
	http      *resty.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ analysis.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options analysis.LoaderOptions) analysis.Loader {
	timeout := options.RequestTimeout

	// injected clients are used as configured; timeout is applied per request
	var httpClient *resty.Client
	switch {
	case options.HTTPClient != nil:
		httpClient = options.HTTPClient
	case options.AllowHTTPFallback:
		httpClient = resty.New().SetRetryCount(0)
	}

	files := options.Files
	if files == nil {
		files = afero.NewOsFs()
	}

	return &Loader{
		files:     files,
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src analysis.Source) (analysis.Document, error) {
	if src == nil {
		return analysis.Document{}, errors.New("analysis loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case analysis.SourceKindFile:
		data, err = loadFile(ctx, l.files, src.Location())
	case analysis.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case analysis.SourceKindURL:
		if !l.allowHTTP {
			return analysis.Document{}, errors.New("analysis loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("analysis loader: unsupported source kind")
	}
	if err != nil {
		return analysis.Document{}, err
	}

	return analysis.NewDocument(src, data)
}
