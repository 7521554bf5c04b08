package main

import (
	"io"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/goliatone/go-partyreport/internal/prompt"
	"github.com/goliatone/go-partyreport/pkg/config"
)

// app carries the process dependencies so commands can run against an
// in-memory filesystem in tests.
type app struct {
	files      afero.Fs
	lookupEnv  config.LookupFunc
	stdout     io.Writer
	prompter   prompt.Driver
	httpClient *resty.Client
	logger     *zap.Logger

	flags flags
}

type flags struct {
	configPath       string
	input            string
	markdownTemplate string
	htmlTemplate     string
	output           string
	markdownOutput   string
	converter        string
	endpoint         string
	timeout          time.Duration
	sanitize         bool
	strict           bool
	interactive      bool
	verbose          bool
	force            bool
}

func newApp() *app {
	return &app{
		files:     afero.NewOsFs(),
		lookupEnv: os.LookupEnv,
		stdout:    os.Stdout,
		prompter:  prompt.NewSurvey(),
	}
}
