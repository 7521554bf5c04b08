// Package prompt asks the operator for values the environment did not supply.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a password prompt.
type InputConfig struct {
	Message   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the terminal so callers can be tested without one.
type Driver interface {
	Password(ctx context.Context, cfg InputConfig) (string, error)
}

// Option configures the survey driver.
type Option func(*surveyDriver)

// WithStdio overrides the terminal streams.
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) Option {
	return func(d *surveyDriver) {
		d.opts = append(d.opts, survey.WithStdio(in, out, errOut))
	}
}

type surveyDriver struct {
	opts []survey.AskOpt
}

// NewSurvey returns a Driver backed by survey.
func NewSurvey(options ...Option) Driver {
	d := &surveyDriver{}
	for _, opt := range options {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

func (d *surveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Password{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	opts := append([]survey.AskOpt{}, d.opts...)
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Token asks for the API token named by envName. An empty answer is allowed
// and means anonymous requests.
func Token(ctx context.Context, driver Driver, envName string) (string, error) {
	if driver == nil {
		return "", errors.New("prompt: driver is required")
	}
	token, err := driver.Password(ctx, InputConfig{
		Message: fmt.Sprintf("%s is not set. Token for the conversion API:", envName),
		Help:    "Leave empty to send anonymous requests with a lower rate limit.",
		Validator: func(value string) error {
			if strings.ContainsAny(value, " \t\r\n") && !hasScheme(value) {
				return errors.New("token must not contain whitespace")
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}

func hasScheme(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "bearer ") || strings.HasPrefix(lower, "token ")
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return fmt.Errorf("prompt: %w", err)
}
