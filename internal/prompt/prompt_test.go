package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

type fakeDriver struct {
	answer string
	err    error
	asked  InputConfig
}

func (f *fakeDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	f.asked = cfg
	if f.err != nil {
		return "", f.err
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(f.answer); err != nil {
			return "", err
		}
	}
	return f.answer, nil
}

func TestToken(t *testing.T) {
	driver := &fakeDriver{answer: "ghp_secret"}

	token, err := Token(context.Background(), driver, "GITHUB_TOKEN")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "ghp_secret" {
		t.Fatalf("want ghp_secret, got %q", token)
	}
	if !strings.Contains(driver.asked.Message, "GITHUB_TOKEN") {
		t.Fatalf("expected env name in message, got %q", driver.asked.Message)
	}
}

func TestTokenAllowsEmptyAndSchemes(t *testing.T) {
	for _, answer := range []string{"", "Bearer abc", "token abc"} {
		token, err := Token(context.Background(), &fakeDriver{answer: answer}, "GITHUB_TOKEN")
		if err != nil {
			t.Fatalf("answer %q: %v", answer, err)
		}
		if token != answer {
			t.Fatalf("want %q, got %q", answer, token)
		}
	}
}

func TestTokenRejectsWhitespace(t *testing.T) {
	if _, err := Token(context.Background(), &fakeDriver{answer: "abc def"}, "GITHUB_TOKEN"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestTokenPropagatesAbort(t *testing.T) {
	_, err := Token(context.Background(), &fakeDriver{err: ErrAborted}, "GITHUB_TOKEN")
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestTokenRequiresDriver(t *testing.T) {
	if _, err := Token(context.Background(), nil, "GITHUB_TOKEN"); err == nil {
		t.Fatal("expected error without driver")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	wrapped := translateSurveyErr(fmt.Errorf("boom"))
	if errors.Is(wrapped, ErrAborted) || !strings.HasPrefix(wrapped.Error(), "prompt: ") {
		t.Fatalf("unexpected translation %v", wrapped)
	}
}

func TestSurveyDriverHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewSurvey()
	if _, err := driver.Password(ctx, InputConfig{Message: "token"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
