package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestSelectHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().Select(ctx, "pick", []string{"a"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if _, err := New().Confirm(ctx, "sure?", true); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSelectRejectsEmptyOptions(t *testing.T) {
	if _, err := New().Select(context.Background(), "pick", nil); err == nil {
		t.Fatal("expected error for empty options")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if got := translateSurveyErr(terminal.InterruptErr); !errors.Is(got, ErrAborted) {
		t.Fatalf("interrupt translated to %v", got)
	}
	passthrough := fmt.Errorf("boom")
	if got := translateSurveyErr(passthrough); got != passthrough {
		t.Fatalf("unrelated error translated to %v", got)
	}
}
