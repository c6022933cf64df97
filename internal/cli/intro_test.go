package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/repocards/pkg/flagstore"
)

func TestPlayIntro(t *testing.T) {
	var buf bytes.Buffer
	if err := playIntro(context.Background(), &buf, 0); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, line := range introLines {
		if !strings.Contains(out, line) {
			t.Errorf("missing line %q", line)
		}
	}
}

func TestPlayIntroCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := playIntro(ctx, &bytes.Buffer{}, time.Second)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestMaybeIntroOnce(t *testing.T) {
	store, err := flagstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.SetOutput(&buf)

	ctx := context.Background()
	if err := c.maybeIntroWithDelay(ctx, store, 0); err != nil {
		t.Fatal(err)
	}
	first := buf.Len()
	if first == 0 {
		t.Fatal("intro not shown on first run")
	}
	if err := c.maybeIntroWithDelay(ctx, store, 0); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != first {
		t.Error("intro shown twice")
	}
}

func TestMaybeIntroNullStore(t *testing.T) {
	var buf bytes.Buffer
	c := New(&bytes.Buffer{}, LogInfo)
	c.SetOutput(&buf)

	for range 2 {
		if err := c.maybeIntroWithDelay(context.Background(), flagstore.Null{}, 0); err != nil {
			t.Fatal(err)
		}
	}
	if got := strings.Count(buf.String(), introLines[0]); got != 2 {
		t.Errorf("banner shown %d times with a forgetful store, want 2", got)
	}
}
