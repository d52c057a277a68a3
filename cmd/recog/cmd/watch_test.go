// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer which may be written by the watch loop while a test reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func waitFor(t *testing.T, b *syncBuffer, want string) {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(b.String(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for %q in\n%s", want, b.String())
		}

		time.Sleep(10 * time.Millisecond)
	}
}

func TestWatch(t *testing.T) {
	fname := writeFile(t, "x:1;\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out, stderr syncBuffer

	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, &out, &stderr, plain(), fname)
	}()

	waitFor(t, &out, fname+": ok\n")

	if err := os.WriteFile(fname, []byte("x:1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	waitFor(t, &out, "(Line 1, Col 4) Error while parsing 'Statement': expected 'Semicolon'.\n")
	waitFor(t, &out, fname+": input rejected: 1 line(s)\n")

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a clean shutdown but got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchMissingFile(t *testing.T) {
	err := watch(context.Background(), &syncBuffer{}, &syncBuffer{}, plain(), writeFile(t, "")+".missing")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRenderRespectsColor(t *testing.T) {
	cfg := plain()
	if got := render(cfg, okStyle, "file: ok"); got != "file: ok" {
		t.Fatalf("expected unstyled text but got %q", got)
	}
}
