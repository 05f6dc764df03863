package profiler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestTickReportsAfterInterval(t *testing.T) {
	now := time.Unix(0, 0)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewProfiler(WithLogger(logger), WithInterval(time.Second), withClock(func() time.Time { return now }))

	for i := 0; i < 24; i++ {
		now = now.Add(40 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("tick %d reported early", i)
		}
	}
	now = now.Add(40 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("expected a report once the interval elapsed")
	}
	if fps := p.Last().FPS; fps < 24.9 || fps > 25.1 {
		t.Fatalf("fps got %v want 25", fps)
	}
	if !strings.Contains(buf.String(), "frame stats") {
		t.Fatalf("log got %q", buf.String())
	}
}
