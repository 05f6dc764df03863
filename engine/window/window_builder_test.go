package window

import "testing"

func TestBuilderOptionsKeepDefaultsForInvalidValues(t *testing.T) {
	w := &engineWindow{title: "default", width: 1280, height: 720}
	for _, opt := range []WindowBuilderOption{
		WithTitle(""),
		WithSize(0, 900),
		WithMinSize(320, 200),
		WithMaxSize(2000, 1000),
	} {
		opt(w)
	}
	if w.title != "default" {
		t.Fatalf("title got %q want default", w.title)
	}
	if w.width != 1280 || w.height != 900 {
		t.Fatalf("size got %dx%d want 1280x900", w.width, w.height)
	}
	if w.minWidth != 320 || w.minHeight != 200 || w.maxWidth != 2000 || w.maxHeight != 1000 {
		t.Fatalf("limits got %+v", w)
	}
}

func TestClosedWindowIsNotRunning(t *testing.T) {
	w := &engineWindow{}
	if w.IsRunning() {
		t.Fatal("a window without a platform handle must not report running")
	}
	if w.SurfaceDescriptor() != nil {
		t.Fatal("SurfaceDescriptor() should be nil without a platform handle")
	}
	if err := w.Close(); err != ErrNotOpen {
		t.Fatalf("Close() got %v want ErrNotOpen", err)
	}
	w.SetShouldClose()
	w.ProcessMessages()
}
