package rekson

import (
	"bytes"
	"strings"
	"testing"
)

func TestProcessBytesMatchesProcessStreams(t *testing.T) {
	input := []byte(`{a:3,"b"= 4,}`)

	var buf bytes.Buffer
	if err := ProcessStreams(bytes.NewReader(input), &buf, 0); err != nil {
		t.Fatalf("ProcessStreams: %v", err)
	}

	if got, want := buf.String(), string(ProcessBytes(input)); got != want {
		t.Errorf("ProcessStreams wrote %q, ProcessBytes returned %q", got, want)
	}
}

// TestProcessStreamsIsChunkSizeAgnostic checks that splitting the same input
// across differently-sized chunk boundaries — including ones that fall in
// the middle of a quoted string or a bareword run — never changes the
// result. The chunk reader and lexer must agree on where a lexeme ends
// regardless of how the underlying reads are sliced.
func TestProcessStreamsIsChunkSizeAgnostic(t *testing.T) {
	input := `{"key": [1, 2, true, nil, "embedded \"quote\" and \nnewline"], x:y}`

	var want string
	for _, size := range []int{0, 1, 2, 3, 5, 8, 64, 4096} {
		var buf bytes.Buffer
		if err := ProcessStreams(strings.NewReader(input), &buf, size); err != nil {
			t.Fatalf("chunk size %d: ProcessStreams: %v", size, err)
		}

		got := buf.String()
		if size == 0 {
			want = got
			continue
		}

		if got != want {
			t.Errorf("chunk size %d produced %q, want %q (from default chunk size)", size, got, want)
		}
	}
}

func TestProcessStreamsEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	if err := ProcessStreams(strings.NewReader(""), &buf, 0); err != nil {
		t.Fatalf("ProcessStreams: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q, want empty", buf.String())
	}
}

type erroringReader struct{ err error }

func (r erroringReader) Read([]byte) (int, error) { return 0, r.err }

// TestProcessStreamsTreatsReadErrorAsEOF checks that a read error
// truncates the stream as if EOF had been reached, rather than aborting.
func TestProcessStreamsTreatsReadErrorAsEOF(t *testing.T) {
	var buf bytes.Buffer
	err := ProcessStreams(erroringReader{err: bytes.ErrTooLarge}, &buf, 16)
	if err != nil {
		t.Fatalf("ProcessStreams should absorb a source read error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q, want empty output for a source that never yields a byte", buf.String())
	}
}

type erroringWriter struct{}

func (erroringWriter) Write([]byte) (int, error) { return 0, bytes.ErrTooLarge }

// TestProcessStreamsReportsWriteError checks that a failing writer
// surfaces as a non-nil error so the CLI can exit non-zero.
func TestProcessStreamsReportsWriteError(t *testing.T) {
	err := ProcessStreams(strings.NewReader(`{"a":1}`), erroringWriter{}, 0)
	if err == nil {
		t.Fatal("expected a non-nil error from a failing writer")
	}
}
