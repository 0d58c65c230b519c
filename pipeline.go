package rekson

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// terminatorCount is how many Close(File) lexemes the driver feeds the
// parser directly after the lexer is drained, so its one-token delay slot
// is guaranteed to flush.
const terminatorCount = 2

// ProcessStreams wires a chunk reader, the lexer, and the parser together,
// reading from r in chunkSize pieces and writing the repaired JSON to w.
func ProcessStreams(r io.Reader, w io.Writer, chunkSize int) error {
	chunks := NewChunkReader(r, chunkSize)
	lex := NewLexer()
	parser := NewParser()

	writer := bufio.NewWriter(w)

	emit := func(tokens []Token) error {
		for _, t := range tokens {
			if _, err := writer.Write(t.Bytes()); err != nil {
				return err
			}
		}

		return nil
	}

	for {
		chunk, ok := chunks.Next()
		if !ok {
			break
		}

		for _, b := range chunk {
			lexeme, ok := lex.Process(b)
			if !ok {
				continue
			}

			if err := emit(parser.Parse(lexeme)); err != nil {
				return errors.Wrap(err, "rekson: writing repaired output")
			}
		}
	}

	for i := 0; i < terminatorCount; i++ {
		if err := emit(parser.Parse(closeFile)); err != nil {
			return errors.Wrap(err, "rekson: writing repaired output")
		}
	}

	if err := emit(parser.Flush()); err != nil {
		return errors.Wrap(err, "rekson: writing repaired output")
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "rekson: flushing repaired output")
	}

	return nil
}

// ProcessBytes is an in-memory convenience wrapper: it runs the full
// pipeline over input with the default chunk size and returns the repaired
// JSON. Since it only ever writes to an in-memory buffer, the write/flush
// errors ProcessStreams can report are impossible here and are discarded.
func ProcessBytes(input []byte) []byte {
	var out bytes.Buffer

	_ = ProcessStreams(bytes.NewReader(input), &out, defaultChunkSize)

	return out.Bytes()
}
