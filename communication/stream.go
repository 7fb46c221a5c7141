package communication

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

const maxLine = 4 << 20

// Stream exchanges line-delimited JSON messages over a reader and a writer.
// Move lines and debug lines share one lock so they never interleave.
type Stream struct {
	scanner *bufio.Scanner
	mu      sync.Mutex
	out     io.Writer
}

func NewStream(in io.Reader, out io.Writer) *Stream {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Stream{scanner: scanner, out: out}
}

// Receive skips blank lines.
func (s *Stream) Receive() (Message, error) {
	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var m Message
		if err := json.Unmarshal(line, &m); err != nil {
			return Message{}, fmt.Errorf("decode message: %w", err)
		}
		return m, nil
	}
	if err := s.scanner.Err(); err != nil {
		return Message{}, fmt.Errorf("read message: %w", err)
	}
	return Message{}, io.EOF
}

func (s *Stream) Send(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.out, line+"\n")
	return err
}

// Debug returns a writer that emits each line written to it as a
// "DEBUG "-prefixed output line.
func (s *Stream) Debug() io.Writer {
	return &debugWriter{stream: s}
}

type debugWriter struct {
	stream *Stream
}

func (w *debugWriter) Write(p []byte) (int, error) {
	text := bytes.TrimRight(p, "\n")
	var buf bytes.Buffer
	for _, line := range bytes.Split(text, []byte("\n")) {
		buf.WriteString("DEBUG ")
		buf.Write(line)
		buf.WriteByte('\n')
	}
	w.stream.mu.Lock()
	defer w.stream.mu.Unlock()
	if _, err := w.stream.out.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
