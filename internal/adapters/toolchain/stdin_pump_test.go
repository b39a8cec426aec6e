package toolchain

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chunkWriter hands every write to the test goroutine
type chunkWriter chan string

func (w chunkWriter) Write(p []byte) (int, error) {
	w <- string(p)
	return len(p), nil
}

func TestStdinPump_StopsWhenChildExits(t *testing.T) {
	pr, pw := io.Pipe()
	pump := newStdinPump(pr)

	first := make(chunkWriter)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		pump.forward(first, done)
	}()

	go func() { _, _ = pw.Write([]byte("passphrase\n")) }()
	assert.Equal(t, "passphrase\n", <-first)

	close(done)
	<-finished

	// Typed after the first child is gone
	go func() { _, _ = pw.Write([]byte("later\n")) }()

	second := make(chunkWriter)
	done = make(chan struct{})
	finished = make(chan struct{})
	go func() {
		defer close(finished)
		pump.forward(second, done)
	}()

	assert.Equal(t, "later\n", <-second)
	close(done)
	<-finished
}

func TestStdinPump_SourceClosed(t *testing.T) {
	pr, pw := io.Pipe()
	pump := newStdinPump(pr)
	_ = pw.Close()

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		pump.forward(io.Discard, make(chan struct{}))
	}()
	<-finished
}
