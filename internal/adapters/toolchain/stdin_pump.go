package toolchain

import (
	"io"
	"sync"
)

// stdinPump reads the terminal on one long-lived goroutine. Forwarding to a
// child stops as soon as the child exits, and input typed afterwards waits
// for the next interactive invocation instead of being written to a dead pty.
type stdinPump struct {
	once    sync.Once
	src     io.Reader
	chunks  chan []byte
	pending []byte
}

func newStdinPump(src io.Reader) *stdinPump {
	return &stdinPump{
		src:    src,
		chunks: make(chan []byte),
	}
}

func (p *stdinPump) start() {
	p.once.Do(func() {
		go func() {
			defer close(p.chunks)
			buf := make([]byte, 1024)
			for {
				n, err := p.src.Read(buf)
				if n > 0 {
					chunk := make([]byte, n)
					copy(chunk, buf[:n])
					p.chunks <- chunk
				}
				if err != nil {
					return
				}
			}
		}()
	})
}

// forward copies input to dst until done is closed or the source ends.
// Calls must not overlap.
func (p *stdinPump) forward(dst io.Writer, done <-chan struct{}) {
	p.start()

	if p.pending != nil {
		chunk := p.pending
		p.pending = nil
		if _, err := dst.Write(chunk); err != nil {
			return
		}
	}

	for {
		select {
		case <-done:
			return
		case chunk, ok := <-p.chunks:
			if !ok {
				return
			}
			select {
			case <-done:
				p.pending = chunk
				return
			default:
			}
			if _, err := dst.Write(chunk); err != nil {
				return
			}
		}
	}
}
