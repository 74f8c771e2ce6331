package counter

import (
	"io"
	"sync"
)

// CountWriter counts the bytes that reach the wrapped writer.
type CountWriter struct {
	Writer  io.Writer
	mutex   sync.RWMutex
	counter int64
}

func NewCountWriter(w io.Writer) *CountWriter {
	return &CountWriter{Writer: w}
}

func (c *CountWriter) Write(b []byte) (int, error) {
	n, err := c.Writer.Write(b)
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.counter += int64(n)
	return n, err
}

func (c *CountWriter) Count() int64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.counter
}
