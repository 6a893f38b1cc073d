package cli

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleReporter_PlainWhenNotTerminal(t *testing.T) {
	buf := new(bytes.Buffer)
	r := newReporter(buf)

	r.Info("Indexed %s", "v1/page.md")
	r.Warn("Skipping %s (no content)", "v1/empty.md")

	assert.False(t, r.styled)
	assert.Equal(t, "Indexed v1/page.md\nSkipping v1/empty.md (no content)\n", buf.String())
}

func TestConsoleReporter_ConcurrentLines(t *testing.T) {
	buf := new(bytes.Buffer)
	r := newReporter(buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Info("line")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, bytes.Count(buf.Bytes(), []byte("line\n")))
}
