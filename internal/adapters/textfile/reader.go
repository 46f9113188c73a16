// Package textfile implements ports.LineReader over the local filesystem.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corey/lenz/internal/ports"
)

// Reader streams files line by line. Lines have no length limit; "\n" and
// "\r\n" terminators are stripped and a final line without a terminator is
// still delivered. Bytes are passed through unchanged.
type Reader struct {
	// BufferSize is the read buffer size; zero means 64 KiB.
	BufferSize int
}

var _ ports.LineReader = Reader{}

// EachLine opens path and calls fn for every line. The file is closed
// before EachLine returns. An error from fn stops the iteration and is
// returned as is.
func (r Reader) EachLine(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	size := r.BufferSize
	if size <= 0 {
		size = 64 * 1024
	}
	br := bufio.NewReaderSize(f, size)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if cbErr := fn(trimEOL(line)); cbErr != nil {
				return cbErr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
