package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidByteCount is returned when input is not an unsigned 64-bit integer.
var ErrInvalidByteCount = errors.New("invalid byte count")

// ReadByteCount reads a single line from r and parses it as a byte count.
// ok is false when r reached end of input before any data was read.
func ReadByteCount(r io.Reader) (n uint64, ok bool, err error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, false, fmt.Errorf("read stdin: %w", err)
	}
	if line == "" {
		return 0, false, nil
	}
	n, err = ParseByteCount(line)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// ParseByteCount parses a decimal byte count, ignoring surrounding whitespace.
func ParseByteCount(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	digits := strings.TrimPrefix(trimmed, "+")
	if digits == "" || strings.HasPrefix(digits, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidByteCount, trimmed)
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q exceeds %d", ErrInvalidByteCount, trimmed, uint64(math.MaxUint64))
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidByteCount, trimmed)
	}
	return n, nil
}
