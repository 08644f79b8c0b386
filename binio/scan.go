package binio

import (
	"fmt"
	"io"
	"strings"
)

// Scan reads one line from r, consuming nothing past the newline, and
// parses the surrounding-space-trimmed text into a T. A string takes
// the whole trimmed line; every other type goes through the fmt
// scanner and must consume the trimmed line completely, so trailing
// characters after the value are an error. A parse failure is reported
// with the offending text wrapped around the cause. End of input
// terminates the line like a missing final newline would.
func Scan[T any](r io.Reader) (T, error) {
	var v T
	line, err := readLine(r)
	if err != nil {
		return v, err
	}
	line = strings.TrimSpace(line)
	if s, ok := any(&v).(*string); ok {
		*s = line
		return v, nil
	}
	sr := strings.NewReader(line)
	if _, err := fmt.Fscan(sr, &v); err != nil {
		return v, fmt.Errorf("binio: parse %q: %w", line, err)
	}
	if sr.Len() > 0 {
		return v, fmt.Errorf("binio: parse %q: trailing characters", line)
	}
	return v, nil
}

// Prompt writes label to w, then scans a T from r as Scan does.
func Prompt[T any](w io.Writer, r io.Reader, label string) (T, error) {
	if _, err := io.WriteString(w, label); err != nil {
		var v T
		return v, err
	}
	return Scan[T](r)
}

// readLine consumes bytes through the first newline or to the end of
// input, one byte at a time, so nothing past the line is taken from r.
func readLine(r io.Reader) (string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &oneByte{r: r}
	}
	var b strings.Builder
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return b.String(), err
		}
		b.WriteByte(c)
		if c == '\n' {
			return b.String(), nil
		}
	}
}

type oneByte struct {
	r io.Reader
}

func (o *oneByte) ReadByte() (byte, error) {
	var b [1]byte
	for {
		n, err := o.r.Read(b[:])
		if n > 0 {
			return b[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
