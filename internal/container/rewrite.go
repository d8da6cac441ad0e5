package container

import (
	"bytes"
	"io"
)

// PathRewriter is an io.WriteCloser that replaces every occurrence of one
// path with another before passing bytes on. Matches split across Write
// calls are still rewritten; Close flushes anything held back.
type PathRewriter struct {
	w    io.Writer
	from []byte
	to   []byte
	buf  []byte
}

// NewPathRewriter returns a writer that rewrites from to to on its way to w.
func NewPathRewriter(w io.Writer, from, to string) *PathRewriter {
	return &PathRewriter{w: w, from: []byte(from), to: []byte(to)}
}

func (r *PathRewriter) Write(p []byte) (int, error) {
	if len(r.from) == 0 {
		return r.w.Write(p)
	}

	r.buf = append(r.buf, p...)

	var out []byte
	for {
		i := bytes.Index(r.buf, r.from)
		if i < 0 {
			break
		}
		out = append(out, r.buf[:i]...)
		out = append(out, r.to...)
		r.buf = r.buf[i+len(r.from):]
	}

	// Hold back a tail that could still become a match
	keep := partialMatch(r.buf, r.from)
	out = append(out, r.buf[:len(r.buf)-keep]...)
	r.buf = append(r.buf[:0:0], r.buf[len(r.buf)-keep:]...)

	if len(out) > 0 {
		if _, err := r.w.Write(out); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Close writes out any held-back bytes. It does not close the underlying writer.
func (r *PathRewriter) Close() error {
	if len(r.buf) == 0 {
		return nil
	}
	_, err := r.w.Write(r.buf)
	r.buf = nil
	return err
}

// partialMatch returns the length of the longest suffix of b that is a
// proper prefix of pattern.
func partialMatch(b, pattern []byte) int {
	n := len(pattern) - 1
	if n > len(b) {
		n = len(b)
	}
	for ; n > 0; n-- {
		if bytes.HasSuffix(b, pattern[:n]) {
			return n
		}
	}
	return 0
}

var _ io.WriteCloser = (*PathRewriter)(nil)
