package indent

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/itsatony/go-cuserr"
	"go.uber.org/zap"
)

// flusher is the optional flush capability of a delegate.
type flusher interface {
	Flush() error
}

// Writer is an io.Writer decorator that indents each new line with its
// current indentation.
//
// The writing itself is delegated to any other io.Writer. Flush and
// Close capabilities of the delegate are detected dynamically and used
// only when present.
//
// The writer provides no buffering. To buffer the output, make the
// delegate a bufio.Writer.
//
// Whole Write calls are serialized by an internal mutex; Indent and
// Unindent swap the current indentation atomically and may be called
// concurrently with writes.
type Writer struct {
	mu          sync.Mutex
	delegate    io.Writer
	indentation atomic.Pointer[Indentation]
	lastWritten byte
	hasWritten  bool
	logger      *zap.Logger
}

// NewWriter creates a Writer around the given delegate with the given
// initial indentation. Both are required; a nil delegate or indentation
// yields a precondition error.
func NewWriter(delegate io.Writer, indentation *Indentation, opts ...WriterOption) (*Writer, error) {
	if delegate == nil {
		return nil, NewNilDelegateError()
	}
	if indentation == nil {
		return nil, NewNilIndentationError()
	}

	config := defaultWriterConfig()
	for _, opt := range opts {
		opt(config)
	}
	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Writer{
		delegate: delegate,
		logger:   logger,
	}
	w.indentation.Store(indentation)
	logger.Debug("indenting writer created",
		zap.String("unit", indentation.Unit()),
		zap.Int("level", indentation.Level()))
	return w, nil
}

// MustNewWriter creates a Writer and panics if there's an error.
func MustNewWriter(delegate io.Writer, indentation *Indentation, opts ...WriterOption) *Writer {
	w, err := NewWriter(delegate, indentation, opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// isLineBoundary reports whether ch ends a line (carriage return or line feed).
func isLineBoundary(ch byte) bool {
	return ch == '\r' || ch == '\n'
}

// Write forwards p to the delegate, emitting the current indentation
// before the first non-boundary byte of every new line. Line state
// persists across calls, so boundaries split over multiple writes are
// still detected.
//
// The returned count covers bytes consumed from p; injected indentation
// bytes are not counted. Delegate failures propagate unchanged.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	written := 0
	start := 0
	last, has := w.lastWritten, w.hasWritten
	for idx := 0; idx < len(p); idx++ {
		ch := p[idx]
		if (!has || isLineBoundary(last)) && !isLineBoundary(ch) {
			// Flush the run up to the insertion point, then the indentation.
			n, err := w.forward(p[start:idx])
			written += n
			if err != nil {
				w.record(p, start+n)
				return written, err
			}
			start = idx
			if _, err := io.WriteString(w.delegate, w.indentation.Load().value); err != nil {
				w.record(p, idx)
				return written, err
			}
		}
		last, has = ch, true
	}
	n, err := w.forward(p[start:])
	written += n
	w.record(p, start+n)
	return written, err
}

// WriteString writes s through the same line-boundary rules as Write.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// WriteByte writes a single byte through the same line-boundary rules
// as Write.
func (w *Writer) WriteByte(b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

// forward writes the given run to the delegate.
func (w *Writer) forward(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return w.delegate.Write(p)
}

// record updates the last-written state after upto bytes of p were
// forwarded to the delegate.
func (w *Writer) record(p []byte, upto int) {
	if upto > 0 {
		w.lastWritten = p[upto-1]
		w.hasWritten = true
	}
}

// Indent increases the indentation level of this writer by one.
// Returns the writer itself, for chaining.
func (w *Writer) Indent() *Writer {
	for {
		current := w.indentation.Load()
		next := current.Indent()
		if w.indentation.CompareAndSwap(current, next) {
			w.logger.Debug("indentation increased", zap.Int("level", next.Level()))
			return w
		}
	}
}

// Unindent decreases the indentation level of this writer by one. The
// level never becomes negative.
// Returns the writer itself, for chaining.
func (w *Writer) Unindent() *Writer {
	for {
		current := w.indentation.Load()
		next := current.Unindent()
		if w.indentation.CompareAndSwap(current, next) {
			w.logger.Debug("indentation decreased", zap.Int("level", next.Level()))
			return w
		}
	}
}

// SetIndentation replaces the writer's current indentation. Already
// written lines are not modified. A nil indentation yields a
// precondition error.
func (w *Writer) SetIndentation(indentation *Indentation) error {
	if indentation == nil {
		return NewNilIndentationError()
	}
	w.indentation.Store(indentation)
	return nil
}

// Indentation returns the current indentation, never nil.
func (w *Writer) Indentation() *Indentation {
	return w.indentation.Load()
}

// LastWritten returns the last byte forwarded to the delegate. The
// second return value is false while nothing has been written yet.
//
// The last-written byte determines whether indentation must be inserted
// before the next character.
func (w *Writer) LastWritten() (byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastWritten, w.hasWritten
}

// Flush forwards to the delegate's Flush when it has one; otherwise it
// is a no-op.
func (w *Writer) Flush() error {
	if f, ok := w.delegate.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the delegate when it is an io.Closer; otherwise it is a
// no-op. A close failure that is already a *cuserr.CustomError
// propagates unchanged; any other failure is wrapped with the delegate
// identity, the original error attached as the cause.
func (w *Writer) Close() error {
	c, ok := w.delegate.(io.Closer)
	if !ok {
		return nil
	}
	w.logger.Debug("closing delegate", zap.String("delegate", fmt.Sprintf("%T", w.delegate)))
	err := c.Close()
	if err == nil {
		return nil
	}
	var custom *cuserr.CustomError
	if errors.As(err, &custom) {
		return err
	}
	return NewCloseError(fmt.Sprintf("%T", w.delegate), err)
}

// String returns the delegate's string form when the delegate is a
// fmt.Stringer (useful when it is an in-memory buffer), or a short
// description of the writer otherwise.
func (w *Writer) String() string {
	if s, ok := w.delegate.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("indent.Writer{delegate=%T}", w.delegate)
}
