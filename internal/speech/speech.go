// Package speech turns a transcript stream into task titles.
package speech

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// Fragment is a piece of recognised text. Interim fragments may be replaced
// by later ones; a final fragment closes an utterance.
type Fragment struct {
	Text  string
	Final bool
}

// Recognizer produces transcript fragments between Start and Stop.
type Recognizer interface {
	Start(ctx context.Context) (<-chan Fragment, error)
	Stop()
}

// ErrNoTranscript is returned when capture ended without a final fragment.
var ErrNoTranscript = errors.New("no transcript captured")

// ErrAlreadyListening is returned by Start on a running recognizer.
var ErrAlreadyListening = errors.New("recognizer already listening")

// ErrClosed is returned by Start after Close.
var ErrClosed = errors.New("recognizer closed")

// InterimPrefix marks interim lines in a line-oriented transcript stream.
const InterimPrefix = "~"

// LineRecognizer reads one fragment per line from an external
// speech-to-text process. Lines starting with InterimPrefix are interim.
type LineRecognizer struct {
	scanner   *bufio.Scanner
	once      sync.Once
	lines     chan Fragment
	quit      chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	pending *Fragment
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{
		scanner: bufio.NewScanner(r),
		lines:   make(chan Fragment),
		quit:    make(chan struct{}),
	}
}

// Start begins a capture. The returned channel is closed on Stop, on context
// cancellation or at end of input. A stopped recognizer can be started again
// and continues with the next unread fragment.
func (l *LineRecognizer) Start(ctx context.Context) (<-chan Fragment, error) {
	select {
	case <-l.quit:
		return nil, ErrClosed
	default:
	}
	l.once.Do(func() { go l.pump() })

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return nil, ErrAlreadyListening
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Fragment)
	done := make(chan struct{})
	l.cancel, l.done = cancel, done

	go l.forward(ctx, out, done)
	return out, nil
}

// Stop ends the current capture and waits for it to wind down.
func (l *LineRecognizer) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Close stops the capture and lets the reader goroutine exit once its
// current read returns. A closed recognizer cannot be started again.
func (l *LineRecognizer) Close() error {
	l.Stop()
	l.closeOnce.Do(func() { close(l.quit) })
	return nil
}

func (l *LineRecognizer) pump() {
	defer close(l.lines)
	for l.scanner.Scan() {
		f, ok := parseLine(l.scanner.Text())
		if !ok {
			continue
		}
		select {
		case l.lines <- f:
		case <-l.quit:
			return
		}
	}
}

func (l *LineRecognizer) forward(ctx context.Context, out chan<- Fragment, done chan struct{}) {
	defer close(done)
	defer close(out)
	for {
		f, ok := l.takePending()
		if !ok {
			select {
			case f, ok = <-l.lines:
				if !ok {
					l.release(done)
					return
				}
			case <-ctx.Done():
				return
			}
		}
		select {
		case out <- f:
		case <-ctx.Done():
			l.setPending(f)
			return
		}
	}
}

// release frees the capture slot when input ends before Stop is called.
func (l *LineRecognizer) release(done chan struct{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.done != done {
		return
	}
	l.cancel()
	l.cancel, l.done = nil, nil
}

func (l *LineRecognizer) takePending() (Fragment, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pending == nil {
		return Fragment{}, false
	}
	f := *l.pending
	l.pending = nil
	return f, true
}

func (l *LineRecognizer) setPending(f Fragment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = &f
}

func parseLine(line string) (Fragment, bool) {
	text := strings.TrimSpace(line)
	if text == "" {
		return Fragment{}, false
	}
	if strings.HasPrefix(text, InterimPrefix) {
		text = strings.TrimSpace(strings.TrimPrefix(text, InterimPrefix))
		if text == "" {
			return Fragment{}, false
		}
		return Fragment{Text: text}, true
	}
	return Fragment{Text: text, Final: true}, true
}

// Dictate listens until the first final fragment and returns its text.
// onInterim, if set, receives interim text as it arrives.
func Dictate(ctx context.Context, rec Recognizer, onInterim func(string)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fragments, err := rec.Start(ctx)
	if err != nil {
		return "", err
	}
	defer rec.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case f, ok := <-fragments:
			if !ok {
				return "", ErrNoTranscript
			}
			if f.Final {
				return f.Text, nil
			}
			if onInterim != nil {
				onInterim(f.Text)
			}
		}
	}
}
