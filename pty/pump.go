package pty

import (
	"syscall"
	"unsafe"

	"github.com/creack/pty"
)

// Message is the write-pump's sum type: either raw bytes bound for the
// shell's stdin, or a resize request. Resize and input share one ordered
// channel so a resize can never be reordered relative to the input that
// preceded it in the caller's intent.
type Message struct {
	Input  []byte
	Resize *Size
}

// Size is a terminal dimension in character cells.
type Size struct {
	Cols uint16
	Rows uint16
}

// InputMessage wraps bytes to be written to the shell.
func InputMessage(b []byte) Message { return Message{Input: b} }

// ResizeMessage wraps a resize request.
func ResizeMessage(cols, rows uint16) Message {
	return Message{Resize: &Size{Cols: cols, Rows: rows}}
}

// ReadPump reads the PTY master in a loop, invoking onData with each
// chunk read (reusing a single internal buffer — onData must not retain
// the slice past its call), until the PTY closes or returns an error. It
// is meant to run on its own goroutine: raw bytes only flow from here
// into the engine via Feed.
func (s *Session) ReadPump(onData func([]byte), onClose func(error)) {
	buf := make([]byte, 8192)
	for {
		n, err := s.Read(buf)
		if n > 0 {
			onData(buf[:n])
		}
		if err != nil {
			onClose(err)
			return
		}
	}
}

// WritePump drains msgs onto the PTY master: Input bytes are written
// verbatim, Resize requests call Resize. It returns when msgs is closed.
// Meant to run on its own goroutine so writers never block the reader.
func (s *Session) WritePump(msgs <-chan Message) {
	for msg := range msgs {
		if msg.Resize != nil {
			s.Resize(msg.Resize.Cols, msg.Resize.Rows)
			continue
		}
		if len(msg.Input) > 0 {
			s.Write(msg.Input)
		}
	}
}

// Resize applies a new window size to the PTY via TIOCSWINSZ and
// forwards SIGWINCH to the foreground process group of the slave,
// falling back to the shell's own process group if tcgetpgrp fails (the
// session is a zombie or the slave was already closed).
func (s *Session) Resize(cols, rows uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := pty.Setsize(s.f, &pty.Winsize{Cols: cols, Rows: rows}); err != nil {
		return err
	}

	pgid, err := tcgetpgrp(s.f.Fd())
	if err != nil || pgid <= 0 {
		if s.cmd.Process != nil {
			pgid = s.cmd.Process.Pid
		}
	}
	if pgid > 0 {
		syscall.Kill(-pgid, syscall.SIGWINCH)
	}
	return nil
}

// tcgetpgrp returns the foreground process group ID of the terminal
// referenced by fd, via TIOCGPGRP.
func tcgetpgrp(fd uintptr) (int, error) {
	var pgid int32
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, syscall.TIOCGPGRP, uintptr(unsafe.Pointer(&pgid)))
	if errno != 0 {
		return 0, errno
	}
	return int(pgid), nil
}
