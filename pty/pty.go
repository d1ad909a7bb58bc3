// Package pty opens a PTY pair, forks the configured shell onto the
// slave as its controlling terminal, and exposes Read/Write/Resize plus
// a SIGWINCH delivery path.
package pty

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

// Options configures the spawned shell. A zero value spawns the caller's
// login shell (from $SHELL, falling back to /etc/passwd and then a
// handful of common paths) as an interactive shell without sourcing RC
// files.
type Options struct {
	ShellPath string
	SourceRC  bool
	Env       map[string]string
	Cols      uint16
	Rows      uint16
}

// Session owns a PTY master file descriptor and the child shell process
// attached to its slave end.
type Session struct {
	cmd *exec.Cmd
	f   *os.File

	mu sync.Mutex

	exitedMu sync.Mutex
	exited   bool
}

// Start opens a PTY pair, spawns the shell described by opts with the
// slave end as its controlling TTY, and returns a Session wrapping the
// master. Fork/exec failure is surfaced to the caller as an error.
func Start(opts Options) (*Session, error) {
	shellPath := opts.ShellPath
	if shellPath == "" {
		shellPath = findShell()
	}

	u, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("pty: resolve current user: %w", err)
	}

	args := shellArgs(shellPath, opts.SourceRC)
	cmd := exec.Command(shellPath, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Dir = u.HomeDir
	cmd.Env = buildEnv(u, shellPath, opts.Env)

	cols, rows := opts.Cols, opts.Rows
	if cols == 0 {
		cols = 80
	}
	if rows == 0 {
		rows = 24
	}

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("pty: start shell: %w", err)
	}

	s := &Session{cmd: cmd, f: f}
	go func() {
		cmd.Wait()
		s.exitedMu.Lock()
		s.exited = true
		s.exitedMu.Unlock()
	}()
	return s, nil
}

func shellArgs(shellPath string, sourceRC bool) []string {
	base := shellPath
	if idx := strings.LastIndex(shellPath, "/"); idx >= 0 {
		base = shellPath[idx+1:]
	}
	if sourceRC {
		return []string{"-i"}
	}
	switch base {
	case "bash":
		return []string{"--noprofile", "--norc", "-i"}
	case "zsh":
		return []string{"--no-rcs", "-i"}
	case "fish":
		return []string{"--no-config", "-i"}
	default:
		return []string{"-i"}
	}
}

func buildEnv(u *user.User, shellPath string, extra map[string]string) []string {
	env := []string{
		"PATH=/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin:" + os.Getenv("PATH"),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		"HOME=" + u.HomeDir,
		"USER=" + u.Username,
		"SHELL=" + shellPath,
		"LANG=en_US.UTF-8",
		"LC_ALL=en_US.UTF-8",
	}
	if display := os.Getenv("DISPLAY"); display != "" {
		env = append(env, "DISPLAY="+display)
	}
	for k, v := range extra {
		env = append(env, k+"="+v)
	}
	return env
}

// findShell resolves the shell to spawn: $SHELL, then /etc/passwd, then a
// handful of common paths, finally /bin/sh.
func findShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		if _, err := os.Stat(sh); err == nil {
			return sh
		}
	}
	if u, err := user.Current(); err == nil {
		if sh := passwdShell(u.Username); sh != "" {
			if _, err := os.Stat(sh); err == nil {
				return sh
			}
		}
	}
	for _, sh := range []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/usr/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(sh); err == nil {
			return sh
		}
	}
	return "/bin/sh"
}

func passwdShell(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}

// Read reads raw bytes from the PTY master.
func (s *Session) Read(buf []byte) (int, error) { return s.f.Read(buf) }

// Write writes raw bytes to the PTY master.
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Write(data)
}

// HasExited reports whether the child shell process has exited.
func (s *Session) HasExited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close kills the child process (if still running) and closes the PTY
// master; the child receives SIGHUP from the kernel when the
// controlling TTY closes.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.f.Close()
}
