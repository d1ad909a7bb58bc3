package pty

import "testing"

func TestShellArgsNoRC(t *testing.T) {
	cases := map[string][]string{
		"/bin/bash": {"--noprofile", "--norc", "-i"},
		"/bin/zsh":  {"--no-rcs", "-i"},
		"/usr/bin/fish": {"--no-config", "-i"},
		"/bin/dash": {"-i"},
	}
	for path, want := range cases {
		got := shellArgs(path, false)
		if len(got) != len(want) {
			t.Fatalf("shellArgs(%q): got %v want %v", path, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("shellArgs(%q): got %v want %v", path, got, want)
			}
		}
	}
}

func TestShellArgsSourceRC(t *testing.T) {
	got := shellArgs("/bin/bash", true)
	if len(got) != 1 || got[0] != "-i" {
		t.Fatalf("shellArgs with SourceRC: got %v", got)
	}
}

func TestPasswdShellUnknownUser(t *testing.T) {
	if got := passwdShell("no-such-user-xyz"); got != "" {
		t.Fatalf("expected empty shell for unknown user, got %q", got)
	}
}

func TestInputMessage(t *testing.T) {
	m := InputMessage([]byte("ls\n"))
	if string(m.Input) != "ls\n" || m.Resize != nil {
		t.Fatalf("unexpected message: %+v", m)
	}
}

func TestResizeMessage(t *testing.T) {
	m := ResizeMessage(100, 40)
	if m.Resize == nil || m.Resize.Cols != 100 || m.Resize.Rows != 40 {
		t.Fatalf("unexpected message: %+v", m)
	}
	if m.Input != nil {
		t.Fatalf("expected nil input, got %v", m.Input)
	}
}
