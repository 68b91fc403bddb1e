package domain

import "testing"

func TestModeFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Mode
	}{
		{"no args", nil, ModeNormal},
		{"dry-run", []string{"dry-run"}, ModeDryRun},
		{"upper case", []string{"DRY-RUN"}, ModeDryRun},
		{"mixed case among others", []string{"foo", "Dry-Run", "bar"}, ModeDryRun},
		{"unrelated args", []string{"foo", "bar"}, ModeNormal},
		{"prefix only", []string{"dry-running"}, ModeNormal},
		{"underscore", []string{"dry_run"}, ModeNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModeFromArgs(tt.args); got != tt.want {
				t.Errorf("ModeFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestNewInvocation_FlagForcesDryRun(t *testing.T) {
	inv := NewInvocation([]string{"foo"}, true)
	if inv.Mode != ModeDryRun {
		t.Errorf("mode = %q, want dry-run", inv.Mode)
	}
	if len(inv.Args) != 1 || inv.Args[0] != "foo" {
		t.Errorf("args = %v, want [foo]", inv.Args)
	}
}

func TestFormatArgs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "[]"},
		{[]string{"dry-run"}, "['dry-run']"},
		{[]string{"a", "b c"}, "['a', 'b c']"},
	}

	for _, tt := range tests {
		if got := FormatArgs(tt.args); got != tt.want {
			t.Errorf("FormatArgs(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("DRY-RUN"); err != nil || m != ModeDryRun {
		t.Errorf("ParseMode(DRY-RUN) = %q, %v", m, err)
	}
	if _, err := ParseMode("loud"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
