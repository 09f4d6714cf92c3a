package main

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestMainCmd_WritesFrames(t *testing.T) {
	dir := t.TempDir()

	cmd := mainCmd()
	cmd.SetArgs([]string{
		"--width=12", "--height=8",
		"--frames=3", "--delay=0",
		"--transitions=2",
		"--format=bmp",
		"--dir", dir,
	})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}

	want := []string{
		"frame-0000-01.bmp", "frame-0000-02.bmp", "frame-0000.bmp",
		"frame-0001-01.bmp", "frame-0001-02.bmp", "frame-0001.bmp",
		"frame-0002-01.bmp", "frame-0002-02.bmp", "frame-0002.bmp",
	}
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Errorf("wrote %v, want %v", got, want)
	}
}

func TestMainCmd_RejectsBadConfig(t *testing.T) {
	for _, args := range [][]string{
		{"--decay=1.5"},
		{"--iterations=0"},
		{"--format=gif"},
		{"--transitions=-1"},
	} {
		cmd := mainCmd()
		cmd.SetArgs(append(args, "--dir", filepath.Join(t.TempDir(), "out")))
		cmd.SetOut(new(nopWriter))
		cmd.SetErr(new(nopWriter))
		if err := cmd.ExecuteContext(context.Background()); err == nil {
			t.Errorf("Execute(%v) succeeded, want error", args)
		}
	}
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (int, error) { return len(p), nil }
