package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// captureStdout runs fn with os.Stdout redirected and returns what was
// written.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	_ = w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestRunGenerate_MissingCatalog(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	setDefaults()

	missing := filepath.Join(t.TempDir(), "Assets.xcassets")
	generateAssets = missing
	generatePalette = "gutcheck"
	generateCmd.SilenceErrors = false
	defer func() {
		generateAssets = ""
		generatePalette = ""
		generateCmd.SilenceErrors = false
	}()

	var runErr error
	out := captureStdout(t, func() {
		runErr = runGenerate(generateCmd, nil)
	})

	if runErr == nil {
		t.Fatal("runGenerate() should error on a missing catalog")
	}

	want := "Error: " + missing + " not found!"
	if !strings.Contains(out, want) {
		t.Errorf("output %q should contain %q", out, want)
	}
	if got := strings.Count(out, "not found"); got != 1 {
		t.Errorf("error message printed %d times, want 1", got)
	}
	// The message was already printed, so cobra must not repeat it.
	if !generateCmd.SilenceErrors {
		t.Error("generateCmd.SilenceErrors should be set after printing the error")
	}
}
