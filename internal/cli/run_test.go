package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizkit/internal/config"
	"quizkit/internal/testutil"
)

const quizSnapshot = `[
  {"question":"What pigment drives photosynthesis?","options":["Chlorophyll","Keratin","Hemoglobin","Melanin"],"answer":"A"},
  {"question":"Where does the light reaction occur?","options":["Mitochondria","Thylakoid","Nucleus","Ribosome"],"answer":"B"},
  {"question":"What gas is consumed?","options":["Oxygen","Nitrogen","Carbon dioxide","Hydrogen"],"answer":"C"},
  {"question":"What sugar is produced?","options":["Sucrose","Lactose","Fructose","Glucose"],"answer":"D"}
]`

func writeRunFixture(t *testing.T, opts testutil.GeneratorOptions) (configPath, pdfPath string) {
	t.Helper()
	base := testutil.StartGenerator(t, opts)
	dir := t.TempDir()

	configPath = filepath.Join(dir, config.ConfigFileName)
	contents := fmt.Sprintf("version: 1\ngenerator:\n  base_url: %q\n", base)
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	pdfPath = filepath.Join(dir, "chapter.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4 fixture"), 0o644); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	return configPath, pdfPath
}

func TestInitThenValidate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, config.ConfigFileName)

	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--config", target}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("init exit = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), target) {
		t.Fatalf("init did not report the written path: %q", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = Run([]string{"validate", "--config", target}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("validate exit = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Config OK") {
		t.Fatalf("validate output: %q", stdout.String())
	}
}

func TestValidateReportsIssues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.ConfigFileName)
	if err := os.WriteFile(path, []byte("version: 1\nui:\n  mode: fancy\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "ui.mode") {
		t.Fatalf("validation error does not name the field: %q", stderr.String())
	}
}

func TestRunPlainPrintsQuiz(t *testing.T) {
	configPath, pdfPath := writeRunFixture(t, testutil.GeneratorOptions{
		Snapshots: []string{quizSnapshot},
		Title:     "Photosynthesis Basics",
	})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath, "--ui", "plain", pdfPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("run exit = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Uploading chapter.pdf",
		"Quiz: Photosynthesis Basics",
		"What pigment drives photosynthesis?",
		"* D) Glucose",
		"Generated 4 questions",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("plain output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPlainReportsStreamFailure(t *testing.T) {
	configPath, pdfPath := writeRunFixture(t, testutil.GeneratorOptions{QuizStatus: 500})

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath, "--ui", "plain", pdfPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Quiz generation failed") {
		t.Fatalf("failure not reported: %q", stderr.String())
	}
}

func TestRunPlainRejectsNonPDF(t *testing.T) {
	configPath, _ := writeRunFixture(t, testutil.GeneratorOptions{})
	notes := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(notes, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath, "--ui", "plain", notes}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "no acceptable PDF files") {
		t.Fatalf("rejection not reported: %q", stderr.String())
	}
}
