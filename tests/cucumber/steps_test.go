package cucumber

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"quizkit/internal/cli"
	"quizkit/internal/config"
)

// featureState holds scenario state for the CLI feature tests.
type featureState struct {
	projectDir string
	configPath string
	pdfPath    string

	server     *httptest.Server
	snapshots  []string
	abortAfter int
	quizStatus int
	title      string

	stdout   bytes.Buffer
	stderr   bytes.Buffer
	exitCode int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})
	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project configured against a generator that streams (\d+) valid questions$`, state.aGeneratorStreamingQuestions)
	ctx.Step(`^a project configured against a generator that drops after (\d+) snapshots$`, state.aGeneratorDroppingAfter)
	ctx.Step(`^a project configured against a generator that responds with status (\d+)$`, state.aGeneratorFailingWith)
	ctx.Step(`^the generator titles the quiz "([^"]*)"$`, state.theGeneratorTitles)
	ctx.Step(`^an empty project directory$`, state.anEmptyProjectDirectory)
	ctx.Step(`^a project with an invalid ui mode in its config$`, state.anInvalidUIModeConfig)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output shows the quiz titled "([^"]*)"$`, state.theOutputShowsQuizTitled)
	ctx.Step(`^the output contains (\d+) questions$`, state.theOutputContainsQuestions)
	ctx.Step(`^the output says the config is OK$`, state.theOutputSaysConfigOK)
	ctx.Step(`^the error says the generation failed$`, state.theErrorSaysGenerationFailed)
	ctx.Step(`^the error mentions "([^"]*)"$`, state.theErrorMentions)
}

func (s *featureState) reset() error {
	dir, err := os.MkdirTemp("", "quizkit-cucumber-*")
	if err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	*s = featureState{projectDir: dir}
	return nil
}

func (s *featureState) cleanup() {
	if s.server != nil {
		s.server.Close()
	}
	if s.projectDir != "" {
		_ = os.RemoveAll(s.projectDir)
	}
}

// startGenerator runs an in-process generator whose behavior the steps
// adjust through the feature state.
func (s *featureState) startGenerator() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/quiz", func(w http.ResponseWriter, r *http.Request) {
		if s.quizStatus != 0 {
			http.Error(w, "generation failed", s.quizStatus)
			return
		}
		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for i, snapshot := range s.snapshots {
			if s.abortAfter > 0 && i >= s.abortAfter {
				panic(http.ErrAbortHandler)
			}
			fmt.Fprintf(w, "data: %s\n\n", snapshot)
			flusher.Flush()
		}
		if s.abortAfter > 0 {
			panic(http.ErrAbortHandler)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	})
	mux.HandleFunc("/v1/title", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"title": s.title})
	})
	s.server = httptest.NewServer(mux)
	return s.writeProject(s.server.URL)
}

// writeProject lays down the config file and a sample PDF.
func (s *featureState) writeProject(baseURL string) error {
	s.configPath = filepath.Join(s.projectDir, config.ConfigFileName)
	contents := fmt.Sprintf("version: 1\ngenerator:\n  base_url: %q\n", baseURL)
	if err := os.WriteFile(s.configPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	s.pdfPath = filepath.Join(s.projectDir, "chapter.pdf")
	if err := os.WriteFile(s.pdfPath, []byte("%PDF-1.4 fixture"), 0o644); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// questionSnapshot builds a partial array of n valid questions.
func questionSnapshot(n int) string {
	answers := []string{"A", "B", "C", "D"}
	questions := make([]string, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, fmt.Sprintf(
			`{"question":"Question %d?","options":["one","two","three","four"],"answer":%q}`,
			i+1, answers[i%len(answers)]))
	}
	return "[" + strings.Join(questions, ",") + "]"
}

func (s *featureState) aGeneratorStreamingQuestions(count int) error {
	for i := 1; i <= count; i++ {
		s.snapshots = append(s.snapshots, questionSnapshot(i))
	}
	return s.startGenerator()
}

func (s *featureState) aGeneratorDroppingAfter(count int) error {
	for i := 1; i <= count+1; i++ {
		s.snapshots = append(s.snapshots, questionSnapshot(i))
	}
	s.abortAfter = count
	return s.startGenerator()
}

func (s *featureState) aGeneratorFailingWith(status int) error {
	s.quizStatus = status
	return s.startGenerator()
}

func (s *featureState) theGeneratorTitles(title string) error {
	s.title = title
	return nil
}

func (s *featureState) anEmptyProjectDirectory() error {
	s.configPath = filepath.Join(s.projectDir, config.ConfigFileName)
	return nil
}

func (s *featureState) anInvalidUIModeConfig() error {
	s.configPath = filepath.Join(s.projectDir, config.ConfigFileName)
	contents := "version: 1\ngenerator:\n  base_url: \"https://quiz.example.com\"\nui:\n  mode: fancy\n"
	return os.WriteFile(s.configPath, []byte(contents), 0o644)
}

// iRunCommand executes a quizkit CLI line against the scenario project.
// File arguments are resolved into the project directory and the config
// path is passed explicitly so scenarios do not depend on the CWD.
func (s *featureState) iRunCommand(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 || tokens[0] != "quizkit" {
		return fmt.Errorf("unsupported command line %q", line)
	}
	args := make([]string, 0, len(tokens)+2)
	for _, token := range tokens[1:] {
		if token == "chapter.pdf" {
			token = s.pdfPath
		}
		args = append(args, token)
	}
	if len(args) > 0 && s.configPath != "" {
		args = append(args[:1], append([]string{"--config", s.configPath}, args[1:]...)...)
	}

	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("exit code %d, stderr: %s", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected failure, stdout: %s", s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputShowsQuizTitled(title string) error {
	want := "Quiz: " + title
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("output missing %q:\n%s", want, s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputContainsQuestions(count int) error {
	want := fmt.Sprintf("Generated %d questions", count)
	if !strings.Contains(s.stdout.String(), want) {
		return fmt.Errorf("output missing %q:\n%s", want, s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputSaysConfigOK() error {
	if !strings.Contains(s.stdout.String(), "Config OK") {
		return fmt.Errorf("output missing config confirmation:\n%s", s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorSaysGenerationFailed() error {
	if !strings.Contains(s.stderr.String(), "Quiz generation failed") {
		return fmt.Errorf("stderr missing failure message:\n%s", s.stderr.String())
	}
	return nil
}

func (s *featureState) theErrorMentions(fragment string) error {
	if !strings.Contains(s.stderr.String(), fragment) {
		return fmt.Errorf("stderr missing %q:\n%s", fragment, s.stderr.String())
	}
	return nil
}
