package upload

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// FromPath builds a candidate from a filesystem path. The MIME type is
// derived from the file extension, matching what a picker would report.
func FromPath(path string) (Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return Candidate{}, fmt.Errorf("%q is a directory", path)
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if i := strings.Index(mimeType, ";"); i != -1 {
		mimeType = mimeType[:i]
	}
	return Candidate{
		Name:      filepath.Base(path),
		MIMEType:  mimeType,
		SizeBytes: info.Size(),
		Path:      path,
	}, nil
}

// Accept filters candidates against the type and size constraints. Both
// predicates are independent; any violation excludes the candidate and
// increments the rejected count. Accepted files proceed regardless of how
// many others were rejected.
func Accept(candidates []Candidate) ([]Candidate, int) {
	accepted := make([]Candidate, 0, len(candidates))
	rejected := 0
	for _, candidate := range candidates {
		if candidate.MIMEType != AllowedMIMEType || candidate.SizeBytes > MaxSizeBytes {
			rejected++
			continue
		}
		accepted = append(accepted, candidate)
	}
	return accepted, rejected
}

// DropSupported reports whether the terminal delivers dropped files as
// pasted paths. Apple Terminal does not, so drops there must be skipped
// in favor of the picker.
func DropSupported(termProgram string) bool {
	return termProgram != "Apple_Terminal"
}
