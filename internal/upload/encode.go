package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
)

// Encode reads a candidate's bytes and produces its transport encoding.
// A failed read yields no partial EncodedFile.
func Encode(ctx context.Context, candidate Candidate) (EncodedFile, error) {
	if err := ctx.Err(); err != nil {
		return EncodedFile{}, err
	}
	data, err := os.ReadFile(candidate.Path)
	if err != nil {
		return EncodedFile{}, fmt.Errorf("read %s: %w", candidate.Name, err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return EncodedFile{
		Name: candidate.Name,
		Type: candidate.MIMEType,
		Data: "data:" + candidate.MIMEType + ";base64," + encoded,
	}, nil
}

// EncodeAll encodes candidates in submission order. Encoding is awaited as
// a whole before submission proceeds; the first failure aborts the batch.
func EncodeAll(ctx context.Context, candidates []Candidate) ([]EncodedFile, error) {
	files := make([]EncodedFile, 0, len(candidates))
	for _, candidate := range candidates {
		file, err := Encode(ctx, candidate)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
