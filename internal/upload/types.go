package upload

// MaxSizeBytes is the largest file accepted into the pipeline.
const MaxSizeBytes = 5 * 1024 * 1024

// AllowedMIMEType is the only content type accepted into the pipeline.
const AllowedMIMEType = "application/pdf"

// Candidate is a user-selected file staged for submission. The raw bytes
// stay on disk until encoding; the candidate carries only metadata.
type Candidate struct {
	Name      string
	MIMEType  string
	SizeBytes int64
	Path      string
}

// EncodedFile is the transport-safe representation of an accepted file.
// Data holds a self-describing base64 data URI of the original bytes.
type EncodedFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}
