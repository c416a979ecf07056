package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMissingTemplateURL is returned when a job descriptor has no template URL.
var ErrMissingTemplateURL = errors.New("Missing template_url in input data")

// Job describes a single compositing run: which template to fetch, which user
// image (if any) to paste on top of it, and an optional QR badge. A Job is
// parsed once from the input JSON and never modified afterwards.
type Job struct {
	TemplateURL   string `json:"template_url"`
	UserImagePath string `json:"user_image_path,omitempty"`
	QRText        string `json:"qr_text,omitempty"`
}

// Load reads a job descriptor from a UTF-8 JSON file and validates it.
func Load(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file %s: %w", path, err)
	}
	var j Job
	if err := json.Unmarshal(raw, &j); err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Validate checks the required fields. Unknown JSON fields are ignored.
func (j *Job) Validate() error {
	if j.TemplateURL == "" {
		return ErrMissingTemplateURL
	}
	return nil
}
