package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/nue/pkg/errors"
)

type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

func (j *jsonRenderer) RenderReport(report *Report) error {
	return j.encoder.Encode(report)
}

func (j *jsonRenderer) RenderError(err error) error {
	return j.encoder.Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

func (j *jsonRenderer) RenderMessage(msg string) error {
	return j.encoder.Encode(map[string]string{"message": msg})
}
