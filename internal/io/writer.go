package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/williampepple1/post-inspector/internal/config"
	"github.com/williampepple1/post-inspector/pkg/models"
)

// ResultWriter prints inspection envelopes
type ResultWriter struct {
	Config *config.OutputConfig
	Out    io.Writer
}

// NewResultWriter creates a new result writer
func NewResultWriter(config *config.OutputConfig, out io.Writer) *ResultWriter {
	return &ResultWriter{
		Config: config,
		Out:    out,
	}
}

// Encode renders env in the configured format
func (w *ResultWriter) Encode(env models.Envelope) ([]byte, error) {
	switch w.Config.Format {
	case "json":
		data, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil

	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(env); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case "table":
		summary, err := RenderSummary(env, w.Config.Lang)
		if err != nil {
			return nil, err
		}
		return []byte(summary + "\n"), nil

	default:
		return nil, fmt.Errorf("unsupported output format: %s", w.Config.Format)
	}
}

// Write renders env to the configured file, or to Out when no file is set
func (w *ResultWriter) Write(env models.Envelope) error {
	data, err := w.Encode(env)
	if err != nil {
		return err
	}

	if w.Config.File != "" {
		return os.WriteFile(w.Config.File, data, 0644)
	}
	_, err = w.Out.Write(data)
	return err
}
