package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mandolyte/mdtopdf"
	"gopkg.in/yaml.v3"

	"github.com/bakingai/bakingai/internal/recipe"
)

// ErrNeedsFile is returned by Write for formats that can only go to a file.
var ErrNeedsFile = errors.New("format can only be written to a file")

type Exporter struct {
	cardTemplate string
}

// NewExporter creates an Exporter. cardTemplate may be empty to use the
// embedded markdown template.
func NewExporter(cardTemplate string) *Exporter {
	return &Exporter{cardTemplate: cardTemplate}
}

// Write writes records to w. FormatPDF is not supported here.
func (e *Exporter) Write(w io.Writer, format Format, records []recipe.Record) error {
	if records == nil {
		records = []recipe.Record{}
	}

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encoder.Close() > %w", err)
		}
	case FormatMarkdown:
		if err := WriteCards(w, e.cardTemplate, records, true); err != nil {
			return fmt.Errorf("WriteCards() > %w", err)
		}
	case FormatPDF:
		return fmt.Errorf("%s: %w", format, ErrNeedsFile)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

// WriteFile writes records to path, creating parent directories, and
// returns the absolute path written.
func (e *Exporter) WriteFile(path string, format Format, records []recipe.Record) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}

	if format == FormatPDF {
		if err := e.writePDF(path, records); err != nil {
			return "", err
		}
	} else {
		var buf bytes.Buffer
		if err := e.Write(&buf, format, records); err != nil {
			return "", err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return absPath, nil
}

// writePDF renders the markdown cards without images, since the renderer
// would otherwise fetch every image URL.
func (e *Exporter) writePDF(pdfPath string, records []recipe.Record) error {
	var content bytes.Buffer
	if err := WriteCards(&content, e.cardTemplate, records, false); err != nil {
		return fmt.Errorf("WriteCards() > %w", err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content.Bytes()); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
