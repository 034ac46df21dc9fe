package billing

import (
	"encoding/base64"
	"fmt"
	"os"
)

// Document es el PDF ya generado de una factura.
type Document struct {
	Filename string
	content  []byte
}

// NewDocument envuelve los bytes de un PDF.
func NewDocument(filename string, content []byte) *Document {
	return &Document{Filename: filename, content: content}
}

// Bytes devuelve el contenido binario del PDF.
func (d *Document) Bytes() []byte { return d.content }

// DataURL devuelve el PDF como data URL (data:application/pdf;base64,...).
func (d *Document) DataURL() string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(d.content)
}

// Save escribe el PDF en path.
func (d *Document) Save(path string) error {
	if err := os.WriteFile(path, d.content, 0o644); err != nil {
		return fmt.Errorf("guardar %s: %w", d.Filename, err)
	}
	return nil
}

func invoiceFilename(invoiceNumber string) string {
	return "factura_" + invoiceNumber + ".pdf"
}
