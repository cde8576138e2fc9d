package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const docxBody = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestTextDocx(t *testing.T) {
	data := buildDocx(t, docxBody)
	got, err := Text(context.Background(), data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(got, "John Doe") || !strings.Contains(got, "Software Engineer") {
		t.Fatalf("extracted text = %q", got)
	}
	// Paragraph boundaries become newlines.
	if !strings.Contains(got, "John Doe\n") {
		t.Fatalf("expected newline after first paragraph, got %q", got)
	}
}

func TestTextDocxFromZipMime(t *testing.T) {
	data := buildDocx(t, docxBody)
	if _, err := Text(context.Background(), data, "application/zip", "resume.docx"); err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
}

func TestTextPlainZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestTextCorruptPDF(t *testing.T) {
	_, err := Text(context.Background(), []byte("%PDF-1.4 not actually a pdf"), "application/pdf", "resume.pdf")
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
}

func TestTextUnsupportedMime(t *testing.T) {
	_, err := Text(context.Background(), []byte("plain"), "text/plain", "resume.txt")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestTextOctetStreamSniffsDocx(t *testing.T) {
	data := buildDocx(t, docxBody)
	if _, err := Text(context.Background(), data, "application/octet-stream", "upload.bin"); err != nil {
		t.Fatalf("expected zip sniffing to find docx, got %v", err)
	}
}
