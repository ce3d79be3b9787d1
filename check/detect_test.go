package check

import (
	"archive/zip"
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"dynstyle/config"
)

var defaultCheckConfig = config.CheckConfig{Extensions: []string{".css"}, Format: config.DumpFormatTree}

// pngHeader is enough for filetype to recognize image
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func encodeWithTransformer(t *testing.T, data []byte, encoder transform.Transformer) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, encoder)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("finalize encoded sample: %v", err)
	}
	return buf.Bytes()
}

func encodeSample(t *testing.T, data []byte, enc srcEncoding) []byte {
	t.Helper()
	switch enc {
	case encUnknown:
		return data
	case encUTF8:
		return append([]byte{0xEF, 0xBB, 0xBF}, data...)
	case encUTF16BigEndian:
		return encodeWithTransformer(t, data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder())
	case encUTF16LittleEndian:
		return encodeWithTransformer(t, data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
	case encUTF32BigEndian:
		return encodeWithTransformer(t, data, utf32.UTF32(utf32.BigEndian, utf32.UseBOM).NewEncoder())
	case encUTF32LittleEndian:
		return encodeWithTransformer(t, data, utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder())
	}
	t.Fatalf("unsupported encoding: %v", enc)
	return nil
}

func TestIsArchiveFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("non-zip extension", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.css")
		if err := os.WriteFile(filePath, []byte("not a zip"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil || got {
			t.Errorf("isArchiveFile() = %v, %v, want false, nil", got, err)
		}
	})

	t.Run("zip extension but invalid content", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "test.zip")
		if err := os.WriteFile(filePath, []byte("not a real zip file"), 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
		got, err := isArchiveFile(filePath)
		if err != nil || got {
			t.Errorf("isArchiveFile() = %v, %v, want false, nil", got, err)
		}
	})

	t.Run("valid zip file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "real.ZIP")
		zipFile, err := os.Create(filePath)
		if err != nil {
			t.Fatalf("Failed to create zip file: %v", err)
		}
		w := zip.NewWriter(zipFile)
		f, err := w.Create("style.css")
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		f.Write([]byte("div { }"))
		w.Close()
		zipFile.Close()

		got, err := isArchiveFile(filePath)
		if err != nil || !got {
			t.Errorf("isArchiveFile() = %v, %v, want true, nil", got, err)
		}
	})

	t.Run("non-existent", func(t *testing.T) {
		if _, err := isArchiveFile("/nonexistent/file.zip"); err == nil {
			t.Error("Expected error for non-existent file, got nil")
		}
	})
}

func TestDetectUTF(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want srcEncoding
	}{
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, 0x00}, encUTF8},
		{"UTF-16 Big Endian BOM", []byte{0xFE, 0xFF, 0x00, 0x00}, encUTF16BigEndian},
		{"UTF-16 Little Endian BOM", []byte{0xFF, 0xFE, 0x01, 0x00}, encUTF16LittleEndian},
		{"UTF-32 Big Endian BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, encUTF32BigEndian},
		{"UTF-32 Little Endian BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, encUTF32LittleEndian},
		{"No BOM", []byte("div {"), encUnknown},
		{"Short", []byte{0xFF}, encUnknown},
		{"Empty", nil, encUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectUTF(tt.buf); got != tt.want {
				t.Errorf("detectUTF() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsStylesheetFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("div { color: red; }")

	tests := []struct {
		name      string
		filename  string
		content   []byte
		wantSheet bool
		wantEnc   srcEncoding
	}{
		{"plain", "plain.css", content, true, encUnknown},
		{"UTF-8 BOM", "bom8.css", encodeSample(t, content, encUTF8), true, encUTF8},
		{"UTF-16 LE", "bom16.css", encodeSample(t, content, encUTF16LittleEndian), true, encUTF16LittleEndian},
		{"uppercase extension", "upper.CSS", content, true, encUnknown},
		{"empty", "empty.css", nil, true, encUnknown},
		{"other extension", "notes.txt", content, false, encUnknown},
		{"image with css extension", "image.css", pngHeader, false, encUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(tmpDir, tt.filename)
			if err := os.WriteFile(filePath, tt.content, 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}
			gotSheet, gotEnc, err := isStylesheetFile(filePath, &defaultCheckConfig)
			if err != nil {
				t.Fatalf("isStylesheetFile() error = %v", err)
			}
			if gotSheet != tt.wantSheet || gotEnc != tt.wantEnc {
				t.Errorf("isStylesheetFile() = %v, %v, want %v, %v", gotSheet, gotEnc, tt.wantSheet, tt.wantEnc)
			}
		})
	}

	t.Run("non-existent", func(t *testing.T) {
		if _, _, err := isStylesheetFile("/nonexistent/file.css", &defaultCheckConfig); err == nil {
			t.Error("Expected error for non-existent file, got nil")
		}
	})
}

func TestIsStylesheetInArchive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(zipFile)
	for _, e := range []struct {
		name    string
		content []byte
	}{
		{"style.css", []byte("p { }")},
		{"bom.css", encodeSample(t, []byte("p { }"), encUTF32BigEndian)},
		{"image.css", pngHeader},
		{"readme.txt", []byte("text")},
	} {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file in zip: %v", err)
		}
		fw.Write(e.content)
	}
	w.Close()
	zipFile.Close()

	r, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("Failed to open zip: %v", err)
	}
	defer r.Close()

	want := []struct {
		sheet bool
		enc   srcEncoding
	}{
		{true, encUnknown},
		{true, encUTF32BigEndian},
		{false, encUnknown},
		{false, encUnknown},
	}
	for i, f := range r.File {
		gotSheet, gotEnc, err := isStylesheetInArchive(f, f.Name, &defaultCheckConfig)
		if err != nil {
			t.Errorf("isStylesheetInArchive(%s) error = %v", f.Name, err)
			continue
		}
		if gotSheet != want[i].sheet || gotEnc != want[i].enc {
			t.Errorf("isStylesheetInArchive(%s) = %v, %v, want %v, %v", f.Name, gotSheet, gotEnc, want[i].sheet, want[i].enc)
		}
	}
}

func TestSelectReader_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("selectReader() should panic on invalid encoding")
		}
	}()
	selectReader(strings.NewReader(""), srcEncoding(100))
}

func TestReadStylesheet(t *testing.T) {
	const text = `p.заголовок { color: red; }`
	cp1251 := encodeWithTransformer(t, []byte(text), charmap.Windows1251.NewEncoder())
	withCharset := encodeWithTransformer(t, []byte(`@charset "windows-1251";`+text), charmap.Windows1251.NewEncoder())

	tests := []struct {
		name     string
		data     []byte
		enc      srcEncoding
		fallback encoding.Encoding
		want     string
	}{
		{"UTF-8", []byte(text), encUnknown, nil, text},
		{"UTF-8 BOM", encodeSample(t, []byte(text), encUTF8), encUTF8, nil, text},
		{"UTF-16 BE", encodeSample(t, []byte(text), encUTF16BigEndian), encUTF16BigEndian, nil, text},
		{"UTF-16 LE", encodeSample(t, []byte(text), encUTF16LittleEndian), encUTF16LittleEndian, nil, text},
		{"UTF-32 BE", encodeSample(t, []byte(text), encUTF32BigEndian), encUTF32BigEndian, nil, text},
		{"UTF-32 LE", encodeSample(t, []byte(text), encUTF32LittleEndian), encUTF32LittleEndian, nil, text},
		{"charset rule", withCharset, encUnknown, nil, `@charset "windows-1251";` + text},
		{"charset rule wins over fallback", withCharset, encUnknown, charmap.KOI8R, `@charset "windows-1251";` + text},
		{"fallback", cp1251, encUnknown, charmap.Windows1251, text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readStylesheet(bytes.NewReader(tt.data), tt.enc, tt.fallback)
			if err != nil {
				t.Fatalf("readStylesheet() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("readStylesheet() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("unknown charset", func(t *testing.T) {
		_, err := readStylesheet(strings.NewReader(`@charset "no-such-charset"; p { }`), encUnknown, nil)
		if err == nil {
			t.Error("Expected error for unknown @charset, got nil")
		}
	})
}

func TestCharsetRule(t *testing.T) {
	tests := []struct {
		in    string
		label string
		ok    bool
	}{
		{`@charset "utf-8"; p {}`, "utf-8", true},
		{`@charset 'utf-8'; p {}`, "", false},
		{` @charset "utf-8";`, "", false},
		{`@charset "";`, "", false},
		{`@charset "utf-8"`, "", false},
		{`p { }`, "", false},
	}
	for _, tt := range tests {
		label, ok := charsetRule(bufio.NewReader(strings.NewReader(tt.in)))
		if label != tt.label || ok != tt.ok {
			t.Errorf("charsetRule(%q) = %q, %v, want %q, %v", tt.in, label, ok, tt.label, tt.ok)
		}
	}
}
