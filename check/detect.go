package check

import (
	"archive/zip"
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"dynstyle/config"
)

// filetype needs that much to recognize anything it knows about
const headerSize = 262

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

// detectUTF looks for byte order mark. UTF-32LE has to be checked before
// UTF-16LE as the latter is its prefix.
func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF8BOM3(buf):
		return encUTF8
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:n], nil
}

// isArchiveFile checks zip signature of files with proper extension.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header, err := readHeader(f)
	if err != nil {
		return false, err
	}
	return filetype.Is(header, "zip"), nil
}

// looksLikeText rejects content filetype recognizes as some binary format
// (images, fonts, archives) which sometimes end up with stylesheet extension.
func looksLikeText(header []byte) bool {
	if detectUTF(header) != encUnknown {
		return true
	}
	kind, err := filetype.Match(header)
	return err != nil || kind == filetype.Unknown
}

func isStylesheetFile(path string, conf *config.CheckConfig) (bool, srcEncoding, error) {
	if !conf.IsStylesheet(path) {
		return false, encUnknown, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	header, err := readHeader(f)
	if err != nil {
		return false, encUnknown, err
	}
	if !looksLikeText(header) {
		return false, encUnknown, nil
	}
	return true, detectUTF(header), nil
}

// isStylesheetInArchive is isStylesheetFile for archive entries, name is
// entry name already decoded.
func isStylesheetInArchive(f *zip.File, name string, conf *config.CheckConfig) (bool, srcEncoding, error) {
	if !conf.IsStylesheet(name) {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	header, err := readHeader(r)
	if err != nil {
		return false, encUnknown, err
	}
	if !looksLikeText(header) {
		return false, encUnknown, nil
	}
	return true, detectUTF(header), nil
}

// selectReader strips BOM and converts content to UTF-8.
func selectReader(r io.Reader, enc srcEncoding) io.Reader {
	switch enc {
	case encUnknown:
		return r
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder())
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder())
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder())
	}
	panic(fmt.Sprintf("unexpected source encoding %d", enc))
}

var charsetPrefix = []byte(`@charset "`)

// charsetRule returns label from @charset rule which must be the very first
// thing in stylesheet and use exactly this form.
func charsetRule(br *bufio.Reader) (string, bool) {
	head, _ := br.Peek(1024)
	if !bytes.HasPrefix(head, charsetPrefix) {
		return "", false
	}
	head = head[len(charsetPrefix):]
	end := bytes.Index(head, []byte(`";`))
	if end <= 0 {
		return "", false
	}
	return string(head[:end]), true
}

// readStylesheet returns stylesheet content in UTF-8. BOM has priority over
// @charset rule which has priority over fallback encoding. Nil fallback means
// content is expected to be UTF-8 already.
func readStylesheet(r io.Reader, enc srcEncoding, fallback encoding.Encoding) ([]byte, error) {
	if enc != encUnknown {
		return io.ReadAll(selectReader(r, enc))
	}

	br := bufio.NewReader(r)
	if label, ok := charsetRule(br); ok {
		cr, err := charset.NewReaderLabel(label, br)
		if err != nil {
			return nil, fmt.Errorf("unable to decode stylesheet with @charset %q: %w", label, err)
		}
		return io.ReadAll(cr)
	}
	if fallback != nil {
		return io.ReadAll(transform.NewReader(br, fallback.NewDecoder()))
	}
	return io.ReadAll(br)
}
