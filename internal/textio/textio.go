// Package textio reads and writes text files, detecting and preserving the
// byte order mark used by the file. Files without a mark that are not valid
// UTF-8 are read as GBK when they decode and re-encode to the same bytes.
package textio

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
	GBK
	// Unknown marks text decoded with replacement characters. It cannot be
	// written back.
	Unknown
)

// ErrUnknownEncoding is returned when encoding text whose source bytes
// could not be decoded without loss.
var ErrUnknownEncoding = errors.New("textio: source encoding unknown, refusing to write")

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF8BOM:
		return "utf-8-bom"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	case GBK:
		return "gbk"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect reports the encoding named by the byte order mark at the start of
// data. Data without a mark is UTF-8.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	default:
		return UTF8
	}
}

func codec(e Encoding) (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return unicode.UTF8, nil
	case UTF8BOM:
		return unicode.UTF8BOM, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), nil
	case GBK:
		return simplifiedchinese.GBK, nil
	case Unknown:
		return nil, ErrUnknownEncoding
	default:
		return nil, fmt.Errorf("textio: unknown encoding %d", int(e))
	}
}

// Decode converts data to a string, dropping any byte order mark. Unmarked
// data that is neither UTF-8 nor GBK comes back with U+FFFD in place of the
// invalid sequences and the Unknown encoding.
func Decode(data []byte) (string, Encoding, error) {
	enc := Detect(data)
	if enc == UTF8 && !utf8.Valid(data) {
		if text, ok := decodeGBK(data); ok {
			return text, GBK, nil
		}
		out, err := unicode.UTF8.NewDecoder().Bytes(data)
		if err != nil {
			return "", Unknown, fmt.Errorf("textio: decode %s: %w", enc, err)
		}
		return string(out), Unknown, nil
	}
	c, err := codec(enc)
	if err != nil {
		return "", enc, err
	}
	out, err := c.NewDecoder().Bytes(data)
	if err != nil {
		return "", enc, fmt.Errorf("textio: decode %s: %w", enc, err)
	}
	return string(out), enc, nil
}

// decodeGBK reports whether data is GBK by decoding it and checking that the
// text encodes back to the same bytes.
func decodeGBK(data []byte) (string, bool) {
	text, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	back, err := simplifiedchinese.GBK.NewEncoder().Bytes(text)
	if err != nil || !bytes.Equal(back, data) {
		return "", false
	}
	return string(text), true
}

// Encode converts s to bytes in enc, writing a byte order mark for every
// Unicode encoding except plain UTF-8. Text read as Unknown is refused with
// ErrUnknownEncoding.
func Encode(s string, enc Encoding) ([]byte, error) {
	if enc == UTF8 {
		return []byte(s), nil
	}
	c, err := codec(enc)
	if err != nil {
		return nil, err
	}
	out, err := c.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textio: encode %s: %w", enc, err)
	}
	return out, nil
}

func ReadFile(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", UTF8, err
	}
	return Decode(data)
}

// WriteFile replaces path with s encoded as enc, keeping the file mode of an
// existing file.
func WriteFile(path, s string, enc Encoding) error {
	data, err := Encode(s, enc)
	if err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}
