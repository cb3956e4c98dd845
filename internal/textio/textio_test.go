package textio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		data []byte
		want Encoding
	}{
		{nil, UTF8},
		{[]byte("plain"), UTF8},
		{[]byte{0xEF, 0xBB, 0xBF, 'a'}, UTF8BOM},
		{[]byte{0xFF, 0xFE, 'a', 0}, UTF16LE},
		{[]byte{0xFE, 0xFF, 0, 'a'}, UTF16BE},
	}
	for _, tt := range tests {
		if got := Detect(tt.data); got != tt.want {
			t.Fatalf("Detect(% x) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		data []byte
		text string
		enc  Encoding
	}{
		{[]byte("héllo"), "héllo", UTF8},
		{[]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "hi", UTF8BOM},
		{[]byte{0xFF, 0xFE, 'h', 0, 'i', 0}, "hi", UTF16LE},
		{[]byte{0xFE, 0xFF, 0, 'h', 0, 'i'}, "hi", UTF16BE},
		{[]byte{0xC4, 0xE3, 0xBA, 0xC3, ' ', 'c', 'a', 't'}, "你好 cat", GBK},
		{[]byte{'a', 0xFF, 'b'}, "a\uFFFDb", Unknown},
	}
	for _, tt := range tests {
		text, enc, err := Decode(tt.data)
		if err != nil {
			t.Fatalf("Decode(% x): %v", tt.data, err)
		}
		if text != tt.text || enc != tt.enc {
			t.Fatalf("Decode(% x) = %q, %v; want %q, %v", tt.data, text, enc, tt.text, tt.enc)
		}
	}
}

func TestEncodeRestoresMark(t *testing.T) {
	for _, enc := range []Encoding{UTF8, UTF8BOM, UTF16LE, UTF16BE} {
		data, err := Encode("a\nб", enc)
		if err != nil {
			t.Fatalf("Encode(%v): %v", enc, err)
		}
		if Detect(data) != enc {
			t.Fatalf("Encode(%v) produced % x", enc, data)
		}
		text, _, err := Decode(data)
		if err != nil || text != "a\nб" {
			t.Fatalf("Decode(Encode(%v)) = %q, %v", enc, text, err)
		}
	}
	if _, err := Encode("x", Encoding(42)); err == nil {
		t.Fatalf("expected error for unknown encoding")
	}
}

func TestGBKRoundTrip(t *testing.T) {
	data := []byte{0xC4, 0xE3, 0xBA, 0xC3, ' ', 'c', 'a', 't', '\n'}
	text, enc, err := Decode(data)
	if err != nil || enc != GBK {
		t.Fatalf("Decode = %q, %v, %v", text, enc, err)
	}
	out, err := Encode(text, enc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("Encode = % x, want % x", out, data)
	}
}

func TestWriteFileRefusesUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")
	orig := []byte{'a', 0xFF, 'b'}
	if err := os.WriteFile(path, orig, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, enc, err := ReadFile(path)
	if err != nil || enc != Unknown {
		t.Fatalf("ReadFile = %q, %v, %v", text, enc, err)
	}
	if err := WriteFile(path, text, enc); !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("WriteFile err = %v, want ErrUnknownEncoding", err)
	}
	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, orig) {
		t.Fatalf("file changed to % x", data)
	}
}

func TestWriteFileKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFile(path, "new", UTF8BOM); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, []byte{0xEF, 0xBB, 0xBF, 'n', 'e', 'w'}) {
		t.Fatalf("contents = % x", data)
	}

	text, enc, err := ReadFile(path)
	if err != nil || text != "new" || enc != UTF8BOM {
		t.Fatalf("ReadFile = %q, %v, %v", text, enc, err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "missing")); !os.IsNotExist(err) {
		t.Fatalf("ReadFile err = %v, want not-exist", err)
	}
}
