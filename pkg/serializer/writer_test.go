package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type testRecord struct {
	Prn  string `json:"prn" yaml:"prn"`
	Name string `json:"name" yaml:"name"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testRecord{
		{Prn: "prn:1:a", Name: "one"},
		{Prn: "prn:1:b", Name: "two"},
	}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testRecord
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[0].Name != "one" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testRecord{Prn: "prn:1:a", Name: "one"}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result != data {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("table"), &buf)

	if err := writer.Serialize(testRecord{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{Format(""), true},
		{Format("xml"), true},
	}
	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("IsUnknown(%q) = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path uses stdout", func(t *testing.T) {
		writer, err := NewFileWriterOrStdout(FormatJSON, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if writer.out != os.Stdout {
			t.Error("expected stdout writer")
		}
	})

	t.Run("dash uses stdout", func(t *testing.T) {
		writer, err := NewFileWriterOrStdout(FormatJSON, "-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if writer.out != os.Stdout {
			t.Error("expected stdout writer")
		}
	})

	t.Run("file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		writer, err := NewFileWriterOrStdout(FormatJSON, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := writer.Serialize(testRecord{Prn: "prn:1:a"}); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file not created: %v", err)
		}
	})

	t.Run("invalid path", func(t *testing.T) {
		if _, err := NewFileWriterOrStdout(FormatJSON, "/nonexistent/dir/file.json"); err == nil {
			t.Error("expected error for invalid path")
		}
	})
}
