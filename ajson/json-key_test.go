package ajson

import (
	"testing"
)

// TestTrimSpace checks if the TrimSpace method correctly trims whitespace from JsonKeys.
func TestTrimSpace(t *testing.T) {
	tests := []struct {
		key      JsonKey
		expected JsonKey
	}{
		{" key ", "key"},
		{"  key", "key"},
		{"key  ", "key"},
	}

	for _, test := range tests {
		if test.key.TrimSpace() != test.expected {
			t.Errorf("TrimSpace() for key '%s' - expected '%s', got '%s'", test.key, test.expected, test.key.TrimSpace())
		}
	}
}

// TestIsRoot checks if the IsRoot method correctly identifies root JsonKeys.
func TestIsRoot(t *testing.T) {
	tests := []struct {
		key      JsonKey
		expected bool
	}{
		{"key", true},
		{"key.subkey", false},
	}

	for _, test := range tests {
		if test.key.IsRoot() != test.expected {
			t.Errorf("IsRoot() for key '%s' - expected %v, got %v", test.key, test.expected, !test.expected)
		}
	}
}

// TestGetPathLeaf checks if the GetPathLeaf method correctly extracts the leaf from JsonKeys.
func TestGetPathLeaf(t *testing.T) {
	tests := []struct {
		key      JsonKey
		expected JsonKey
	}{
		{"key.subkey.leaf", "leaf"},
		{"key", "key"},
	}

	for _, test := range tests {
		if test.key.GetPathLeaf() != test.expected {
			t.Errorf("GetPathLeaf() for key '%s' - expected '%s', got '%s'", test.key, test.expected, test.key.GetPathLeaf())
		}
	}
}

// TestGetPathParts checks if the GetPathParts method correctly splits the JsonKeys into parts.
func TestGetPathParts(t *testing.T) {
	key := JsonKey("key.subkey.leaf")
	expected := []string{"key", "subkey", "leaf"}

	parts := key.GetPathParts()
	for i, part := range parts {
		if part != expected[i] {
			t.Errorf("GetPathParts() - expected '%s', got '%s'", expected[i], part)
		}
	}
}

func TestJsonKey(t *testing.T) {
	key := JsonKey("root")
	if key.IsRoot() != true {
		t.Errorf("Expected IsRoot to be true, got false")
	}
	if key.String() != "root" {
		t.Errorf("Expected String to be 'root', got '%s'", key.String())
	}
	if key.TrimSpace() != JsonKey("root") {
		t.Errorf("Expected TrimSpace to be 'root', got '%s'", key.TrimSpace())
	}
	if key.GetPathLeaf() != JsonKey("root") {
		t.Errorf("Expected GetPathLeaf to be 'root', got '%s'", key.GetPathLeaf())
	}
	if len(key.GetPathParts()) != 1 {
		t.Errorf("Expected GetPathParts length to be 1, got %d", len(key.GetPathParts()))
	}

	key = JsonKey("root.obj1")
	if key.IsRoot() != false {
		t.Errorf("Expected IsRoot to be false, got true")
	}
	if key.String() != "root.obj1" {
		t.Errorf("Expected String to be 'root.obj1', got '%s'", key.String())
	}
	if key.GetPathLeaf() != JsonKey("obj1") {
		t.Errorf("Expected GetPathLeaf to be 'obj1', got '%s'", key.GetPathLeaf())
	}
	if len(key.GetPathParts()) != 2 {
		t.Errorf("Expected GetPathParts length to be 2, got %d", len(key.GetPathParts()))
	}
}
