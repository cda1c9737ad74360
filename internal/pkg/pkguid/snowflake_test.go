package pkguid

import "testing"

func TestGenerateRandomNodeIDRange(t *testing.T) {
	id, err := generateRandomNodeID()
	if err != nil {
		t.Fatalf("generateRandomNodeID: %v", err)
	}
	if id < 0 || id > 1023 {
		t.Fatalf("expected id within 0..1023, got %d", id)
	}
}

func TestSnowflakeGenerateIncreasing(t *testing.T) {
	gen, err := NewSnowflake()
	if err != nil {
		t.Fatalf("NewSnowflake: %v", err)
	}
	prev := gen.Generate()
	for i := 0; i < 100; i++ {
		next := gen.Generate()
		if next <= prev {
			t.Fatalf("expected increasing ids, got %d after %d", next, prev)
		}
		prev = next
	}
}

func TestNewSnowflakeNodeRejectsOutOfRange(t *testing.T) {
	if _, err := NewSnowflakeNode(5000); err == nil {
		t.Fatalf("expected error for node id out of range")
	}
	if _, err := NewSnowflakeNode(7); err != nil {
		t.Fatalf("NewSnowflakeNode(7): %v", err)
	}
}
