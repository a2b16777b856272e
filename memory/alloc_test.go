package memory

import "testing"

func TestAlloc(t *testing.T) {
	for _, n := range []int{1, 16, 1024} {
		b, free, err := alloc[byte](n)
		if err != nil {
			t.Fatal(err)
		}
		if len(b) != n {
			t.Errorf("alloc %d: got %d slots", n, len(b))
		}
		for i, v := range b {
			if v != 0 {
				t.Fatalf("alloc %d: slot %d not zeroed", n, i)
			}
		}
		if free != nil {
			free()
		}
	}
}
