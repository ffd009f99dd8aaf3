package backtrack

import "testing"

func TestCapturesSetGet(t *testing.T) {
	c := NewCaptures(2)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	if _, _, ok := c.Get(1); ok {
		t.Error("Get(1) on fresh store should report unset")
	}
	c.Set(1, 2, 5)
	start, end, ok := c.Get(1)
	if !ok || start != 2 || end != 5 {
		t.Errorf("Get(1) = %d, %d, %v, want 2, 5, true", start, end, ok)
	}

	for _, n := range []int{0, -1, 3} {
		if _, _, ok := c.Get(n); ok {
			t.Errorf("Get(%d) should report unset for out of range group", n)
		}
	}
}

func TestCapturesRollback(t *testing.T) {
	c := NewCaptures(2)
	c.Set(1, 0, 1)

	mark := c.Mark()
	c.Set(2, 1, 3)
	c.Set(1, 4, 6)
	c.Rollback(mark)

	if start, end, ok := c.Get(1); !ok || start != 0 || end != 1 {
		t.Errorf("after rollback Get(1) = %d, %d, %v, want 0, 1, true", start, end, ok)
	}
	if _, _, ok := c.Get(2); ok {
		t.Error("after rollback group 2 should be unset")
	}
	if c.Mark() != mark {
		t.Errorf("Mark() = %d after rollback, want %d", c.Mark(), mark)
	}

	c.Rollback(0)
	if _, _, ok := c.Get(1); ok {
		t.Error("Rollback(0) should clear every capture")
	}
}

func TestCapturesResetReuses(t *testing.T) {
	c := NewCaptures(4)
	c.Set(3, 1, 2)
	c.Reset(2)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := c.Slots(nil); len(got) != 4 || got[0] != -1 || got[2] != -1 {
		t.Errorf("Slots() = %v, want all -1", got)
	}

	c.Reset(8)
	if c.Len() != 8 {
		t.Errorf("Len() = %d, want 8", c.Len())
	}
}
