package vim

import "testing"

func TestCountAccumulate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		active bool
	}{
		{"single digit", "3", 3, true},
		{"multi digit", "12", 12, true},
		{"leading zero rejected", "0", 1, false},
		{"zero after digit kept", "10", 10, true},
		{"large prefix", "50", 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Count
			for _, r := range tt.input {
				c.Accumulate(r)
			}
			if c.Active() != tt.active {
				t.Errorf("Active() = %v, want %v", c.Active(), tt.active)
			}
			if got := c.Take(); got != tt.want {
				t.Errorf("Take() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCountTakeResets(t *testing.T) {
	var c Count
	c.Accumulate('4')
	if got := c.Take(); got != 4 {
		t.Fatalf("first Take() = %d, want 4", got)
	}
	if c.Active() {
		t.Error("count still active after Take")
	}
	if got := c.Take(); got != 1 {
		t.Errorf("second Take() = %d, want 1", got)
	}
}

func TestCountRejectsNonDigit(t *testing.T) {
	var c Count
	if c.Accumulate('j') {
		t.Error("Accumulate accepted a non-digit")
	}
	c.Accumulate('2')
	if c.Accumulate('x') {
		t.Error("Accumulate accepted a non-digit after a digit")
	}
	if got := c.Take(); got != 2 {
		t.Errorf("Take() = %d, want 2", got)
	}
}
