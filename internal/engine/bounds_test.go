package engine

import "testing"

func TestDecidesThreshold(t *testing.T) {
	b := NewBounds(TrickYield{Points: 40, Tricks: 3}, TrickYield{Points: 60, Tricks: 6})
	if b.DecidesThreshold(TrickYield{Points: 50, Tricks: 0}) {
		t.Errorf("threshold inside the bounds should not be decided")
	}
	if !b.DecidesThreshold(TrickYield{Points: 40, Tricks: 0}) {
		t.Errorf("threshold at or below the lower bound should be decided")
	}
	if !b.DecidesThreshold(TrickYield{Points: 61, Tricks: 0}) {
		t.Errorf("threshold above the upper bound should be decided")
	}
}

func TestMinimizeAndMaximize(t *testing.T) {
	b := NewBounds(TrickYield{Points: 10}, TrickYield{Points: 90})
	b.MinimizeUpper(TrickYield{Points: 50})
	if b.Upper().Points != 50 {
		t.Errorf("MinimizeUpper should lower the upper bound to the min, got %d", b.Upper().Points)
	}
	b.MinimizeUpper(TrickYield{Points: 80})
	if b.Upper().Points != 50 {
		t.Errorf("MinimizeUpper should not raise the upper bound back up, got %d", b.Upper().Points)
	}

	b.MaximizeLower(TrickYield{Points: 20})
	if b.Lower().Points != 20 {
		t.Errorf("MaximizeLower should raise the lower bound to the max, got %d", b.Lower().Points)
	}
	b.MaximizeLower(TrickYield{Points: 5})
	if b.Lower().Points != 20 {
		t.Errorf("MaximizeLower should not lower the lower bound back down, got %d", b.Lower().Points)
	}
}

func TestDistanceToThreshold(t *testing.T) {
	b := NewBounds(TrickYield{Points: 40}, TrickYield{Points: 60})
	if d := b.DistanceToThreshold(TrickYield{Points: 70}); d != 9 {
		t.Errorf("DistanceToThreshold(70) = %d, want 9", d)
	}
	if d := b.DistanceToThreshold(TrickYield{Points: 30}); d != 10 {
		t.Errorf("DistanceToThreshold(30) = %d, want 10", d)
	}
}
