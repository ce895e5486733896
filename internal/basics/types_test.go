package basics

import (
	"testing"
)

func TestTypeAliases(t *testing.T) {
	t.Run("Point aliases", func(t *testing.T) {
		// Test PointI
		pi := PointI{X: 10, Y: 20}
		if pi.X != 10 || pi.Y != 20 {
			t.Errorf("PointI failed: expected (10,20), got (%d,%d)", pi.X, pi.Y)
		}

		// Test PointF
		pf := PointF{X: 1.5, Y: 2.5}
		if pf.X != 1.5 || pf.Y != 2.5 {
			t.Errorf("PointF failed: expected (1.5,2.5), got (%f,%f)", pf.X, pf.Y)
		}

		// Test PointD
		pd := PointD{X: 3.14, Y: 2.71}
		if pd.X != 3.14 || pd.Y != 2.71 {
			t.Errorf("PointD failed: expected (3.14,2.71), got (%f,%f)", pd.X, pd.Y)
		}
	})

	t.Run("Rect aliases", func(t *testing.T) {
		// Test RectI
		ri := RectI{X1: 0, Y1: 0, X2: 100, Y2: 200}
		if ri.X1 != 0 || ri.Y1 != 0 || ri.X2 != 100 || ri.Y2 != 200 {
			t.Errorf("RectI failed: expected (0,0,100,200), got (%d,%d,%d,%d)", ri.X1, ri.Y1, ri.X2, ri.Y2)
		}

		// Test RectF
		rf := RectF{X1: 0.1, Y1: 0.2, X2: 10.5, Y2: 20.7}
		if rf.X1 != 0.1 || rf.Y1 != 0.2 || rf.X2 != 10.5 || rf.Y2 != 20.7 {
			t.Errorf("RectF failed: expected (0.1,0.2,10.5,20.7), got (%f,%f,%f,%f)", rf.X1, rf.Y1, rf.X2, rf.Y2)
		}

		// Test RectD
		rd := RectD{X1: 1.1, Y1: 2.2, X2: 3.3, Y2: 4.4}
		if rd.X1 != 1.1 || rd.Y1 != 2.2 || rd.X2 != 3.3 || rd.Y2 != 4.4 {
			t.Errorf("RectD failed: expected (1.1,2.2,3.3,4.4), got (%f,%f,%f,%f)", rd.X1, rd.Y1, rd.X2, rd.Y2)
		}
	})
}

