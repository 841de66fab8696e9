package window

import "testing"

func TestLayoutSize(t *testing.T) {
	tests := []struct {
		w, h, scale  int
		wantW, wantH int
	}{
		{800, 600, 1, 800, 600},
		{800, 600, 2, 400, 300},
		{801, 601, 2, 400, 300},
		{800, 600, 0, 800, 600},
	}

	for _, tt := range tests {
		w, h := layoutSize(tt.w, tt.h, tt.scale)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("layoutSize(%d, %d, %d) = %dx%d, want %dx%d",
				tt.w, tt.h, tt.scale, w, h, tt.wantW, tt.wantH)
		}
	}
}
