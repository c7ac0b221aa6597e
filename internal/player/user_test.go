package player

import "testing"

func TestUpdateHighscore(t *testing.T) {
	u := &User{Name: "Tim", Score: 5, Highscore: 7}

	if u.UpdateHighscore() {
		t.Error("UpdateHighscore() with lower score should report false")
	}
	if u.Highscore != 7 {
		t.Errorf("Highscore = %d, want 7", u.Highscore)
	}

	u.Score = 9
	if !u.UpdateHighscore() {
		t.Error("UpdateHighscore() with higher score should report true")
	}
	if u.Highscore != 9 {
		t.Errorf("Highscore = %d, want 9", u.Highscore)
	}
}

func TestScore(t *testing.T) {
	u := New("Tim")
	u.AddPoint()
	u.AddPoint()
	if u.Score != 2 {
		t.Errorf("Score = %d, want 2", u.Score)
	}
	u.ResetScore()
	if u.Score != 0 {
		t.Errorf("Score after reset = %d, want 0", u.Score)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"Tim", "Tim", true},
		{"Tim", "tim", false},
		{"Anna", "Tim", false},
	}

	for _, tt := range tests {
		if got := New(tt.a).Is(New(tt.b)); got != tt.expected {
			t.Errorf("New(%q).Is(New(%q)) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
	if New("Tim").Is(nil) {
		t.Error("Is(nil) should be false")
	}
}
