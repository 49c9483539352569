package models

import "testing"

func TestRecordQuizScoreAlwaysMarksAttempt(t *testing.T) {
	record := NewProgressRecord()

	// A 0% first attempt still counts as attempted
	if crossed := record.RecordQuizScore("5.2A", 0); crossed {
		t.Error("a 0% score must not cross the mastery threshold")
	}
	score, attempted := record.QuizScores["5.2A"]
	if !attempted {
		t.Fatal("0% attempt left no entry in QuizScores")
	}
	if score != 0 {
		t.Errorf("stored score = %d, want 0", score)
	}
}

func TestRecordQuizScoreKeepsMaximum(t *testing.T) {
	record := NewProgressRecord()

	record.RecordQuizScore("5.2A", 70)
	record.RecordQuizScore("5.2A", 40)
	if record.QuizScores["5.2A"] != 70 {
		t.Errorf("lower retry overwrote the best score: got %d, want 70", record.QuizScores["5.2A"])
	}

	if crossed := record.RecordQuizScore("5.2A", 85); !crossed {
		t.Error("first score at the threshold must report the crossing")
	}
	if crossed := record.RecordQuizScore("5.2A", 95); crossed {
		t.Error("threshold crossing reported twice")
	}
	if record.QuizScores["5.2A"] != 95 {
		t.Errorf("best score = %d, want 95", record.QuizScores["5.2A"])
	}
}
