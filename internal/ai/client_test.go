package ai

import (
	"context"
	"errors"
	"testing"
)

func TestDecodePlan_FullResponse(t *testing.T) {
	content := `{
		"schedule": [
			{"task": "Math revision", "type": "task", "start": "09:00", "end": "10:30", "importance": 3, "note": "peak focus"},
			{"task": "Break", "type": "break", "start": "10:30", "end": "11:00", "importance": 0, "note": "rest"}
		],
		"mood": {"label": "focused but tense", "intensity": 6, "reasoning": "deadline pressure"},
		"coach_note": "Front-load the hard work."
	}`

	plan, err := decodePlan(content)
	if err != nil {
		t.Fatalf("decodePlan: %v", err)
	}

	if len(plan.Schedule) != 2 {
		t.Fatalf("got %d blocks, want 2", len(plan.Schedule))
	}
	if plan.Schedule[0].Task != "Math revision" || plan.Schedule[0].Importance != 3 {
		t.Errorf("unexpected first block: %+v", plan.Schedule[0])
	}
	if plan.CoachNote != "Front-load the hard work." {
		t.Errorf("coach note = %q", plan.CoachNote)
	}
	if plan.Mood == nil || plan.Mood.Label != "focused but tense" || plan.Mood.Intensity != 6 {
		t.Errorf("unexpected mood: %+v", plan.Mood)
	}
}

func TestDecodePlan_ToleratesSloppyNumbers(t *testing.T) {
	// The prompt demands integers but the model sometimes sends "7" or 2.0.
	content := `{
		"schedule": [
			{"task": "Essay", "start": "13:00", "end": "14:00", "importance": 2.0, "note": "n"}
		],
		"mood": {"label": "ok", "intensity": "7", "reasoning": "r"},
		"coach_note": ""
	}`

	plan, err := decodePlan(content)
	if err != nil {
		t.Fatalf("decodePlan: %v", err)
	}
	if plan.Schedule[0].Importance != 2 {
		t.Errorf("importance = %d, want 2", plan.Schedule[0].Importance)
	}
	if plan.Mood.Intensity != 7 {
		t.Errorf("intensity = %d, want 7", plan.Mood.Intensity)
	}
}

func TestDecodePlan_ValidatesSchedule(t *testing.T) {
	content := `{
		"schedule": [
			{"task": "A", "start": "09:00", "end": "10:00", "importance": 2, "note": "n"},
			{"task": "dropped", "start": "", "end": "11:00", "importance": 2, "note": "n"},
			{"task": "B", "start": "09:30", "end": "11:00", "importance": 2, "note": "n"}
		],
		"coach_note": ""
	}`

	plan, err := decodePlan(content)
	if err != nil {
		t.Fatalf("decodePlan: %v", err)
	}
	if len(plan.Schedule) != 2 {
		t.Fatalf("got %d blocks, want 2 after validation", len(plan.Schedule))
	}
	if plan.Schedule[1].Start != "10:00" {
		t.Errorf("overlap not clamped: %+v", plan.Schedule[1])
	}
}

func TestDecodePlan_BadJSON(t *testing.T) {
	_, err := decodePlan("Sure! Here is your schedule: ...")
	if !errors.Is(err, ErrBadResponse) {
		t.Errorf("decodePlan on prose = %v, want ErrBadResponse", err)
	}
}

func TestDecodePlan_EmptySchedule(t *testing.T) {
	for _, content := range []string{
		`{"schedule": [], "coach_note": "nothing to do"}`,
		`{"coach_note": "no schedule key"}`,
		`{"schedule": [{"task": "broken", "start": "", "end": "", "note": "n"}], "coach_note": ""}`,
	} {
		_, err := decodePlan(content)
		if !errors.Is(err, ErrEmptySchedule) {
			t.Errorf("decodePlan(%s) = %v, want ErrEmptySchedule", content, err)
		}
	}
}

func TestGeneratePlan_NotConfigured(t *testing.T) {
	client := New("", "")
	_, err := client.GeneratePlan(context.Background(), "prompt")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("GeneratePlan without key = %v, want ErrNotConfigured", err)
	}
}
