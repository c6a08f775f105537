package db

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/yeskala/dayplan/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "dayplan.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testBlocks() []models.ScheduleBlock {
	return []models.ScheduleBlock{
		{Task: "Study", Type: "task", Start: "09:00", End: "10:30", Importance: 3, Note: "exam prep"},
		{Task: "Break", Type: "break", Start: "10:30", End: "11:00", Importance: 0, Note: "rest"},
	}
}

func TestGetDayLog_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetDayLog("2026-08-23")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetDayLog on empty store = %v, want ErrNotFound", err)
	}
}

func TestUpsertDayLog_CreateThenRead(t *testing.T) {
	store := openTestStore(t)

	created, err := store.UpsertDayLog("2026-08-23", "busy day", testBlocks(), "pace yourself")
	if err != nil {
		t.Fatalf("UpsertDayLog: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a persisted row with an id")
	}

	log, err := store.GetDayLog("2026-08-23")
	if err != nil {
		t.Fatalf("GetDayLog: %v", err)
	}
	if log.Description != "busy day" || log.CoachNote != "pace yourself" {
		t.Errorf("unexpected log fields: %+v", log)
	}
	blocks := log.Blocks()
	if len(blocks) != 2 || blocks[0].Task != "Study" {
		t.Errorf("unexpected blocks: %+v", blocks)
	}
}

func TestUpsertDayLog_OverwritePreservesReflection(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.UpsertDayLog("2026-08-23", "first draft", testBlocks(), "note one"); err != nil {
		t.Fatalf("UpsertDayLog: %v", err)
	}

	morning := 6
	if _, err := store.RecordReflection("2026-08-23", "went fine", &morning, nil, nil); err != nil {
		t.Fatalf("RecordReflection: %v", err)
	}

	// Regenerating the plan overwrites plan fields only.
	if _, err := store.UpsertDayLog("2026-08-23", "second draft", testBlocks()[:1], "note two"); err != nil {
		t.Fatalf("UpsertDayLog (overwrite): %v", err)
	}

	log, err := store.GetDayLog("2026-08-23")
	if err != nil {
		t.Fatalf("GetDayLog: %v", err)
	}
	if log.Description != "second draft" || log.CoachNote != "note two" {
		t.Errorf("plan fields not overwritten: %+v", log)
	}
	if len(log.Blocks()) != 1 {
		t.Errorf("schedule not overwritten: %+v", log.Blocks())
	}
	if log.ReflectionText != "went fine" {
		t.Errorf("reflection text lost on upsert: %q", log.ReflectionText)
	}
	if log.EnergyMorning == nil || *log.EnergyMorning != 6 {
		t.Errorf("energy rating lost on upsert: %v", log.EnergyMorning)
	}

	logs, err := store.ListDayLogs()
	if err != nil {
		t.Fatalf("ListDayLogs: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("upsert created a second row for the same date: %d rows", len(logs))
	}
}

func TestRecordReflection_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.RecordReflection("2026-08-23", "nothing to reflect on", nil, nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RecordReflection without a plan = %v, want ErrNotFound", err)
	}
}

func TestListDayLogs_NewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, date := range []string{"2026-08-21", "2026-08-23", "2026-08-22"} {
		if _, err := store.UpsertDayLog(date, "d", testBlocks(), ""); err != nil {
			t.Fatalf("UpsertDayLog(%s): %v", date, err)
		}
	}

	logs, err := store.ListDayLogs()
	if err != nil {
		t.Fatalf("ListDayLogs: %v", err)
	}

	want := []string{"2026-08-23", "2026-08-22", "2026-08-21"}
	if len(logs) != len(want) {
		t.Fatalf("got %d logs, want %d", len(logs), len(want))
	}
	for i, date := range want {
		if logs[i].Date != date {
			t.Errorf("logs[%d].Date = %s, want %s", i, logs[i].Date, date)
		}
	}
}

func TestGetOrCreatePreferences_Idempotent(t *testing.T) {
	store := openTestStore(t)

	first, err := store.GetOrCreatePreferences()
	if err != nil {
		t.Fatalf("GetOrCreatePreferences: %v", err)
	}
	if first.ID != models.PreferencesID {
		t.Errorf("preferences id = %d, want %d", first.ID, models.PreferencesID)
	}

	second, err := store.GetOrCreatePreferences()
	if err != nil {
		t.Fatalf("GetOrCreatePreferences (second): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call returned a different row: %d vs %d", second.ID, first.ID)
	}
}

func TestUpdatePreferences_OverwritesEveryField(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.GetOrCreatePreferences(); err != nil {
		t.Fatalf("GetOrCreatePreferences: %v", err)
	}

	hours := 6
	full := &models.UserPreferences{
		PreferredWakeTime:    "07:00",
		PreferredSleepTime:   "23:30",
		MaxStudyHours:        &hours,
		PreferredFocusPeriod: models.FocusMorning,
		StudyStyle:           models.StylePomodoro,
		StressSensitivity:    models.StressHigh,
		PlaysSport:           true,
	}
	if _, err := store.UpdatePreferences(full); err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}

	// A submission with most fields blank wipes the previous values.
	if _, err := store.UpdatePreferences(&models.UserPreferences{StudyStyle: models.StyleMixed}); err != nil {
		t.Fatalf("UpdatePreferences (blank): %v", err)
	}

	prefs, err := store.GetOrCreatePreferences()
	if err != nil {
		t.Fatalf("GetOrCreatePreferences: %v", err)
	}
	if prefs.PreferredWakeTime != "" || prefs.MaxStudyHours != nil || prefs.PlaysSport {
		t.Errorf("omitted fields survived the overwrite: %+v", prefs)
	}
	if prefs.StudyStyle != models.StyleMixed {
		t.Errorf("study style = %q, want %q", prefs.StudyStyle, models.StyleMixed)
	}
}

func TestSavedTasks_CreateListDelete(t *testing.T) {
	store := openTestStore(t)

	if task, err := store.CreateSavedTask("  ", 30, 2, ""); err != nil || task != nil {
		t.Errorf("empty name should be a silent no-op, got (%+v, %v)", task, err)
	}

	first, err := store.CreateSavedTask("Review notes", 45, 2, "study")
	if err != nil {
		t.Fatalf("CreateSavedTask: %v", err)
	}
	if _, err := store.CreateSavedTask("Gym", 60, 1, ""); err != nil {
		t.Fatalf("CreateSavedTask: %v", err)
	}
	// Duplicate names are allowed.
	if _, err := store.CreateSavedTask("Gym", 30, 1, ""); err != nil {
		t.Fatalf("CreateSavedTask (duplicate): %v", err)
	}

	tasks, err := store.ListSavedTasks()
	if err != nil {
		t.Fatalf("ListSavedTasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	if tasks[0].Name != "Review notes" {
		t.Errorf("insertion order not preserved: %+v", tasks)
	}

	selected, err := store.GetSavedTasksByIDs([]uint{first.ID, 9999})
	if err != nil {
		t.Fatalf("GetSavedTasksByIDs: %v", err)
	}
	if len(selected) != 1 || selected[0].ID != first.ID {
		t.Errorf("GetSavedTasksByIDs = %+v, want just the first task", selected)
	}

	if err := store.DeleteSavedTask(first.ID); err != nil {
		t.Fatalf("DeleteSavedTask: %v", err)
	}
	// Deleting again (or a never-existing id) is a no-op.
	if err := store.DeleteSavedTask(first.ID); err != nil {
		t.Errorf("repeat delete should be a no-op, got %v", err)
	}

	tasks, err = store.ListSavedTasks()
	if err != nil {
		t.Fatalf("ListSavedTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("got %d tasks after delete, want 2", len(tasks))
	}
}
