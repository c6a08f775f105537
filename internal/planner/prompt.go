package planner

import (
	"fmt"
	"strings"

	"github.com/yeskala/dayplan/internal/models"
)

// SystemPrompt is the fixed system role sent with every planning request.
const SystemPrompt = "You are an expert AI daily schedule planner and coach for students. " +
	"You are careful, realistic, and supportive."

// outputContract pins the model to a strict JSON shape. Kept as one literal
// so the schedule/mood/coach_note contract stays in a single place.
const outputContract = `
Return a SINGLE JSON object with exactly these keys:

{
  "schedule": [
    {
      "task": "string - task or break label",
      "type": "task" or "break",
      "start": "HH:MM in 24h format",
      "end": "HH:MM in 24h format",
      "importance": integer from 0 to 3,
      "note": "1-3 sentences explaining WHY this block is here, referencing their mood, energy, and goals."
    }
  ],
  "mood": {
      "label": "short phrase describing the user's emotional state",
      "intensity": "an integer from 1 to 10 based on the strength of the emotional tone",
      "reasoning": "1-2 sentences explaining why this mood and intensity were chosen"
 },

  "coach_note": "2-5 sentence high-level reflection and advice for this user about how to approach TODAY overall."
}

Priority mapping rules:
- importance = 3 → MUST-DO today (top priority, ideally done in their peak focus time).
- importance = 2 → SHOULD-DO today (important but can be moved slightly if needed).
- importance = 1 → NICE-TO-HAVE (only if time/energy remains).
- importance = 0 → REST / BREAK / LOW-INTENSITY blocks (usually with type = "break").

Scheduling rules:
- Cover the full day from wake time to sleep time with realistic spacing.
- Put MUST-DO (3) tasks into their best focus windows and earlier in the day if possible.
- Then place SHOULD-DO (2) tasks around them.
- Only insert NICE-TO-HAVE (1) tasks in leftover energy/time.
- Respect what the user says about when they feel more focused or tired.
- If they sound stressed or overloaded, insert more breaks and reduce intensity.
- Use importance=0 and type='break' for rest/food/scrolling/relaxation blocks.
- Never leave 'note' empty. Each block needs a meaningful explanation.
- Do NOT wrap the JSON in markdown. Output ONLY pure JSON.
`

// BuildPrompt composes the full instruction string for the model from the
// user's free-text description and an optional prior-context string
// (yesterday's plan/reflection plus current preferences). Pure string
// composition; no side effects.
func BuildPrompt(userText string, previousSummary string) string {
	lines := []string{
		"You are an advanced AI time-management system for a student.",
		"The user will describe themselves and their day in free text.",
		"Your job is to:",
		"- infer their energy pattern, stress level, and priorities",
		"- extract tasks, estimate durations, and assign a clear priority level",
		"- build a realistic schedule from wake to sleep",
		"- adapt to their mood, constraints, and goals",
		"- and give a short coach note for the day.",
		"",
		"=== USER DESCRIPTION START ===",
		userText,
		"=== USER DESCRIPTION END ===",
	}

	if previousSummary != "" {
		lines = append(lines,
			"",
			"=== PAST DAY REFLECTION (YESTERDAY) ===",
			previousSummary,
			"Use this information to calibrate today's plan realistically. "+
				"If they consistently overestimated last time, schedule slightly less intense blocks, "+
				"move the hardest tasks into their best energy windows, and protect their rest.",
		)
	}

	lines = append(lines,
		"",
		"From this description, you must internally reconstruct:",
		"- wake time and sleep time (or reasonable assumptions if missing)",
		"- a list of tasks with estimated durations",
		"- for each task, a PRIORITY bucket:",
		"    - MUST-DO today (deadline / very important)",
		"    - SHOULD-DO today (important but flexible)",
		"    - NICE-TO-HAVE (only if time/energy allows)",
		"- their stress tolerance and energy peaks (when they focus best, when they crash)",
		"",
		"Then generate a plan for TODAY only.",
		"",
		"Mood detection rules:",
		"- Infer mood only from the user's description: energy, stress, motivation, urgency, sleep quality, and emotional language.",
		"- You MUST assign a mood intensity from 1 to 10:",
		"    1-2 = extremely low energy / severely tired / defeated",
		"    3-4 = low energy, stressed, unfocused, mild negativity",
		"    5-6 = neutral or mixed emotional state",
		"    7-8 = strong emotion (very motivated, very stressed, very excited, etc.)",
		"    9-10 = extremely intense emotion (only if user language is very emotional)",
		"- Do NOT copy any example number for intensity.",
		"- You must THINK and calculate intensity uniquely for each prompt.",
		"- mood.intensity MUST be a NUMBER, not a string.",
		"",
		"=== OUTPUT FORMAT (STRICT JSON) ===",
		outputContract,
	)

	return strings.Join(lines, "\n")
}

// PreviousDaySummary renders yesterday's plan, reflection, and energy
// ratings into a calibration block for the prompt. Returns "" when the log
// is nil or the user never reflected on it.
func PreviousDaySummary(log *models.DayLog) string {
	if log == nil || !log.HasReflection() {
		return ""
	}
	return "Yesterday's plan and reflection:\n" +
		fmt.Sprintf("- Schedule (JSON): %s\n", log.ScheduleJSON) +
		fmt.Sprintf("- Reflection: %s\n", log.ReflectionText) +
		fmt.Sprintf("- Energy (1-10): morning=%s, afternoon=%s, night=%s\n",
			energyString(log.EnergyMorning),
			energyString(log.EnergyAfternoon),
			energyString(log.EnergyEvening))
}

// PreferencesSummary renders the stored preferences as one prompt line.
func PreferencesSummary(prefs *models.UserPreferences) string {
	if prefs == nil {
		return ""
	}
	return fmt.Sprintf(
		"User preferences: wake=%s, sleep=%s, max_study_hours=%s, break_frequency=%s mins, "+
			"focus_period=%s, study_style=%s, stress_sensitivity=%s, plays_sport=%t.",
		orNone(prefs.PreferredWakeTime),
		orNone(prefs.PreferredSleepTime),
		energyString(prefs.MaxStudyHours),
		energyString(prefs.BreakFrequencyMinutes),
		orNone(prefs.PreferredFocusPeriod),
		orNone(prefs.StudyStyle),
		orNone(prefs.StressSensitivity),
		prefs.PlaysSport,
	)
}

// LibraryTasksText renders the library tasks the user ticked on the planner
// form as a sentence to append to their description, so the model sees them
// alongside the free text. Returns "" for an empty selection.
func LibraryTasksText(tasks []models.SavedTask) string {
	if len(tasks) == 0 {
		return ""
	}
	pieces := make([]string, 0, len(tasks))
	for _, t := range tasks {
		pieces = append(pieces, fmt.Sprintf("%s (about %d minutes, importance %d)",
			t.Name, t.DefaultDurationMinutes, t.DefaultImportance))
	}
	return "Extra tasks I selected from my task library: " + strings.Join(pieces, "; ") + "."
}

func energyString(v *int) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *v)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
