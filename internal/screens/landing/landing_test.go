package landing

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/asmit/mentis/internal/router"
	examscreen "github.com/asmit/mentis/internal/screens/exam"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(l *LandingScreen, text string) {
	for _, r := range text {
		l.Update(keyPress(r))
	}
}

// fillForm types a complete valid intake.
func fillForm(l *LandingScreen) {
	typeText(l, "Ada")
	l.Update(specialKey(tea.KeyTab))
	typeText(l, "71")
	l.Update(specialKey(tea.KeyTab)) // gender, defaults to first option on focus
	l.Update(specialKey(tea.KeyTab)) // begin button
}

func TestBeginWithValidForm(t *testing.T) {
	l := New(nil, nil, nil)
	fillForm(l)

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*examscreen.ExamScreen); !ok {
		t.Fatalf("expected exam screen, got %T", push.Screen)
	}
	if l.errMsg != "" {
		t.Errorf("unexpected error message: %q", l.errMsg)
	}
}

func TestBeginRejectsEmptyForm(t *testing.T) {
	l := New(nil, nil, nil)

	// Jump straight to the begin button without typing anything.
	l.Update(specialKey(tea.KeyTab))
	l.Update(specialKey(tea.KeyTab))
	l.Update(specialKey(tea.KeyTab))

	_, cmd := l.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("expected no navigation for an invalid form")
	}
	if l.errMsg == "" {
		t.Fatal("expected a validation error message")
	}
}

func TestNumericAgeInput(t *testing.T) {
	l := New(nil, nil, nil)
	l.Update(specialKey(tea.KeyTab)) // age field

	typeText(l, "7a1")
	if l.ageInput.Value() != "71" {
		t.Errorf("age = %q, want %q", l.ageInput.Value(), "71")
	}
}

func TestGenderSelection(t *testing.T) {
	l := New(nil, nil, nil)
	l.Update(specialKey(tea.KeyTab)) // age
	l.Update(specialKey(tea.KeyTab)) // gender, selects first option

	if l.gender != 0 {
		t.Fatalf("expected gender 0 on focus, got %d", l.gender)
	}

	l.Update(specialKey(tea.KeyRight))
	l.Update(specialKey(tea.KeyRight))
	if l.gender != 2 {
		t.Errorf("expected gender 2, got %d", l.gender)
	}

	// Clamped at the last option.
	l.Update(specialKey(tea.KeyRight))
	if l.gender != 2 {
		t.Errorf("expected gender clamped at 2, got %d", l.gender)
	}

	l.Update(specialKey(tea.KeyLeft))
	if l.gender != 1 {
		t.Errorf("expected gender 1, got %d", l.gender)
	}
}

func TestFocusWraps(t *testing.T) {
	l := New(nil, nil, nil)

	for i := 0; i < 4; i++ {
		l.Update(specialKey(tea.KeyTab))
	}
	if l.focus != focusName {
		t.Errorf("expected focus wrapped to name, got %d", l.focus)
	}
}
