package ui

import (
	"strings"
	"testing"
)

func TestLocalizationCoversAllKeys(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("language %s has no texts", code)
			continue
		}
		for key := range english {
			if strings.TrimSpace(texts[key]) == "" {
				t.Errorf("language %s is missing %q", code, key)
			}
		}
	}
}

func TestLocalizationPlaceholdersMatch(t *testing.T) {
	l := NewLocalization()
	for key, text := range l.texts["en"] {
		want := strings.Count(text, "%")
		for code, texts := range l.texts {
			if got := strings.Count(texts[key], "%"); got != want {
				t.Errorf("%s/%s has %d verbs, english has %d", code, key, got, want)
			}
		}
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("expected ru, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Error("unknown languages should be ignored")
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("system should fall back to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("unknown key should return itself, got %q", got)
	}

	delete(l.texts["pt"], KeyQuit)
	if got := l.GetText(KeyQuit); got != "Quit" {
		t.Errorf("missing translation should fall back to English, got %q", got)
	}
}

func TestLocalizationFormat(t *testing.T) {
	l := NewLocalization()
	if got := l.Format(KeyNetworkError, "timeout"); got != "Could not connect to server: timeout" {
		t.Errorf("unexpected format %q", got)
	}
}
