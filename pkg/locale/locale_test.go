package locale

import (
	"context"
	"testing"
)

func TestParseLang(t *testing.T) {
	tests := map[string]string{
		"":        EN,
		"EN":      EN,
		" ko-KR ": KO,
		"arabic":  AR,
		"ar_AE":   AR,
		"vi":      EN,
	}
	for in, want := range tests {
		if got := ParseLang(in); got != want {
			t.Errorf("ParseLang(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCatalogTranslate(t *testing.T) {
	c := Catalog{"Hello": {KO: "안녕하세요", AR: "مرحبا"}}

	t.Run("known message", func(t *testing.T) {
		ctx := SetLocaleToContext(context.Background(), KO)
		if got := c.TranslateCtx(ctx, "Hello"); got != "안녕하세요" {
			t.Errorf("TranslateCtx() = %q", got)
		}
	})

	t.Run("unknown message passes through", func(t *testing.T) {
		if got := c.Translate(AR, "Bye"); got != "Bye" {
			t.Errorf("Translate() = %q, want Bye", got)
		}
	})

	t.Run("no locale in context is english", func(t *testing.T) {
		got := c.TranslateAll(context.Background(), []string{"Hello"})
		if len(got) != 1 || got[0] != "Hello" {
			t.Errorf("TranslateAll() = %v", got)
		}
	})
}
