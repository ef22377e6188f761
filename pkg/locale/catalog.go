package locale

import "context"

// Catalog maps an English source message to its translations by language code.
type Catalog map[string]map[string]string

// Translate returns msg in lang. English, unknown languages and unknown
// messages return msg unchanged.
func (c Catalog) Translate(lang, msg string) string {
	if lang == EN {
		return msg
	}
	if t, ok := c[msg][lang]; ok && t != "" {
		return t
	}
	return msg
}

// TranslateCtx translates msg into the language stored in ctx.
func (c Catalog) TranslateCtx(ctx context.Context, msg string) string {
	return c.Translate(GetLang(ctx), msg)
}

// TranslateAll translates every message in msgs into the language stored in ctx.
func (c Catalog) TranslateAll(ctx context.Context, msgs []string) []string {
	lang := GetLang(ctx)
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = c.Translate(lang, m)
	}
	return out
}
