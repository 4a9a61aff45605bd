package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_EveryKeyInEveryLanguage(t *testing.T) {
	base := builtinLabels[KO]
	for lang, labels := range builtinLabels {
		for key := range base {
			_, ok := labels[key]
			assert.True(t, ok, "%s missing key %q", lang, key)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		code string
		want Lang
	}{
		{"KO", KO},
		{"EN", EN},
		{"en", EN},
		{" ko ", KO},
		{"en-US", EN},
		{"ko-KR", KO},
		{"fr", KO},
		{"", KO},
		{"not a language!", KO},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Default.Resolve(tt.code))
		})
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Lang
	}{
		{"", KO},
		{"en-US,en;q=0.9", EN},
		{"ko-KR,ko;q=0.9,en;q=0.8", KO},
		{"de-DE", KO},
		{"fr;q=0.9, en;q=0.5", EN},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Default.Negotiate(tt.header))
		})
	}
}

func TestLookup_UnknownLanguageFallsBackToBase(t *testing.T) {
	table := Default.Lookup("JA")
	assert.Equal(t, KO, table.Lang())
	assert.Equal(t, "IRM 관리 시스템", table.Label(KeyTitle))
}

func TestLabel_MissingKeyFallsBack(t *testing.T) {
	c, err := NewCatalog(KO, map[Lang]map[Key]string{
		KO: {KeyTitle: "제목", KeySave: "저장"},
		EN: {KeyTitle: "Title"},
	}, ReportColumns)
	require.NoError(t, err)

	en := c.Lookup("EN")
	assert.Equal(t, "Title", en.Label(KeyTitle))
	assert.Equal(t, "저장", en.Label(KeySave), "missing key uses base language")
	assert.Equal(t, "download", en.Label(KeyDownload), "key missing everywhere returns key")
}

func TestBuiltin_AlternateBase(t *testing.T) {
	c, err := Builtin("en")
	require.NoError(t, err)

	assert.Equal(t, EN, c.Base())
	assert.Equal(t, []Lang{EN, KO}, c.Languages())
	assert.Equal(t, EN, c.Resolve("fr"))
}

func TestBuiltin_UnsupportedBase(t *testing.T) {
	_, err := Builtin("FR")
	assert.Error(t, err)
}

func TestColumns_SameForAllLanguages(t *testing.T) {
	want := []string{"Date", "Name", "Account", "Tier", "ER", "Products", "Post_Date", "Comment"}
	assert.Equal(t, want, Default.Lookup("KO").Columns())
	assert.Equal(t, want, Default.Lookup("EN").Columns())

	cols := Default.Columns()
	cols[0] = "mutated"
	assert.Equal(t, "Date", Default.Columns()[0])
}

func TestFind(t *testing.T) {
	en := Default.Lookup("EN")

	msg, ok := en.Find(MessageKey("VAL001"))
	assert.True(t, ok)
	assert.Equal(t, "Reach must be at least 1", msg)

	msg, ok = Default.Lookup("KO").Find(ActionKey("VAL001"))
	assert.True(t, ok)
	assert.Equal(t, "조회수를 1 이상으로 입력하세요", msg)

	_, ok = en.Find(MessageKey("NOPE999"))
	assert.False(t, ok)
}
