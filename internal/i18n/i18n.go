// Package i18n holds the static label tables of the evaluation form.
//
// Labels are looked up by key. A key missing from the selected language
// falls back to the base language, then to the key itself. An unknown
// language code resolves to the base language.
package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Lang is an upper-case language code such as "KO".
type Lang string

// Key identifies one user-facing string.
type Key string

const (
	KeyTitle               Key = "title"
	KeyTabForm             Key = "tab_form"
	KeyTabList             Key = "tab_list"
	KeyName                Key = "name"
	KeyAccount             Key = "account"
	KeyShipDate            Key = "ship_date"
	KeyGuideDate           Key = "guide_date"
	KeyProductInfo         Key = "product_info"
	KeyPostDate            Key = "post_date"
	KeyNarrative           Key = "narrative"
	KeyProfessionalism     Key = "pro"
	KeyQuantitative        Key = "quant"
	KeyContext             Key = "context"
	KeyNote                Key = "note"
	KeySave                Key = "save"
	KeyDownload            Key = "download"
	KeyDownloadFull        Key = "download_full"
	KeyNeedResolution      Key = "need_resolution"
	KeySloganFit           Key = "slogan_fit"
	KeyLifestyleFusion     Key = "lifestyle_fusion"
	KeyDeadline            Key = "deadline"
	KeyGuideCompliance     Key = "guide_compliance"
	KeyCommunication       Key = "communication"
	KeyReach               Key = "reach"
	KeyLikes               Key = "likes"
	KeyComments            Key = "comments"
	KeyShares              Key = "shares"
	KeyEngagementRate      Key = "engagement_rate"
	KeyCaption             Key = "caption"
	KeyReplies             Key = "replies"
	KeyNotePlaceholder     Key = "note_placeholder"
	KeyNamePlaceholder     Key = "name_placeholder"
	KeyAccountPlaceholder  Key = "account_placeholder"
	KeyProductPlaceholder  Key = "product_placeholder"
	KeyShipDatePlaceholder Key = "ship_date_placeholder"
	KeyGuidePlaceholder    Key = "guide_date_placeholder"
	KeyPostDatePlaceholder Key = "post_date_placeholder"
	KeySaved               Key = "saved"
	KeyEmpty               Key = "empty"
	KeyLanguage            Key = "language"
)

// MessageKey names the label of the user message with the given support code.
func MessageKey(code string) Key {
	return Key("msg_" + code)
}

// ActionKey names the label of the suggested action for a support code.
func ActionKey(code string) Key {
	return Key("action_" + code)
}

// tags maps each supported language to its BCP 47 tag for negotiation.
var tags = map[Lang]language.Tag{
	KO: language.Korean,
	EN: language.English,
}

// Catalog is an immutable set of label tables with a designated base language.
type Catalog struct {
	base    Lang
	order   []Lang
	tables  map[Lang]map[Key]string
	columns []string
	matcher language.Matcher
}

// Default is the built-in catalog with KO as the base language.
var Default = mustBuiltin(KO)

// Builtin returns the built-in KO/EN catalog using base as the fallback language.
func Builtin(base string) (*Catalog, error) {
	return NewCatalog(Lang(strings.ToUpper(strings.TrimSpace(base))), builtinLabels, ReportColumns)
}

func mustBuiltin(base Lang) *Catalog {
	c, err := Builtin(string(base))
	if err != nil {
		panic(err)
	}
	return c
}

// NewCatalog builds a catalog from label tables. The base language must be
// present in tables. Languages without a known BCP 47 tag are still served
// by exact code but do not take part in Accept-Language negotiation.
func NewCatalog(base Lang, tables map[Lang]map[Key]string, columns []string) (*Catalog, error) {
	if _, ok := tables[base]; !ok {
		return nil, fmt.Errorf("unsupported base language %q", base)
	}

	// Base first so the matcher falls back to it.
	order := []Lang{base}
	matchTags := []language.Tag{tagFor(base)}
	for _, lang := range sortedLangs(tables) {
		if lang == base {
			continue
		}
		order = append(order, lang)
		matchTags = append(matchTags, tagFor(lang))
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Catalog{
		base:    base,
		order:   order,
		tables:  tables,
		columns: cols,
		matcher: language.NewMatcher(matchTags),
	}, nil
}

// Base returns the fallback language.
func (c *Catalog) Base() Lang {
	return c.base
}

// Languages returns the supported languages, base first.
func (c *Catalog) Languages() []Lang {
	out := make([]Lang, len(c.order))
	copy(out, c.order)
	return out
}

// Supports reports whether code names a language of the catalog exactly
// (case-insensitive).
func (c *Catalog) Supports(code string) bool {
	_, ok := c.tables[Lang(strings.ToUpper(strings.TrimSpace(code)))]
	return ok
}

// Resolve maps a language code to a supported language. Codes are matched
// case-insensitively first ("en", "EN"), then as BCP 47 tags ("en-US",
// "ko-KR"). Anything else resolves to the base language.
func (c *Catalog) Resolve(code string) Lang {
	lang := Lang(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := c.tables[lang]; ok {
		return lang
	}

	tag, err := language.Parse(code)
	if err != nil {
		return c.base
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.base
	}
	return c.order[idx]
}

// Negotiate picks a language from an Accept-Language header value.
func (c *Catalog) Negotiate(acceptLanguage string) Lang {
	if strings.TrimSpace(acceptLanguage) == "" {
		return c.base
	}
	_, idx := language.MatchStrings(c.matcher, acceptLanguage)
	if idx < 0 || idx >= len(c.order) {
		return c.base
	}
	return c.order[idx]
}

// Lookup returns the label table for a language code. Unknown codes get the
// base language table.
func (c *Catalog) Lookup(code string) *Table {
	return &Table{catalog: c, lang: c.Resolve(code)}
}

// Columns returns the report column order.
func (c *Catalog) Columns() []string {
	out := make([]string, len(c.columns))
	copy(out, c.columns)
	return out
}

// Table is the label view of a single language.
type Table struct {
	catalog *Catalog
	lang    Lang
}

// Lang returns the resolved language of the table.
func (t *Table) Lang() Lang {
	return t.lang
}

// Label returns the string for key, falling back to the base language and
// finally to the key itself.
func (t *Table) Label(key Key) string {
	if s, ok := t.Find(key); ok {
		return s
	}
	return string(key)
}

// Find returns the string for key from this language or the base language.
// The second result is false when neither has the key.
func (t *Table) Find(key Key) (string, bool) {
	if s, ok := t.catalog.tables[t.lang][key]; ok {
		return s, true
	}
	s, ok := t.catalog.tables[t.catalog.base][key]
	return s, ok
}

// Columns returns the report column order for this language.
func (t *Table) Columns() []string {
	return t.catalog.Columns()
}

func tagFor(lang Lang) language.Tag {
	if tag, ok := tags[lang]; ok {
		return tag
	}
	if tag, err := language.Parse(string(lang)); err == nil {
		return tag
	}
	return language.Und
}

func sortedLangs(tables map[Lang]map[Key]string) []Lang {
	langs := make([]Lang, 0, len(tables))
	for lang := range tables {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i] < langs[j]
	})
	return langs
}
