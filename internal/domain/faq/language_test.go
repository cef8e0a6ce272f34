package faq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"", CanonicalLanguage},
		{"en", "en"},
		{"HI", "hi"},
		{" bn ", "bn"},
		{"en-US", "en"},
	}
	for _, tc := range cases {
		got, err := ParseLanguage(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLanguage("not a language!")
	require.Error(t, err)
}

func TestLanguageSet(t *testing.T) {
	set := newLanguageSet([]Language{"hi", "en", "bn", "hi"})
	require.Equal(t, []Language{"hi", "bn"}, set.targets)
	require.Equal(t, []Language{"en", "hi", "bn"}, set.all())
	require.True(t, set.supports("en"))
	require.True(t, set.supports("bn"))
	require.False(t, set.supports("fr"))
}

func TestProject(t *testing.T) {
	record := Record{
		ID:       "id-1",
		Question: "Q",
		Answer:   "<p>A</p>",
		Translations: map[Language]Translation{
			"hi": {Question: "प्रश्न", Answer: "<p>उत्तर</p>"},
		},
	}

	require.Equal(t, Item{ID: "id-1", Question: "Q", Answer: "<p>A</p>"}, project(record, "en"))
	require.Equal(t, Item{ID: "id-1", Question: "प्रश्न", Answer: "<p>उत्तर</p>"}, project(record, "hi"))
	// missing translation falls back to canonical
	require.Equal(t, Item{ID: "id-1", Question: "Q", Answer: "<p>A</p>"}, project(record, "bn"))

	record.Translations = nil
	require.Equal(t, "Q", project(record, "hi").Question)
}
