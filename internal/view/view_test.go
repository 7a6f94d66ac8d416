package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/daterange"
	"github.com/Zachkp/folio/internal/experience"
	"github.com/Zachkp/folio/internal/site"
)

func testSite() *site.Site {
	return &site.Site{
		Hero: site.Hero{Title: "Hello"},
		Works: site.Works{Title: "Works", Items: []site.Work{
			{ID: "a", Title: "Gallery", Year: 2024, Cover: "/c.png", Gallery: []string{"/1.png", "/2.png"}},
			{Title: "Cover only", Year: 2023, Cover: "/c.png"},
			{Title: "No images"},
		}},
		Experience: site.Experience{Title: "Experience", Items: []site.Job{
			{Company: "Acme", Start: daterange.ParseBound("2022-03"), End: daterange.Present(), Location: "Remote"},
			{Company: "Initech", Start: daterange.ParseBound("2020-01-15"), End: daterange.ParseBound("2021-06-20")},
			{Company: "Undated", Location: "Berlin"},
		}},
		Knowledge: site.Knowledge{Stacks: []site.Stack{
			{Category: "Languages", Skills: []site.Skill{{Name: "Go", Level: 2019}, {Name: "Rust"}}},
		}},
		Contact: site.Contact{
			Email:      "me@example.com",
			ShowMailto: true,
			Socials: []site.Social{
				{Name: "GitHub", Href: "https://github.com/me", Username: "me"},
				{Name: "Mastodon", Href: "https://example.social/@me"},
			},
		},
		Footer: site.Footer{MadeWith: []string{"Go", "Gin"}},
	}
}

func TestBuild(t *testing.T) {
	f, err := daterange.NewFormatter("en")
	require.NoError(t, err)
	p := Build(testSite(), f, experience.NewCalculator(experience.FixedYear(2024)))

	t.Run("cards", func(t *testing.T) {
		require.Len(t, p.Cards, 3)
		assert.Equal(t, "a", p.Cards[0].Key)
		assert.Equal(t, []Image{
			{Src: "/1.png", Alt: "Gallery screenshot 1", Eager: true},
			{Src: "/2.png", Alt: "Gallery screenshot 2"},
		}, p.Cards[0].Images)
		assert.Equal(t, "Cover only-2023-1", p.Cards[1].Key)
		assert.Equal(t, []Image{{Src: "/c.png", Alt: "Cover only screenshot 1", Eager: true}}, p.Cards[1].Images)
		assert.Empty(t, p.Cards[2].Images)
		assert.Equal(t, "", p.Cards[2].Year)
	})

	t.Run("jobs", func(t *testing.T) {
		require.Len(t, p.Jobs, 3)
		assert.Equal(t, "Mar 2022 – Present", p.Jobs[0].Range)
		assert.Equal(t, "Mar 2022 – Present · Remote", p.Jobs[0].Meta)
		assert.Equal(t, "Jan 2020 – Jun 2021", p.Jobs[1].Meta)
		assert.Equal(t, "Berlin", p.Jobs[2].Meta)
	})

	t.Run("skills", func(t *testing.T) {
		require.Len(t, p.Stacks, 1)
		assert.Equal(t, []Skill{
			{Name: "Go", Years: 5, Label: "5 yr"},
			{Name: "Rust", Years: 0, Label: "0 yr"},
		}, p.Stacks[0].Skills)
	})

	t.Run("contact", func(t *testing.T) {
		assert.Equal(t, "mailto:me@example.com", p.Contact.Mailto)
		assert.Equal(t, []Social{
			{Label: "GitHub · me", Href: "https://github.com/me"},
			{Label: "Mastodon", Href: "https://example.social/@me"},
		}, p.Contact.Socials)
	})

	t.Run("footer", func(t *testing.T) {
		assert.Equal(t, "Go • Gin", p.Footer.BuiltWith)
	})
}

func TestBuildHidesMailto(t *testing.T) {
	s := testSite()
	s.Contact.ShowMailto = false
	p := Build(s, nil, nil)
	assert.Empty(t, p.Contact.Mailto)
}

func TestBuildDefaults(t *testing.T) {
	p := Build(testSite(), nil, nil)
	assert.Equal(t, "Mar 2022 – Present", p.Jobs[0].Range)
	assert.Equal(t, time.Now().Year()-2019, p.Stacks[0].Skills[0].Years)
}
