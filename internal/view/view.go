// Package view turns site data into display-ready values. Templates print
// these values verbatim.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Zachkp/folio/internal/daterange"
	"github.com/Zachkp/folio/internal/experience"
	"github.com/Zachkp/folio/internal/site"
)

const (
	metaSeparator  = " · "
	builtSeparator = " • "
)

type Page struct {
	SEO        site.SEO  `json:"seo"`
	Hero       site.Hero `json:"hero"`
	Works      Section   `json:"works"`
	Cards      []Card    `json:"cards"`
	Experience Section   `json:"experience"`
	Jobs       []Job     `json:"jobs"`
	Knowledge  Section   `json:"knowledge"`
	Stacks     []Stack   `json:"stacks"`
	Contact    Contact   `json:"contact"`
	Footer     Footer    `json:"footer"`
}

type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Card is a project with its resolved image list.
type Card struct {
	Key     string         `json:"key"`
	Title   string         `json:"title"`
	Year    string         `json:"year"`
	Role    string         `json:"role"`
	Summary string         `json:"summary"`
	Images  []Image        `json:"images"`
	Tech    []string       `json:"tech"`
	Links   site.WorkLinks `json:"links"`
}

type Image struct {
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Eager bool   `json:"eager"`
}

type Job struct {
	Company  string   `json:"company"`
	Position string   `json:"position"`
	Range    string   `json:"range"`
	Location string   `json:"location"`
	Meta     string   `json:"meta"`
	Bullets  []string `json:"bullets"`
	Tech     []string `json:"tech"`
}

type Stack struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

type Skill struct {
	Name  string `json:"name"`
	Years int    `json:"years"`
	Label string `json:"label"`
}

type Contact struct {
	Title   string   `json:"title"`
	Intro   string   `json:"intro"`
	Email   string   `json:"email"`
	Mailto  string   `json:"mailto,omitempty"`
	Socials []Social `json:"socials"`
}

type Social struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Footer struct {
	Copyright string `json:"copyright"`
	BuiltWith string `json:"builtWith"`
}

// Build assembles the page. Ranges come from f and skill durations from c;
// nil values fall back to English and the system clock.
func Build(s *site.Site, f *daterange.Formatter, c *experience.Calculator) *Page {
	if f == nil {
		f, _ = daterange.NewFormatter(daterange.DefaultLocale)
	}
	if c == nil {
		c = experience.NewCalculator(nil)
	}
	p := &Page{
		SEO:        s.SEO,
		Hero:       s.Hero,
		Works:      Section{ID: "works", Title: s.Works.Title},
		Experience: Section{ID: "experience", Title: s.Experience.Title},
		Knowledge:  Section{ID: "knowledge", Title: s.Knowledge.Title},
		Footer: Footer{
			Copyright: s.Footer.Copyright,
			BuiltWith: strings.Join(s.Footer.MadeWith, builtSeparator),
		},
	}
	for i, w := range s.Works.Items {
		p.Cards = append(p.Cards, card(i, w))
	}
	for _, j := range s.Experience.Items {
		p.Jobs = append(p.Jobs, job(j, f))
	}
	for _, st := range s.Knowledge.Stacks {
		stack := Stack{Category: st.Category}
		for _, sk := range st.Skills {
			years := c.Since(sk.Level)
			stack.Skills = append(stack.Skills, Skill{
				Name:  sk.Name,
				Years: years,
				Label: strconv.Itoa(years) + " yr",
			})
		}
		p.Stacks = append(p.Stacks, stack)
	}
	p.Contact = contact(s.Contact)
	return p
}

func card(i int, w site.Work) Card {
	key := w.ID
	if key == "" {
		key = fmt.Sprintf("%s-%d-%d", w.Title, w.Year, i)
	}
	c := Card{
		Key:     key,
		Title:   w.Title,
		Role:    w.Role,
		Summary: w.Summary,
		Tech:    w.Tech,
		Links:   w.Links,
	}
	if w.Year != 0 {
		c.Year = strconv.Itoa(w.Year)
	}
	for n, src := range images(w) {
		c.Images = append(c.Images, Image{
			Src:   src,
			Alt:   fmt.Sprintf("%s screenshot %d", w.Title, n+1),
			Eager: n == 0,
		})
	}
	return c
}

// images prefers the gallery, then the cover.
func images(w site.Work) []string {
	if len(w.Gallery) > 0 {
		return w.Gallery
	}
	if w.Cover != "" {
		return []string{w.Cover}
	}
	return nil
}

func job(j site.Job, f *daterange.Formatter) Job {
	r := f.Format(j.Start, j.End)
	return Job{
		Company:  j.Company,
		Position: j.Position,
		Range:    r,
		Location: j.Location,
		Meta:     joinNonEmpty(metaSeparator, r, j.Location),
		Bullets:  j.Bullets,
		Tech:     j.Tech,
	}
}

func contact(c site.Contact) Contact {
	out := Contact{Title: c.Title, Intro: c.Intro, Email: c.Email}
	if c.ShowMailto && c.Email != "" {
		out.Mailto = "mailto:" + c.Email
	}
	for _, s := range c.Socials {
		label := s.Name
		if s.Username != "" {
			label += metaSeparator + s.Username
		}
		out.Socials = append(out.Socials, Social{Label: label, Href: s.Href})
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
