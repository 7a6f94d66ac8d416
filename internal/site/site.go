// Package site holds the static document a portfolio page is rendered from.
package site

import (
	"github.com/Zachkp/folio/internal/daterange"
)

// Site is the whole data document.
type Site struct {
	SEO        SEO        `json:"seo" yaml:"seo"`
	Hero       Hero       `json:"hero" yaml:"hero"`
	Works      Works      `json:"works" yaml:"works"`
	Experience Experience `json:"experience" yaml:"experience"`
	Knowledge  Knowledge  `json:"knowledge" yaml:"knowledge"`
	Contact    Contact    `json:"contact" yaml:"contact"`
	Footer     Footer     `json:"footer" yaml:"footer"`
}

type SEO struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	OGImage     string `json:"ogImage" yaml:"ogImage"`
}

type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

type Hero struct {
	Greeting     string   `json:"greeting" yaml:"greeting"`
	Title        string   `json:"title" yaml:"title"`
	Subtitle     string   `json:"subtitle" yaml:"subtitle"`
	Avatar       string   `json:"avatar" yaml:"avatar"`
	Highlights   []string `json:"highlights" yaml:"highlights"`
	CTAPrimary   Link     `json:"ctaPrimary" yaml:"ctaPrimary"`
	CTASecondary Link     `json:"ctaSecondary" yaml:"ctaSecondary"`
}

type Works struct {
	Title string `json:"title" yaml:"title"`
	Items []Work `json:"items" yaml:"items"`
}

// Work is a project card.
type Work struct {
	ID      string    `json:"id,omitempty" yaml:"id,omitempty"`
	Title   string    `json:"title" yaml:"title"`
	Slug    string    `json:"slug,omitempty" yaml:"slug,omitempty"`
	Year    int       `json:"year" yaml:"year"`
	Role    string    `json:"role" yaml:"role"`
	Summary string    `json:"summary" yaml:"summary"`
	Cover   string    `json:"cover,omitempty" yaml:"cover,omitempty"`
	Gallery []string  `json:"gallery" yaml:"gallery"`
	Tech    []string  `json:"tech" yaml:"tech"`
	Links   WorkLinks `json:"links" yaml:"links"`
}

type WorkLinks struct {
	Live string `json:"live,omitempty" yaml:"live,omitempty"`
	Repo string `json:"repo,omitempty" yaml:"repo,omitempty"`
}

type Experience struct {
	Title string `json:"title" yaml:"title"`
	Items []Job  `json:"items" yaml:"items"`
}

// Job is one employment record. End may hold the "present" sentinel.
type Job struct {
	Company  string          `json:"company" yaml:"company"`
	Position string          `json:"position" yaml:"position"`
	Location string          `json:"location" yaml:"location"`
	Start    daterange.Bound `json:"start" yaml:"start"`
	End      daterange.Bound `json:"end" yaml:"end"`
	Bullets  []string        `json:"bullets" yaml:"bullets"`
	Tech     []string        `json:"tech,omitempty" yaml:"tech,omitempty"`
}

type Knowledge struct {
	Title  string  `json:"title" yaml:"title"`
	Stacks []Stack `json:"stacks" yaml:"stacks"`
}

type Stack struct {
	Category string  `json:"category" yaml:"category"`
	Skills   []Skill `json:"skills" yaml:"skills"`
}

// Skill is a named skill; Level is the year the skill was picked up.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level,omitempty" yaml:"level,omitempty"`
}

type Contact struct {
	Title      string   `json:"title" yaml:"title"`
	Intro      string   `json:"intro" yaml:"intro"`
	Email      string   `json:"email" yaml:"email"`
	ShowMailto bool     `json:"showMailto" yaml:"showMailto"`
	Socials    []Social `json:"socials" yaml:"socials"`
}

type Social struct {
	Name     string `json:"name" yaml:"name"`
	Href     string `json:"href" yaml:"href"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

type Footer struct {
	Copyright string   `json:"copyright" yaml:"copyright"`
	MadeWith  []string `json:"madeWith" yaml:"madeWith"`
}
