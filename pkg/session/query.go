package session

import (
	"net/url"

	"github.com/artem13815/careerlens/pkg/career"
)

// Prefs are the preferences mirrored into the page query string so a
// results view can be bookmarked.
type Prefs struct {
	City            string
	ExperienceLevel career.ExperienceLevel
	Mode            career.Mode
}

func prefsOf(in career.UserInput) Prefs {
	return Prefs{City: in.City, ExperienceLevel: in.ExperienceLevel, Mode: in.Mode}
}

// Encode renders the preferences as a query string.
func (p Prefs) Encode() string {
	v := url.Values{}
	v.Set("city", p.City)
	v.Set("experienceLevel", string(p.ExperienceLevel))
	v.Set("mode", string(p.Mode))
	return v.Encode()
}

// ParsePrefs reads preferences back from a query string. Missing or
// invalid values are left empty; the experience level defaults like the form.
func ParsePrefs(query string) Prefs {
	v, err := url.ParseQuery(query)
	if err != nil {
		return Prefs{ExperienceLevel: career.LevelFresher}
	}
	p := Prefs{
		City:            v.Get("city"),
		ExperienceLevel: career.NormalizeExperienceLevel(v.Get("experienceLevel")),
	}
	if m, err := career.ParseMode(v.Get("mode")); err == nil && v.Get("mode") != "" {
		p.Mode = m
	}
	return p
}

// seed applies query preferences to a fresh input. Mode is not taken from
// the query.
func (p Prefs) seed(in *career.UserInput) {
	in.City = p.City
	if p.ExperienceLevel != "" {
		in.ExperienceLevel = p.ExperienceLevel
	}
}
