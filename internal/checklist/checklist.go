// Package checklist builds enrollment document checklists. BuildFromProfile
// works from the applicant's answers alone; BuildForFacility works from a
// concrete facility record and child.
//
// Every call returns a fresh copy. Callers may mutate the result freely.
package checklist

import (
	"time"

	"github.com/alexanderramin/dotori/internal/domain"
)

type Item struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Detail   string `json:"detail,omitempty"`
	Checked  bool   `json:"checked"`
	Required *bool  `json:"required,omitempty"`
}

type Category struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

type Checklist struct {
	Title        string     `json:"title"`
	FacilityID   string     `json:"facilityId,omitempty"`
	FacilityName string     `json:"facilityName,omitempty"`
	Categories   []Category `json:"categories"`
	GeneratedAt  time.Time  `json:"generatedAt"`
}

// Items returns every item across categories in order.
func (c *Checklist) Items() []Item {
	var out []Item
	for _, cat := range c.Categories {
		out = append(out, cat.Items...)
	}
	return out
}

// Category returns the category with the given title, or nil.
func (c *Checklist) Category(title string) *Category {
	for i := range c.Categories {
		if c.Categories[i].Title == title {
			return &c.Categories[i]
		}
	}
	return nil
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Required = domain.CloneBoolPtr(it.Required)
		out[i] = it
	}
	return out
}

func required(id, text, detail string) Item {
	return Item{ID: id, Text: text, Detail: detail, Required: domain.BoolPtr(true)}
}

func optional(id, text, detail string) Item {
	return Item{ID: id, Text: text, Detail: detail, Required: domain.BoolPtr(false)}
}
