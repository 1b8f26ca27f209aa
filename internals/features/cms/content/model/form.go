package model

import "strings"

type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Input    string   `json:"input"` // text | textarea | select | number
	Options  []string `json:"options,omitempty"`
	Metadata bool     `json:"metadata"` // lives in the metadata bag, not a column
}

var baseFields = []FormField{
	{Name: "title", Label: "Title", Input: "text"},
	{Name: "status", Label: "Status", Input: "select", Options: []string{string(ContentDraft), string(ContentPublished)}},
	{Name: "content", Label: "Content", Input: "textarea"},
}

// FormFields returns the editor fields for a content type: the base set
// followed by the fields of its metadata variant.
func FormFields(t ContentType) []FormField {
	out := append([]FormField(nil), baseFields...)
	switch t {
	case ContentJob:
		out = append(out,
			FormField{Name: "company", Label: "Company", Input: "text", Metadata: true},
			FormField{Name: "location", Label: "Location", Input: "text", Metadata: true},
			FormField{Name: "salary", Label: "Salary", Input: "text", Metadata: true},
		)
	case ContentTestimonial:
		out = append(out,
			FormField{Name: "author", Label: "Author", Input: "text", Metadata: true},
			FormField{Name: "rating", Label: "Rating", Input: "number", Options: []string{"1", "2", "3", "4", "5"}, Metadata: true},
		)
	}
	return out
}

var tabTypes = map[string]ContentType{
	"pages":        ContentPage,
	"jobs":         ContentJob,
	"guides":       ContentGuide,
	"testimonials": ContentTestimonial,
	"faqs":         ContentFAQ,
}

// Tabs in display order.
var Tabs = []string{"pages", "jobs", "guides", "testimonials", "faqs"}

// TabType maps a listing tab to the type new items created from it get.
// Unknown tabs fall back to page.
func TabType(tab string) ContentType {
	if t, ok := tabTypes[strings.ToLower(strings.TrimSpace(tab))]; ok {
		return t
	}
	return ContentPage
}
