package controller

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	cmsModel "altroway_backend/internals/features/cms/content/model"
	cmsService "altroway_backend/internals/features/cms/content/service"
	helper "altroway_backend/internals/helpers"
)

type FieldView struct {
	cmsModel.FormField
	Value string
}

type EditorView struct {
	ID     string
	Type   cmsModel.ContentType
	Fields []FieldView
}

type TabView struct {
	Name   string
	Active bool
}

// tabFor is the inverse of TabType.
func tabFor(t cmsModel.ContentType) string {
	for _, tab := range cmsModel.Tabs {
		if cmsModel.TabType(tab) == t {
			return tab
		}
	}
	return cmsModel.Tabs[0]
}

func tabViews(active string) []TabView {
	out := make([]TabView, 0, len(cmsModel.Tabs))
	for _, tab := range cmsModel.Tabs {
		out = append(out, TabView{Name: tab, Active: tab == active})
	}
	return out
}

func normalizeTab(tab string) string {
	tab = strings.ToLower(strings.TrimSpace(tab))
	for _, t := range cmsModel.Tabs {
		if t == tab {
			return t
		}
	}
	return cmsModel.Tabs[0]
}

// newEditor renders an empty form for a new item of type t.
func newEditor(t cmsModel.ContentType) *EditorView {
	return editorFor("", t, map[string]string{"status": string(cmsModel.ContentDraft)})
}

// rowEditor fills the form from a stored row. Metadata that no longer
// decodes is shown empty so the editor can overwrite it.
func rowEditor(row *cmsModel.CMSContentModel) *EditorView {
	values := map[string]string{
		"title":   row.Title,
		"status":  string(row.Status),
		"content": row.Content,
	}
	meta, _ := row.TypedMetadata()
	switch m := meta.(type) {
	case cmsModel.JobMetadata:
		values["company"], values["location"], values["salary"] = m.Company, m.Location, m.Salary
	case cmsModel.TestimonialMetadata:
		values["author"] = m.Author
		values["rating"] = strconv.Itoa(m.Rating)
	}
	return editorFor(row.ID.String(), row.Type, values)
}

func editorFor(id string, t cmsModel.ContentType, values map[string]string) *EditorView {
	fields := cmsModel.FormFields(t)
	out := &EditorView{ID: id, Type: t, Fields: make([]FieldView, 0, len(fields))}
	for _, f := range fields {
		out.Fields = append(out.Fields, FieldView{FormField: f, Value: values[f.Name]})
	}
	return out
}

// CMSForm is a decoded editor submission.
type CMSForm struct {
	ID       string
	Tab      string
	Type     cmsModel.ContentType
	Title    string
	Content  string
	Status   cmsModel.ContentStatus
	Metadata json.RawMessage
}

// ParseCMSForm reads the editor fields for the submitted type. Variant
// types always carry a metadata object so that emptied fields clear the
// stored bag; page, guide and faq carry none.
func ParseCMSForm(get func(key string) string) (*CMSForm, error) {
	f := &CMSForm{
		ID:      strings.TrimSpace(get("id")),
		Type:    cmsModel.ContentType(strings.TrimSpace(get("type"))),
		Title:   get("title"),
		Content: get("content"),
		Status:  cmsModel.ContentStatus(strings.TrimSpace(get("status"))),
	}
	if !f.Type.Valid() {
		return nil, helper.Invalid("type must be one of: page, job, guide, testimonial, faq")
	}
	f.Tab = tabFor(f.Type)

	bag := map[string]any{}
	variant := false
	for _, field := range cmsModel.FormFields(f.Type) {
		if !field.Metadata {
			continue
		}
		variant = true
		v := strings.TrimSpace(get(field.Name))
		if v == "" {
			continue
		}
		if field.Input == "number" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, helper.Invalid("metadata.%s must be a number", field.Name)
			}
			bag[field.Name] = n
			continue
		}
		bag[field.Name] = v
	}
	if variant {
		raw, err := json.Marshal(bag)
		if err != nil {
			return nil, helper.Internal(err)
		}
		f.Metadata = raw
	}
	return f, nil
}

func (f *CMSForm) Input() cmsService.ContentInput {
	return cmsService.ContentInput{
		Type:     f.Type,
		Title:    f.Title,
		Content:  f.Content,
		Status:   f.Status,
		Metadata: f.Metadata,
	}
}

// Patch replaces every editable column.
func (f *CMSForm) Patch() cmsService.ContentPatch {
	p := cmsService.ContentPatch{
		Type:     &f.Type,
		Title:    &f.Title,
		Content:  &f.Content,
		Metadata: f.Metadata,
	}
	if f.Status != "" {
		p.Status = &f.Status
	}
	return p
}

func cmsRedirect(tab, key, msg string) string {
	q := url.Values{}
	q.Set("tab", tab)
	if msg != "" {
		q.Set(key, msg)
	}
	return "/admin/cms?" + q.Encode()
}
