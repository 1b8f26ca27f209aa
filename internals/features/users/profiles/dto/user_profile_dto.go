package dto

import (
	"strings"

	"altroway_backend/internals/features/users/profiles/model"
	"altroway_backend/internals/helpers/dbtime"
)

// ProfileFields are the intake-form columns a user may set at sign-up
// and change later. Nil means "leave as is".
type ProfileFields struct {
	FirstName            *string      `json:"first_name" validate:"omitempty,max=100"`
	LastName             *string      `json:"last_name" validate:"omitempty,max=100"`
	Mobile               *string      `json:"mobile" validate:"omitempty,max=30"`
	CityOfBirth          *string      `json:"city_of_birth" validate:"omitempty,max=100"`
	DateOfBirth          *dbtime.Date `json:"date_of_birth"`
	Address              *string      `json:"address"`
	EducationLevel       *string      `json:"education_level" validate:"omitempty,oneof=secondary specialised higher"`
	DiplomasCertificates *string      `json:"diplomas_certificates"`
	WorkExperience       *string      `json:"work_experience"`
	LanguageSkills       *string      `json:"language_skills"`
	AboutMe              *string      `json:"about_me"`
}

// UpdateProfileRequest is the PUT /api/profile body: {userId, ...fields}.
type UpdateProfileRequest struct {
	UserID string `json:"userId"`
	ProfileFields
	ApplicationStatus *string `json:"application_status" validate:"omitempty,oneof=received under_review resolved"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received under_review resolved"`
}

type DeleteUserRequest struct {
	UserID string `json:"userId"`
}

// ApplyTo copies the set fields onto a new profile row.
func (f ProfileFields) ApplyTo(m *model.UserProfileModel) {
	m.FirstName = trimPtr(f.FirstName)
	m.LastName = trimPtr(f.LastName)
	m.Mobile = trimPtr(f.Mobile)
	m.CityOfBirth = trimPtr(f.CityOfBirth)
	m.DateOfBirth = f.DateOfBirth
	m.Address = f.Address
	if f.EducationLevel != nil && strings.TrimSpace(*f.EducationLevel) != "" {
		lvl := model.EducationLevel(strings.TrimSpace(*f.EducationLevel))
		m.EducationLevel = &lvl
	}
	m.DiplomasCertificates = f.DiplomasCertificates
	m.WorkExperience = f.WorkExperience
	m.LanguageSkills = f.LanguageSkills
	m.AboutMe = f.AboutMe
}

// ToUpdateMap lists only the columns present in the request.
func (r UpdateProfileRequest) ToUpdateMap() map[string]any {
	out := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			out[col] = strings.TrimSpace(*v)
		}
	}
	set("first_name", r.FirstName)
	set("last_name", r.LastName)
	set("mobile", r.Mobile)
	set("city_of_birth", r.CityOfBirth)
	set("address", r.Address)
	if r.EducationLevel != nil {
		if lvl := strings.TrimSpace(*r.EducationLevel); lvl != "" {
			out["education_level"] = lvl
		} else {
			out["education_level"] = nil
		}
	}
	set("diplomas_certificates", r.DiplomasCertificates)
	set("work_experience", r.WorkExperience)
	set("language_skills", r.LanguageSkills)
	set("about_me", r.AboutMe)
	set("application_status", r.ApplicationStatus)
	if r.DateOfBirth != nil {
		out["date_of_birth"] = *r.DateOfBirth
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
