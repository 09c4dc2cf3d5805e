package domain

import "time"

// UserProfile is a registrant as collected from the registration form.
// Password is transient: it only travels to the identity provider.
type UserProfile struct {
	FullName    string `json:"fullName"   validate:"required"`
	Email       string `json:"email"      validate:"required"`
	DateOfBirth string `json:"dob"`
	DocumentID  string `json:"cpf"`
	Bio         string `json:"bio"        validate:"max=2000"`
	City        string `json:"city"`
	Parish      string `json:"parish"`
	YouthGroup  string `json:"youthGroup"`
	IsAdmin     bool   `json:"isAdmin"`
	Password    string `json:"-"`
}

// ProfileRecord is the persisted form of a UserProfile. It has no password field.
type ProfileRecord struct {
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"dob"`
	DocumentID  string    `json:"cpf"`
	Bio         string    `json:"bio"`
	City        string    `json:"city"`
	Parish      string    `json:"parish"`
	YouthGroup  string    `json:"youthGroup"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WithoutPassword strips the credential and stamps the record timestamps.
func (p UserProfile) WithoutPassword(now time.Time) ProfileRecord {
	return ProfileRecord{
		FullName:    p.FullName,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		DocumentID:  p.DocumentID,
		Bio:         p.Bio,
		City:        p.City,
		Parish:      p.Parish,
		YouthGroup:  p.YouthGroup,
		IsAdmin:     p.IsAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Fields returns the document fields written to the profile store.
func (r ProfileRecord) Fields() map[string]any {
	return map[string]any{
		"fullName":   r.FullName,
		"email":      r.Email,
		"dob":        r.DateOfBirth,
		"cpf":        r.DocumentID,
		"bio":        r.Bio,
		"city":       r.City,
		"parish":     r.Parish,
		"youthGroup": r.YouthGroup,
		"isAdmin":    r.IsAdmin,
		"createdAt":  r.CreatedAt,
		"updatedAt":  r.UpdatedAt,
	}
}

// ProfileRecordFromFields is the inverse of Fields. Unknown or mistyped keys are ignored.
func ProfileRecordFromFields(f map[string]any) ProfileRecord {
	str := func(k string) string {
		s, _ := f[k].(string)
		return s
	}
	ts := func(k string) time.Time {
		t, _ := f[k].(time.Time)
		return t
	}
	admin, _ := f["isAdmin"].(bool)
	return ProfileRecord{
		FullName:    str("fullName"),
		Email:       str("email"),
		DateOfBirth: str("dob"),
		DocumentID:  str("cpf"),
		Bio:         str("bio"),
		City:        str("city"),
		Parish:      str("parish"),
		YouthGroup:  str("youthGroup"),
		IsAdmin:     admin,
		CreatedAt:   ts("createdAt"),
		UpdatedAt:   ts("updatedAt"),
	}
}

// Account is the identity provider's handle for a signed-in user.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// ProfilesPath returns the collection path holding public profiles for an application.
//
//	artifacts/{appID}/public/data/user_profiles
func ProfilesPath(appID string) string {
	if appID == "" {
		appID = DefaultAppID
	}
	return "artifacts/" + appID + "/public/data/user_profiles"
}

// DefaultAppID is used when no application namespace is configured.
const DefaultAppID = "default-app-id"
