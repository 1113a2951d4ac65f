package models

import (
	"gorm.io/datatypes"
)

// Resume stores the document wholesale: the top-level row carries ownership
// and the title, every section lives in a JSON column and is replaced as a
// unit on update.
type Resume struct {
	BaseModel
	UserID        string `gorm:"type:uuid;not null;index" json:"userId"`
	Title         string `gorm:"not null" json:"title"`
	ThumbnailLink string `json:"thumbnailLink"`

	Template    datatypes.JSONType[Template]    `json:"template"`
	ProfileInfo datatypes.JSONType[ProfileInfo] `json:"profileInfo"`
	ContactInfo datatypes.JSONType[ContactInfo] `json:"contactInfo"`

	WorkExperience datatypes.JSONSlice[WorkExperience] `json:"workExperience"`
	Education      datatypes.JSONSlice[Education]      `json:"education"`
	Skills         datatypes.JSONSlice[Skill]          `json:"skills"`
	Projects       datatypes.JSONSlice[Project]        `json:"projects"`
	Certifications datatypes.JSONSlice[Certification]  `json:"certifications"`
	Languages      datatypes.JSONSlice[Language]       `json:"languages"`
	Interests      datatypes.JSONSlice[string]         `json:"interests"`
}

type Template struct {
	Theme        string   `json:"theme"`
	ColorPalette []string `json:"colorPalette"`
}

type ProfileInfo struct {
	FullName          string `json:"fullName"`
	Designation       string `json:"designation"`
	Summary           string `json:"summary"`
	ProfilePreviewURL string `json:"profilePreviewUrl"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Github   string `json:"github"`
	Website  string `json:"website"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GithubLink  string `json:"github"`
	LiveDemoURL string `json:"liveDemo"`
}

type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Language struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}
