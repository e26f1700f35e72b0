package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Project is a single portfolio project entry.
type Project struct {
	Title        string   `json:"title" bson:"title"`
	Description  string   `json:"description" bson:"description"`
	Image        string   `json:"image" bson:"image,omitempty"`
	Technologies []string `json:"technologies" bson:"technologies"`
	GithubURL    string   `json:"githubUrl" bson:"github_url,omitempty"`
	DemoURL      string   `json:"demoUrl" bson:"demo_url,omitempty"`
}

// PortfolioContent is the singleton content document as stored. Skills and
// projects are native arrays here; the JSON-string encoding the admin client
// speaks exists only on the wire (ContentPayload).
type PortfolioContent struct {
	ID              string    `bson:"_id,omitempty"`
	HeroTitle       string    `bson:"hero_title"`
	HeroSubtitle    string    `bson:"hero_subtitle"`
	HeroDescription string    `bson:"hero_description"`
	AboutText       string    `bson:"about_text"`
	Skills          []string  `bson:"skills"`
	Projects        []Project `bson:"projects"`
	ProfileImage    string    `bson:"profile_image,omitempty"`
	Version         int64     `bson:"version"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

// ContentPayload is the wire representation of PortfolioContent. SkillsList and
// ProjectsList carry JSON-encoded arrays, matching what the admin editor submits.
type ContentPayload struct {
	HeroTitle       string    `json:"heroTitle"`
	HeroSubtitle    string    `json:"heroSubtitle"`
	HeroDescription string    `json:"heroDescription"`
	AboutText       string    `json:"aboutText"`
	SkillsList      string    `json:"skillsList"`
	ProjectsList    string    `json:"projectsList"`
	ProfileImage    string    `json:"profileImage"`
	Version         int64     `json:"version,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}

// Validate returns field-level errors for a content submission. The list fields
// must be well-formed JSON arrays since they are decoded into native arrays
// before storage.
func (p *ContentPayload) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(p.HeroTitle) == "" {
		errors["heroTitle"] = "Hero title is required"
	}
	if strings.TrimSpace(p.HeroSubtitle) == "" {
		errors["heroSubtitle"] = "Hero subtitle is required"
	}
	if strings.TrimSpace(p.HeroDescription) == "" {
		errors["heroDescription"] = "Hero description is required"
	}
	if strings.TrimSpace(p.AboutText) == "" {
		errors["aboutText"] = "About text is required"
	}

	if strings.TrimSpace(p.SkillsList) == "" {
		errors["skillsList"] = "Skills list is required"
	} else {
		var skills []string
		if err := json.Unmarshal([]byte(p.SkillsList), &skills); err != nil {
			errors["skillsList"] = "Skills list must be a JSON array of strings"
		}
	}

	if strings.TrimSpace(p.ProjectsList) == "" {
		errors["projectsList"] = "Projects list is required"
	} else {
		var projects []Project
		if err := json.Unmarshal([]byte(p.ProjectsList), &projects); err != nil {
			errors["projectsList"] = "Projects list must be a JSON array of projects"
		}
	}

	return errors
}

// Content decodes the payload into a storable document. Callers are expected
// to have run Validate first; malformed list fields still fail here.
func (p *ContentPayload) Content() (*PortfolioContent, error) {
	var skills []string
	if err := json.Unmarshal([]byte(p.SkillsList), &skills); err != nil {
		return nil, err
	}
	var projects []Project
	if err := json.Unmarshal([]byte(p.ProjectsList), &projects); err != nil {
		return nil, err
	}

	return &PortfolioContent{
		HeroTitle:       p.HeroTitle,
		HeroSubtitle:    p.HeroSubtitle,
		HeroDescription: p.HeroDescription,
		AboutText:       p.AboutText,
		Skills:          skills,
		Projects:        projects,
		ProfileImage:    p.ProfileImage,
		Version:         p.Version,
	}, nil
}

// Payload encodes the document for the wire, re-serializing the list fields
// into JSON strings.
func (c *PortfolioContent) Payload() *ContentPayload {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	projects := c.Projects
	if projects == nil {
		projects = []Project{}
	}

	skillsJSON, _ := json.Marshal(skills)
	projectsJSON, _ := json.Marshal(projects)

	return &ContentPayload{
		HeroTitle:       c.HeroTitle,
		HeroSubtitle:    c.HeroSubtitle,
		HeroDescription: c.HeroDescription,
		AboutText:       c.AboutText,
		SkillsList:      string(skillsJSON),
		ProjectsList:    string(projectsJSON),
		ProfileImage:    c.ProfileImage,
		Version:         c.Version,
		UpdatedAt:       c.UpdatedAt,
	}
}

// DefaultContent is served when no content document exists. It is never
// persisted.
func DefaultContent() *PortfolioContent {
	return &PortfolioContent{
		HeroTitle:       "Alex Carter",
		HeroSubtitle:    "Full Stack Developer",
		HeroDescription: "I create exceptional digital experiences through clean code and thoughtful design. Passionate about building scalable web applications that solve real-world problems.",
		AboutText:       "I work with modern technologies to build robust and scalable applications",
		Skills:          []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "MongoDB", "Git", "AWS"},
		Projects: []Project{
			{
				Title:        "E-Commerce Platform",
				Description:  "A full-stack e-commerce solution featuring user authentication, payment integration, and an admin dashboard.",
				Image:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&w=800&h=400",
				Technologies: []string{"React", "Node.js", "MongoDB"},
				GithubURL:    "#",
				DemoURL:      "#",
			},
		},
		ProfileImage: "",
	}
}
