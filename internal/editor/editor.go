// Package editor holds the admin panel's working copy of the portfolio
// content document. Edits mutate in-memory lists, re-serialize the list
// fields into the wire format, and mark the copy dirty; nothing persists
// until the caller submits the payload.
package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/skaran/portfolio/internal/models"
)

var (
	ErrDuplicateSkill  = errors.New("skill already exists")
	ErrEmptySkill      = errors.New("skill name is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Editor is a working copy of one content document.
type Editor struct {
	content  models.ContentPayload
	skills   []string
	projects []models.Project
	dirty    bool
}

// New parses the fetched payload into an editable working copy. Malformed
// list JSON fails here with a descriptive error so a broken document never
// reaches the save path.
func New(payload *models.ContentPayload) (*Editor, error) {
	e := &Editor{content: *payload}

	if payload.SkillsList != "" {
		if err := json.Unmarshal([]byte(payload.SkillsList), &e.skills); err != nil {
			return nil, fmt.Errorf("skills list is not a valid JSON array: %w", err)
		}
	}
	if payload.ProjectsList != "" {
		if err := json.Unmarshal([]byte(payload.ProjectsList), &e.projects); err != nil {
			return nil, fmt.Errorf("projects list is not a valid JSON array: %w", err)
		}
	}

	return e, nil
}

// Dirty reports whether there are unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (e *Editor) MarkSaved() {
	e.dirty = false
}

// Payload returns the current document in wire form for submission.
func (e *Editor) Payload() *models.ContentPayload {
	p := e.content
	return &p
}

// Skills returns the current skill list in order.
func (e *Editor) Skills() []string {
	out := make([]string, len(e.skills))
	copy(out, e.skills)
	return out
}

// Projects returns the current project list in order.
func (e *Editor) Projects() []models.Project {
	out := make([]models.Project, len(e.projects))
	copy(out, e.projects)
	return out
}

func (e *Editor) SetHeroTitle(v string) { e.content.HeroTitle = v; e.dirty = true }

func (e *Editor) SetHeroSubtitle(v string) { e.content.HeroSubtitle = v; e.dirty = true }

func (e *Editor) SetHeroDescription(v string) { e.content.HeroDescription = v; e.dirty = true }

func (e *Editor) SetAboutText(v string) { e.content.AboutText = v; e.dirty = true }

// SetProfileImage accepts a URL or an embedded image data URI.
func (e *Editor) SetProfileImage(v string) {
	e.content.ProfileImage = v
	e.dirty = true
}

func (e *Editor) syncSkills() {
	skills := e.skills
	if skills == nil {
		skills = []string{}
	}
	encoded, _ := json.Marshal(skills)
	e.content.SkillsList = string(encoded)
	e.dirty = true
}

func (e *Editor) syncProjects() {
	projects := e.projects
	if projects == nil {
		projects = []models.Project{}
	}
	encoded, _ := json.Marshal(projects)
	e.content.ProjectsList = string(encoded)
	e.dirty = true
}
