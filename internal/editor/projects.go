package editor

import (
	"errors"
	"strings"

	"github.com/skaran/portfolio/internal/models"
)

var ErrProjectIncomplete = errors.New("project needs at least a title and description")

// ProjectForm is a project as edited in the admin panel: technologies are a
// single comma-separated string until the record is saved.
type ProjectForm struct {
	Title        string
	Description  string
	Image        string
	Technologies string
	GithubURL    string
	DemoURL      string
}

func (f *ProjectForm) project() models.Project {
	return models.Project{
		Title:        f.Title,
		Description:  f.Description,
		Image:        f.Image,
		Technologies: splitTechnologies(f.Technologies),
		GithubURL:    f.GithubURL,
		DemoURL:      f.DemoURL,
	}
}

// AddProject appends a project from the form.
func (e *Editor) AddProject(form ProjectForm) error {
	if form.Title == "" || form.Description == "" {
		return ErrProjectIncomplete
	}

	e.projects = append(e.projects, form.project())
	e.syncProjects()
	return nil
}

// UpdateProject replaces the project at index with the edited form.
func (e *Editor) UpdateProject(index int, form ProjectForm) error {
	if index < 0 || index >= len(e.projects) {
		return ErrIndexOutOfRange
	}
	if form.Title == "" || form.Description == "" {
		return ErrProjectIncomplete
	}

	e.projects[index] = form.project()
	e.syncProjects()
	return nil
}

// RemoveProject deletes the project at index.
func (e *Editor) RemoveProject(index int) error {
	if index < 0 || index >= len(e.projects) {
		return ErrIndexOutOfRange
	}

	e.projects = append(e.projects[:index], e.projects[index+1:]...)
	e.syncProjects()
	return nil
}

// EditForm returns the project at index as a form, joining technologies back
// into the comma-separated editing representation.
func (e *Editor) EditForm(index int) (ProjectForm, error) {
	if index < 0 || index >= len(e.projects) {
		return ProjectForm{}, ErrIndexOutOfRange
	}

	p := e.projects[index]
	return ProjectForm{
		Title:        p.Title,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: strings.Join(p.Technologies, ", "),
		GithubURL:    p.GithubURL,
		DemoURL:      p.DemoURL,
	}, nil
}

func splitTechnologies(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	techs := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			techs = append(techs, t)
		}
	}
	return techs
}
