package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() *ContentPayload {
	return &ContentPayload{
		HeroTitle:       "Jane Doe",
		HeroSubtitle:    "Developer",
		HeroDescription: "I build things.",
		AboutText:       "About me.",
		SkillsList:      `["Go","SQL"]`,
		ProjectsList:    `[{"title":"CLI","description":"A tool","technologies":["Go"]}]`,
	}
}

func TestContentPayloadValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ContentPayload)
		wantField string
	}{
		{
			name:   "valid payload",
			mutate: func(p *ContentPayload) {},
		},
		{
			name:      "missing hero title",
			mutate:    func(p *ContentPayload) { p.HeroTitle = "  " },
			wantField: "heroTitle",
		},
		{
			name:      "missing about text",
			mutate:    func(p *ContentPayload) { p.AboutText = "" },
			wantField: "aboutText",
		},
		{
			name:      "empty skills list",
			mutate:    func(p *ContentPayload) { p.SkillsList = "" },
			wantField: "skillsList",
		},
		{
			name:      "malformed skills JSON",
			mutate:    func(p *ContentPayload) { p.SkillsList = `["Go",` },
			wantField: "skillsList",
		},
		{
			name:      "skills not an array of strings",
			mutate:    func(p *ContentPayload) { p.SkillsList = `[1,2]` },
			wantField: "skillsList",
		},
		{
			name:      "malformed projects JSON",
			mutate:    func(p *ContentPayload) { p.ProjectsList = `{"title":"x"}` },
			wantField: "projectsList",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(payload)

			errors := payload.Validate()
			if tt.wantField == "" {
				assert.Empty(t, errors)
			} else {
				assert.Contains(t, errors, tt.wantField)
			}
		})
	}
}

func TestContentRoundTrip(t *testing.T) {
	payload := validPayload()
	payload.SkillsList = `["A","B"]`

	content, err := payload.Content()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, content.Skills)

	back := content.Payload()

	var skills []string
	require.NoError(t, json.Unmarshal([]byte(back.SkillsList), &skills))
	assert.Equal(t, []string{"A", "B"}, skills)

	var projects []Project
	require.NoError(t, json.Unmarshal([]byte(back.ProjectsList), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "CLI", projects[0].Title)
}

func TestPayloadEncodesEmptyLists(t *testing.T) {
	content := &PortfolioContent{
		HeroTitle: "x",
	}

	payload := content.Payload()
	assert.Equal(t, "[]", payload.SkillsList)
	assert.Equal(t, "[]", payload.ProjectsList)
}

func TestDefaultContent(t *testing.T) {
	content := DefaultContent()

	require.Empty(t, content.Payload().Validate(), "default content must pass its own validation")
	assert.NotEmpty(t, content.Skills)
	assert.NotEmpty(t, content.Projects)
	assert.Zero(t, content.Version)
}
