package editor

import "strings"

// AddSkill appends a skill. Duplicates are rejected case-sensitively, same as
// the admin panel's list editor.
func (e *Editor) AddSkill(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptySkill
	}
	for _, s := range e.skills {
		if s == name {
			return ErrDuplicateSkill
		}
	}

	e.skills = append(e.skills, name)
	e.syncSkills()
	return nil
}

// RemoveSkill deletes the skill at index, preserving the relative order of
// the rest.
func (e *Editor) RemoveSkill(index int) error {
	if index < 0 || index >= len(e.skills) {
		return ErrIndexOutOfRange
	}

	e.skills = append(e.skills[:index], e.skills[index+1:]...)
	e.syncSkills()
	return nil
}

// MoveSkill moves the skill at from to position to. Out-of-range targets are
// clamped to the list bounds so the up/down buttons at the edges are no-ops.
func (e *Editor) MoveSkill(from, to int) error {
	if from < 0 || from >= len(e.skills) {
		return ErrIndexOutOfRange
	}
	if to < 0 {
		to = 0
	}
	if to >= len(e.skills) {
		to = len(e.skills) - 1
	}
	if from == to {
		return nil
	}

	skill := e.skills[from]
	e.skills = append(e.skills[:from], e.skills[from+1:]...)
	e.skills = append(e.skills[:to], append([]string{skill}, e.skills[to:]...)...)
	e.syncSkills()
	return nil
}
