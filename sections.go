package planner

import (
	"strings"
	"time"
)

// Section is a named checklist category (e.g. Venue, Catering) owning an
// ordered list of tasks. Built-in sections are seeded at first run;
// user-added ones carry IsCustom and can be removed again.
type Section struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Tasks    []Task `json:"tasks"`
	IsCustom bool   `json:"isCustom"`
}

// Task is a single checklist item. A task belongs to exactly one section
// and disappears with it.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskPatch is a partial update for a task; nil fields are left untouched.
type TaskPatch struct {
	Text      *string
	Completed *bool
}

// Section returns the section with the given id, or nil.
func (d *Document) Section(id string) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// SectionByName returns the first section with the given name, or nil.
// Names are compared case-insensitively to keep the CLI forgiving.
func (d *Document) SectionByName(name string) *Section {
	for i := range d.Sections {
		if strings.EqualFold(d.Sections[i].Name, name) {
			return &d.Sections[i]
		}
	}
	return nil
}

// AddSection appends a new custom section with an empty task list.
func (d *Document) AddSection(name string) (*Section, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationf("section name cannot be empty")
	}
	d.Sections = append(d.Sections, Section{
		ID:       newID(),
		Name:     name,
		Tasks:    []Task{},
		IsCustom: true,
	})
	return &d.Sections[len(d.Sections)-1], nil
}

// RemoveSection removes a custom section and all its tasks. A missing id
// is a no-op; a built-in section is refused.
func (d *Document) RemoveSection(id string) error {
	for i := range d.Sections {
		if d.Sections[i].ID != id {
			continue
		}
		if !d.Sections[i].IsCustom {
			return validationf("section %q is built-in and cannot be removed", d.Sections[i].Name)
		}
		d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
		return nil
	}
	return nil
}

// AddTask appends a new open task to the given section.
func (d *Document) AddTask(sectionID, text string) (*Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, validationf("task text cannot be empty")
	}
	sec := d.Section(sectionID)
	if sec == nil {
		return nil, &NotFoundError{Kind: "section", ID: sectionID}
	}
	sec.Tasks = append(sec.Tasks, Task{
		ID:        newID(),
		Text:      text,
		CreatedAt: time.Now(),
	})
	return &sec.Tasks[len(sec.Tasks)-1], nil
}

// ToggleTask flips a task's completion flag. Missing section or task ids
// are silent no-ops: the UI stays forgiving when a stale id comes in.
func (d *Document) ToggleTask(sectionID, taskID string) {
	t := d.task(sectionID, taskID)
	if t == nil {
		return
	}
	t.Completed = !t.Completed
}

// UpdateTask patch-merges into an existing task. A missing target is a
// silent no-op.
func (d *Document) UpdateTask(sectionID, taskID string, patch TaskPatch) error {
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return validationf("task text cannot be empty")
	}
	t := d.task(sectionID, taskID)
	if t == nil {
		return nil
	}
	if patch.Text != nil {
		t.Text = strings.TrimSpace(*patch.Text)
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	return nil
}

// DeleteTask removes a task from its owning section. Missing ids are a
// silent no-op.
func (d *Document) DeleteTask(sectionID, taskID string) {
	sec := d.Section(sectionID)
	if sec == nil {
		return
	}
	for i := range sec.Tasks {
		if sec.Tasks[i].ID == taskID {
			sec.Tasks = append(sec.Tasks[:i], sec.Tasks[i+1:]...)
			return
		}
	}
}

func (d *Document) task(sectionID, taskID string) *Task {
	sec := d.Section(sectionID)
	if sec == nil {
		return nil
	}
	for i := range sec.Tasks {
		if sec.Tasks[i].ID == taskID {
			return &sec.Tasks[i]
		}
	}
	return nil
}
