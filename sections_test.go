package planner

import (
	"errors"
	"testing"
)

func TestAddSection(t *testing.T) {
	doc := DefaultDocument()

	sec, err := doc.AddSection("  Luna de miel  ")
	if err != nil {
		t.Fatalf("AddSection() error: %v", err)
	}
	if sec.Name != "Luna de miel" {
		t.Errorf("name = %q, want trimmed %q", sec.Name, "Luna de miel")
	}
	if !sec.IsCustom {
		t.Errorf("added section must be custom")
	}
	if len(sec.Tasks) != 0 {
		t.Errorf("added section must start with no tasks")
	}

	for _, blank := range []string{"", "   ", "\t"} {
		if _, err := doc.AddSection(blank); err == nil {
			t.Errorf("AddSection(%q) accepted a blank name", blank)
		} else {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("AddSection(%q) = %v, want *ValidationError", blank, err)
			}
		}
	}
}

func TestRemoveSectionCascadesTasks(t *testing.T) {
	doc, secID := testDocument()
	for _, text := range []string{"contratar DJ", "armar playlist", "probar sonido"} {
		if _, err := doc.AddTask(secID, text); err != nil {
			t.Fatalf("AddTask(%q) error: %v", text, err)
		}
	}
	doc.ToggleTask(secID, doc.Section(secID).Tasks[0].ID)

	before := TaskProgress(doc.Sections)
	if err := doc.RemoveSection(secID); err != nil {
		t.Fatalf("RemoveSection() error: %v", err)
	}
	after := TaskProgress(doc.Sections)

	if doc.Section(secID) != nil {
		t.Fatalf("section still present after removal")
	}
	if got, want := before.Total-after.Total, 3; got != want {
		t.Errorf("progress total shrank by %d tasks, want %d", got, want)
	}
}

func TestRemoveSectionEdgeCases(t *testing.T) {
	doc, _ := testDocument()
	count := len(doc.Sections)

	// unknown id is a no-op, not an error
	if err := doc.RemoveSection("no-such-id"); err != nil {
		t.Errorf("RemoveSection(unknown) = %v, want nil", err)
	}
	if len(doc.Sections) != count {
		t.Errorf("RemoveSection(unknown) altered the document")
	}

	// built-in sections are not deletable through this path
	builtin := doc.Sections[0]
	err := doc.RemoveSection(builtin.ID)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("RemoveSection(builtin) = %v, want *ValidationError", err)
	}
	if doc.Section(builtin.ID) == nil {
		t.Errorf("built-in section %q was removed", builtin.Name)
	}
}

func TestAddTask(t *testing.T) {
	doc, secID := testDocument()

	task, err := doc.AddTask(secID, "reservar salón")
	if err != nil {
		t.Fatalf("AddTask() error: %v", err)
	}
	if task.Completed {
		t.Errorf("new task must start open")
	}
	if task.CreatedAt.IsZero() {
		t.Errorf("new task has no timestamp")
	}

	if _, err := doc.AddTask(secID, "  "); err == nil {
		t.Errorf("AddTask accepted blank text")
	}

	_, err = doc.AddTask("missing-section", "algo")
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("AddTask(missing section) = %v, want *NotFoundError", err)
	}
}

func TestToggleTask(t *testing.T) {
	doc, secID := testDocument()
	task, err := doc.AddTask(secID, "elegir fotógrafo")
	if err != nil {
		t.Fatal(err)
	}
	taskID := task.ID

	doc.ToggleTask(secID, taskID)
	if !doc.Section(secID).Tasks[0].Completed {
		t.Errorf("first toggle did not complete the task")
	}
	doc.ToggleTask(secID, taskID)
	if doc.Section(secID).Tasks[0].Completed {
		t.Errorf("second toggle did not reopen the task")
	}
}

func TestToggleTaskMissingIsSilent(t *testing.T) {
	doc, secID := testDocument()
	if _, err := doc.AddTask(secID, "algo"); err != nil {
		t.Fatal(err)
	}
	snapshot := TaskProgress(doc.Sections)

	// must not panic nor mutate
	doc.ToggleTask("no-section", "no-task")
	doc.ToggleTask(secID, "no-task")

	if got := TaskProgress(doc.Sections); got != snapshot {
		t.Errorf("toggling missing ids changed progress: %+v != %+v", got, snapshot)
	}
}

func TestUpdateAndDeleteTask(t *testing.T) {
	doc, secID := testDocument()
	task, err := doc.AddTask(secID, "enviar invitaciones")
	if err != nil {
		t.Fatal(err)
	}
	taskID := task.ID

	text := "enviar invitaciones digitales"
	done := true
	if err := doc.UpdateTask(secID, taskID, TaskPatch{Text: &text, Completed: &done}); err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	got := doc.Section(secID).Tasks[0]
	if got.Text != text || !got.Completed {
		t.Errorf("task after patch = %+v", got)
	}

	blank := " "
	if err := doc.UpdateTask(secID, taskID, TaskPatch{Text: &blank}); err == nil {
		t.Errorf("UpdateTask accepted blank text")
	}

	// missing target is a silent no-op
	if err := doc.UpdateTask(secID, "no-task", TaskPatch{Completed: &done}); err != nil {
		t.Errorf("UpdateTask(missing) = %v, want nil", err)
	}

	doc.DeleteTask(secID, taskID)
	if len(doc.Section(secID).Tasks) != 0 {
		t.Errorf("task still present after delete")
	}
	doc.DeleteTask(secID, taskID) // idempotent
}
