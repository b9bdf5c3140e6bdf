package service

import "github.com/achrafi04/fitlog/internal/model"

// ToggleChecklistItem flips the checklist value for label. Unknown labels
// are ignored; the key set never changes here.
func ToggleChecklistItem(s model.State, label string) model.State {
	current, ok := s.Nutrition.Checklist[label]
	if !ok {
		return s
	}
	checklist := cloneChecklist(s.Nutrition.Checklist)
	checklist[label] = !current
	s.Nutrition.Checklist = checklist
	return s
}

// SetNutritionNotes replaces the free-form nutrition notes.
func SetNutritionNotes(s model.State, notes string) model.State {
	s.Nutrition.Notes = notes
	return s
}
