package service_test

import (
	"testing"

	"github.com/achrafi04/fitlog/internal/model"
	"github.com/achrafi04/fitlog/internal/service"
)

func TestToggleChecklistItem(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()

	s = service.ToggleChecklistItem(s, "creatine")
	if !s.Nutrition.Checklist["creatine"] {
		t.Fatalf("expected creatine checked")
	}
	s = service.ToggleChecklistItem(s, "creatine")
	if s.Nutrition.Checklist["creatine"] {
		t.Fatalf("expected creatine unchecked after second toggle")
	}
}

func TestToggleChecklistUnknownLabelIsNoop(t *testing.T) {
	t.Parallel()
	s := model.DefaultState()
	out := service.ToggleChecklistItem(s, "no such item")
	if len(out.Nutrition.Checklist) != len(s.Nutrition.Checklist) {
		t.Fatalf("unknown label changed the key set")
	}
	if _, ok := out.Nutrition.Checklist["no such item"]; ok {
		t.Fatalf("unknown label was inserted")
	}
}

func TestSetNutritionNotes(t *testing.T) {
	t.Parallel()
	s := service.SetNutritionNotes(model.DefaultState(), "more protein at breakfast")
	if s.Nutrition.Notes != "more protein at breakfast" {
		t.Fatalf("notes not set: %q", s.Nutrition.Notes)
	}
}
