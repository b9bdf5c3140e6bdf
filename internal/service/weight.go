package service

import (
	"math"
	"sort"

	"github.com/achrafi04/fitlog/internal/model"
)

// LogBodyweight upserts the reading for date (YYYY-MM-DD), keeping at most
// one entry per calendar date with the later value winning. Weights are
// rounded to one decimal. Non-positive or non-finite input leaves the state
// unchanged.
func LogBodyweight(s model.State, kg float64, date string) model.State {
	if kg <= 0 || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return s
	}
	kg = math.Round(kg*10) / 10

	entries := make([]model.WeightLog, len(s.Bodyweight))
	copy(entries, s.Bodyweight)

	replaced := false
	for i := range entries {
		if entries[i].Date == date {
			entries[i].WeightKg = kg
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, model.WeightLog{Date: date, WeightKg: kg})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })

	s.Bodyweight = entries
	return s
}
