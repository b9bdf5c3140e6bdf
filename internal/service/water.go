package service

import "github.com/achrafi04/fitlog/internal/model"

// AddWater adjusts today's intake by ml, which may be negative to undo a
// mistaken log. The total never drops below zero.
func AddWater(s model.State, ml int) model.State {
	total := s.WaterTodayML + ml
	if total < 0 {
		total = 0
	}
	s.WaterTodayML = total
	return s
}

// SetWaterGoal sets the daily goal, floored at MinWaterGoalML.
func SetWaterGoal(s model.State, ml int) model.State {
	if ml < model.MinWaterGoalML {
		ml = model.MinWaterGoalML
	}
	s.WaterGoalML = ml
	return s
}
