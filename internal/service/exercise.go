package service

import (
	"strings"

	"github.com/google/uuid"

	"github.com/achrafi04/fitlog/internal/model"
)

const slugMaxLen = 24

// AddExercise appends a new exercise to the library. The id is a slug of the
// name plus a random token so repeated names never collide. A blank name
// leaves the state unchanged.
func AddExercise(s model.State, name, musclesCSV, imageURL string) model.State {
	name = strings.TrimSpace(name)
	if name == "" {
		return s
	}

	exercises := make([]model.Exercise, len(s.Exercises))
	copy(exercises, s.Exercises)
	exercises = append(exercises, model.Exercise{
		ID:       slugID(name),
		Name:     name,
		Muscles:  splitMuscles(musclesCSV),
		ImageURL: strings.TrimSpace(imageURL),
	})
	s.Exercises = exercises
	return s
}

// UpdateExerciseImage sets (or clears, when url is empty) the image of the
// exercise with the given id. Unknown ids are ignored.
func UpdateExerciseImage(s model.State, id, url string) model.State {
	found := false
	for i := range s.Exercises {
		if s.Exercises[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return s
	}

	exercises := make([]model.Exercise, len(s.Exercises))
	copy(exercises, s.Exercises)
	for i := range exercises {
		if exercises[i].ID == id {
			exercises[i].ImageURL = strings.TrimSpace(url)
			break
		}
	}
	s.Exercises = exercises
	return s
}

// slugID lowercases the name, collapses non-alphanumeric runs to single
// underscores, truncates, and appends a random token for uniqueness.
func slugID(name string) string {
	var b strings.Builder
	lastSep := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSep = false
		default:
			if !lastSep {
				b.WriteByte('_')
				lastSep = true
			}
		}
	}
	slug := strings.Trim(b.String(), "_")
	if len(slug) > slugMaxLen {
		slug = strings.Trim(slug[:slugMaxLen], "_")
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if slug == "" {
		return token
	}
	return slug + "_" + token
}

func splitMuscles(csv string) []string {
	muscles := make([]string, 0)
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part != "" {
			muscles = append(muscles, part)
		}
	}
	return muscles
}
