package exam

// FilterByDifficulty returns the questions eligible for the selected
// difficulty, preserving relative order. Random means any difficulty;
// questions without a tag count as normal.
func FilterByDifficulty(questions []Question, difficulty Difficulty) []Question {
	if difficulty == DifficultyRandom {
		return questions
	}
	var out []Question
	for _, q := range questions {
		d := q.Difficulty
		if d == "" {
			d = DifficultyNormal
		}
		if d == difficulty {
			out = append(out, q)
		}
	}
	return out
}
