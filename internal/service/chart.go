package service

// ChartSlice is the shape handed to whatever draws the distribution
// chart (the terminal renderer today). This package owns only the data
// transformation; drawing, colors and refresh belong to the caller.
type ChartSlice struct {
	Label   string  `json:"label"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

// ChartData converts zero-filled emotion counts into chart slices in the
// same canonical order. Percentages are 0 for an empty data set.
func ChartData(counts []EmotionCount) []ChartSlice {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	slices := make([]ChartSlice, 0, len(counts))
	for _, c := range counts {
		s := ChartSlice{Label: string(c.Emotion), Value: c.Count}
		if total > 0 {
			s.Percent = (float64(c.Count) / float64(total)) * 100
		}
		slices = append(slices, s)
	}
	return slices
}
