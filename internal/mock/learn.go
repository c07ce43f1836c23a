package mock

// ClimateFrame is one step of the Aral Sea timelapse.
type ClimateFrame struct {
	Year       int
	WaterLevel int // percent of 1984 extent
	Label      string
}

// ClimateTimeline returns the five Aral Sea frames, oldest first.
func ClimateTimeline() []ClimateFrame {
	return []ClimateFrame{
		{Year: 1984, WaterLevel: 100, Label: "Peak Extent"},
		{Year: 1994, WaterLevel: 75, Label: "Early Decline"},
		{Year: 2004, WaterLevel: 50, Label: "Split in Two"},
		{Year: 2014, WaterLevel: 25, Label: "Near Collapse"},
		{Year: 2024, WaterLevel: 10, Label: "Almost Gone"},
	}
}

// Question is a multiple-choice quiz question.
type Question struct {
	ID          int
	Prompt      string
	Options     []string
	Correct     int
	Explanation string
}

// QuizQuestions returns the learning-zone quiz.
func QuizQuestions() []Question {
	return []Question{
		{
			ID:     1,
			Prompt: "What type of light do healthy plants reflect strongly?",
			Options: []string{
				"Visible light",
				"Near-Infrared (NIR)",
				"X-rays",
				"Microwaves",
			},
			Correct:     1,
			Explanation: "Healthy plants reflect NIR strongly because of their cellular structure. This is the basis of NDVI vegetation indices.",
		},
		{
			ID:     2,
			Prompt: "What is the main advantage of radar satellites?",
			Options: []string{
				"Higher resolution images",
				"Can see through clouds and darkness",
				"Cheaper to launch",
				"Better color accuracy",
			},
			Correct:     1,
			Explanation: "Radar satellites use their own energy source and can penetrate clouds, making them invaluable for disaster monitoring.",
		},
		{
			ID:     3,
			Prompt: "How often does Landsat photograph the entire Earth?",
			Options: []string{
				"Every day",
				"Every 16 days",
				"Every month",
				"Every year",
			},
			Correct:     1,
			Explanation: "Landsat revisits every point on Earth every 16 days, creating a consistent archive since 1972.",
		},
	}
}
