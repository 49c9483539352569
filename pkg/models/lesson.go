package models

// VisualType describes how a slide should be presented
type VisualType string

const (
	// VisualChart renders a bar chart from the slide's data points
	VisualChart VisualType = "chart"
	// VisualText is a plain text slide
	VisualText VisualType = "text"
	// VisualCalculation shows a worked calculation
	VisualCalculation VisualType = "calculation"
	// VisualGeometry shows a geometric figure
	VisualGeometry VisualType = "geometry"
)

// ChartPoint is a single labeled value for chart slides
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Slide is one step of a lesson
type Slide struct {
	Title      string       `json:"title"`
	Content    string       `json:"content"`
	VisualType VisualType   `json:"visualType"`
	VisualData []ChartPoint `json:"visualData,omitempty"`
}

// LessonContent is an ordered sequence of slides for one standard.
// Immutable once fetched; scoped to a single lesson session.
type LessonContent struct {
	Slides []Slide `json:"slides"`
}
