package model

type VoiceSummary struct {
	Name       string  `json:"name"`
	EventCount int     `json:"event_count"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
}

type ScoreSummary struct {
	RenderID string         `json:"render_id"`
	Title    string         `json:"title"`
	Composer string         `json:"composer"`
	Seed     int64          `json:"seed"`
	Voices   []VoiceSummary `json:"voices"`
	Tempos   []TempoMarker  `json:"tempos"`
}

type RenderRequestBody struct {
	Seed int64 `json:"seed"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
