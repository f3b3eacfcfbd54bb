package seedmodels

// SeedTopic defines the structure for a topic item in the JSON seed file.
type SeedTopic struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}
