package model

// Comic is a comic issue as stored in the comics collection.
type Comic struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	IssueNumber float64        `json:"issueNumber"`
	Description string         `json:"description,omitempty"`
	Creators    []CreatorRef   `json:"creators,omitempty"`
	Characters  []CharacterRef `json:"characters,omitempty"`
}

// CreatorRef names a creator credited on a comic.
type CreatorRef struct {
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	ResourceURI string `json:"resourceURI,omitempty"`
}

// CharacterRef points from a comic to a character. The last path segment of
// ResourceURI is the character id.
type CharacterRef struct {
	Name        string `json:"name,omitempty"`
	ResourceURI string `json:"resourceURI"`
}

// ComicDetail is a comic with every character appearing in it, sorted by name.
type ComicDetail struct {
	Comic
	Characters []Character `json:"characters"`
	ImageURL   string      `json:"image_url,omitempty"`
}
