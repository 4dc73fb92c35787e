package model

// Character is a Marvel character as stored in the characters collection.
// Comics holds the raw references; CharacterDetail replaces them with resolved records.
type Character struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Subtitle    string     `json:"subtitle,omitempty"`
	Gender      string     `json:"gender,omitempty"`
	Description string     `json:"description,omitempty"`
	Wiki        Wiki       `json:"wiki"`
	Comics      []ComicRef `json:"comics,omitempty"`
}

// Wiki carries the free-form attributes scraped from the character wiki.
// Debut and Origin are comma-joined in storage and are split by normalization.
type Wiki struct {
	RealName     string   `json:"real_name,omitempty"`
	Alias        string   `json:"alias,omitempty"`
	Occupation   string   `json:"occupation,omitempty"`
	PlaceOfBirth string   `json:"place_of_birth,omitempty"`
	Groups       string   `json:"groups,omitempty"`
	Relatives    string   `json:"relatives,omitempty"`
	Hair         string   `json:"hair,omitempty"`
	Powers       string   `json:"powers,omitempty"`
	Abilities    string   `json:"abilities,omitempty"`
	Universe     string   `json:"universe,omitempty"`
	Debut        []string `json:"debut,omitempty"`
	Origin       []string `json:"origin,omitempty"`
}

// ComicRef points from a character to a comic. An ID <= 0 means there is no linkable comic.
type ComicRef struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	ResourceURI string `json:"resourceURI,omitempty"`
}

// CharacterDetail is a character with one page of its comic appearances resolved.
type CharacterDetail struct {
	Character
	Comics      []Comic `json:"comics"`
	ComicsTotal int     `json:"comics_total"`
	Page        int     `json:"page"`
	ImageURL    string  `json:"image_url,omitempty"`
}
