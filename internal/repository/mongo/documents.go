package mongo

import "marvelapi/internal/model"

type characterDocument struct {
	ID          int          `bson:"id"`
	Name        string       `bson:"name"`
	Gender      string       `bson:"gender,omitempty"`
	Description string       `bson:"description,omitempty"`
	Wiki        wikiDocument `bson:"wiki"`
	Comics      struct {
		Items []comicRefDocument `bson:"items"`
	} `bson:"comics"`
}

type wikiDocument struct {
	RealName     string `bson:"real_name,omitempty"`
	Alias        string `bson:"alias,omitempty"`
	Occupation   string `bson:"occupation,omitempty"`
	PlaceOfBirth string `bson:"place_of_birth,omitempty"`
	Groups       string `bson:"groups,omitempty"`
	Relatives    string `bson:"relatives,omitempty"`
	Hair         string `bson:"hair,omitempty"`
	Powers       string `bson:"powers,omitempty"`
	Abilities    string `bson:"abilities,omitempty"`
	Universe     string `bson:"universe,omitempty"`
	Debut        string `bson:"debut,omitempty"`
	Origin       string `bson:"origin,omitempty"`
}

type comicRefDocument struct {
	ID          int    `bson:"id"`
	Name        string `bson:"name,omitempty"`
	ResourceURI string `bson:"resourceURI,omitempty"`
}

type comicDocument struct {
	ID          int     `bson:"id"`
	Title       string  `bson:"title"`
	IssueNumber float64 `bson:"issueNumber"`
	Description string  `bson:"description,omitempty"`
	Creators    struct {
		Items []creatorDocument `bson:"items"`
	} `bson:"creators"`
	Characters struct {
		Items []characterRefDocument `bson:"items"`
	} `bson:"characters"`
}

type creatorDocument struct {
	Name        string `bson:"name"`
	Role        string `bson:"role,omitempty"`
	ResourceURI string `bson:"resourceURI,omitempty"`
}

type characterRefDocument struct {
	Name        string `bson:"name,omitempty"`
	ResourceURI string `bson:"resourceURI"`
}

func (doc characterDocument) toModel() model.Character {
	c := model.Character{
		ID:          doc.ID,
		Name:        doc.Name,
		Gender:      doc.Gender,
		Description: doc.Description,
		Wiki: model.Wiki{
			RealName:     doc.Wiki.RealName,
			Alias:        doc.Wiki.Alias,
			Occupation:   doc.Wiki.Occupation,
			PlaceOfBirth: doc.Wiki.PlaceOfBirth,
			Groups:       doc.Wiki.Groups,
			Relatives:    doc.Wiki.Relatives,
			Hair:         doc.Wiki.Hair,
			Powers:       doc.Wiki.Powers,
			Abilities:    doc.Wiki.Abilities,
			Universe:     doc.Wiki.Universe,
			Debut:        single(doc.Wiki.Debut),
			Origin:       single(doc.Wiki.Origin),
		},
	}
	for _, item := range doc.Comics.Items {
		c.Comics = append(c.Comics, model.ComicRef{ID: item.ID, Name: item.Name, ResourceURI: item.ResourceURI})
	}
	return c
}

func (doc comicDocument) toModel() model.Comic {
	c := model.Comic{
		ID:          doc.ID,
		Title:       doc.Title,
		IssueNumber: doc.IssueNumber,
		Description: doc.Description,
	}
	for _, item := range doc.Creators.Items {
		c.Creators = append(c.Creators, model.CreatorRef{Name: item.Name, Role: item.Role, ResourceURI: item.ResourceURI})
	}
	for _, item := range doc.Characters.Items {
		c.Characters = append(c.Characters, model.CharacterRef{Name: item.Name, ResourceURI: item.ResourceURI})
	}
	return c
}

func single(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
