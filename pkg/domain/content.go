package domain

import (
	"fmt"
	"time"
)

// ContentType represents the kind of content in the library
type ContentType string

// closed set of content types, unknown values are rejected at ingestion
const (
	ContentMovie       ContentType = "movie"
	ContentShow        ContentType = "show"
	ContentDocumentary ContentType = "documentary"
	ContentSports      ContentType = "sports"
	ContentNews        ContentType = "news"
	ContentMusic       ContentType = "music"
	ContentKids        ContentType = "kids"
	ContentGaming      ContentType = "gaming"
)

// ContentTypes lists all valid content types in enumeration order
var ContentTypes = []ContentType{
	ContentMovie, ContentShow, ContentDocumentary, ContentSports,
	ContentNews, ContentMusic, ContentKids, ContentGaming,
}

// ParseContentType validates a raw string against the closed content type set
func ParseContentType(s string) (ContentType, error) {
	for _, ct := range ContentTypes {
		if string(ct) == s {
			return ct, nil
		}
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

// Index returns the position of the content type in the enumeration, -1 if unknown
func (c ContentType) Index() int {
	for i, ct := range ContentTypes {
		if ct == c {
			return i
		}
	}
	return -1
}

// Genre represents a content genre from a fixed set
type Genre string

// closed set of genres used for embedding and preference tracking
const (
	GenreAction      Genre = "action"
	GenreAdventure   Genre = "adventure"
	GenreAnimation   Genre = "animation"
	GenreComedy      Genre = "comedy"
	GenreCrime       Genre = "crime"
	GenreDocumentary Genre = "documentary"
	GenreDrama       Genre = "drama"
	GenreFamily      Genre = "family"
	GenreFantasy     Genre = "fantasy"
	GenreHorror      Genre = "horror"
	GenreMystery     Genre = "mystery"
	GenreRomance     Genre = "romance"
	GenreSciFi       Genre = "scifi"
	GenreThriller    Genre = "thriller"
)

// Genres lists all valid genres in enumeration order
var Genres = []Genre{
	GenreAction, GenreAdventure, GenreAnimation, GenreComedy, GenreCrime,
	GenreDocumentary, GenreDrama, GenreFamily, GenreFantasy, GenreHorror,
	GenreMystery, GenreRomance, GenreSciFi, GenreThriller,
}

// ParseGenre validates a raw string against the closed genre set
func ParseGenre(s string) (Genre, error) {
	for _, g := range Genres {
		if string(g) == s {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown genre %q", s)
}

// Index returns the position of the genre in the enumeration, -1 if unknown
func (g Genre) Index() int {
	for i, gg := range Genres {
		if gg == g {
			return i
		}
	}
	return -1
}

// ContentItem represents a single piece of content from the catalog.
// Items are ingested by reference from an external content source and
// never mutated by the learning core, except for refreshed popularity
// and rating on re-ingestion.
type ContentItem struct {
	ID           string      `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	Type         ContentType `json:"type" db:"type"`
	Genres       []Genre     `json:"genres"`
	Duration     int         `json:"duration" db:"duration"` // minutes, 0 if unknown
	ReleaseYear  int         `json:"release_year" db:"release_year"`
	Rating       float64     `json:"rating" db:"rating"`         // 0-10, 0 if unknown
	Popularity   float64     `json:"popularity" db:"popularity"` // 0-100, 0 if unknown
	Description  string      `json:"description,omitempty" db:"description"`
	Keywords     []string    `json:"keywords,omitempty"`
	LaunchTarget string      `json:"launch_target,omitempty" db:"launch_target"` // app/deep-link identifier
	AddedAt      time.Time   `json:"added_at,omitempty" db:"added_at"`
}

// HasGenre reports whether the item carries the given genre
func (c *ContentItem) HasGenre(g Genre) bool {
	for _, cg := range c.Genres {
		if cg == g {
			return true
		}
	}
	return false
}

// RatingOrDefault returns the item rating, defaulting to 5 when absent
func (c *ContentItem) RatingOrDefault() float64 {
	if c.Rating <= 0 {
		return 5
	}
	return c.Rating
}

// PopularityOrDefault returns the item popularity, defaulting to 50 when absent
func (c *ContentItem) PopularityOrDefault() float64 {
	if c.Popularity <= 0 {
		return 50
	}
	return c.Popularity
}
