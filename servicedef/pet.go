// Package servicedef contains the JSON representations used by the pet store API.
package servicedef

const (
	PetStatusAvailable = "available"
	PetStatusPending   = "pending"
	PetStatusSold      = "sold"
)

// Pet is the body of POST /pet, and each element of GET /pet/findByStatus.
type Pet struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name,omitempty"`
	Category  *Category `json:"category,omitempty"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags"`
	Status    string    `json:"status,omitempty"`
}

// PetStatusUpdate is the body of PUT /pet when only the status is being changed.
type PetStatusUpdate struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewPet builds the creation body for a pet: status "available", an empty photo list, and one
// tag per name. The category and every tag get ID 1, as the demo server does not require
// distinct IDs for them.
func NewPet(id int64, name, category string, tags []string) Pet {
	p := Pet{
		ID:        id,
		Name:      name,
		Category:  &Category{ID: 1, Name: category},
		PhotoURLs: []string{},
		Tags:      make([]Tag, 0, len(tags)),
		Status:    PetStatusAvailable,
	}
	for _, t := range tags {
		p.Tags = append(p.Tags, Tag{ID: 1, Name: t})
	}
	return p
}
