package places

import "context"

// Place is a point of interest on the map. Coordinates are kept as the text
// the admin entered; they are never parsed numerically.
type Place struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Lat         string  `json:"lat"`
	Lng         string  `json:"lng"`
	Description *string `json:"description"`
}

type Store interface {
	Create(ctx context.Context, place *Place) error
	List(ctx context.Context) ([]Place, error)
	GetByID(ctx context.Context, placeID int64) (*Place, error)
	Exists(ctx context.Context, placeID int64) (bool, error)
	// Delete removes the place together with its reviews and their photos.
	// Callers that need atomicity run it inside storage.Container.WithTx.
	Delete(ctx context.Context, placeID int64) error
}
