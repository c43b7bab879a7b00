package models

type Movie struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     string `json:"year"`
	Color    string `json:"color"`
	Duration int    `json:"duration"`
}

// MoviePayload is the body accepted by create and update. Every field is
// required; the id always comes from the store or the path.
type MoviePayload struct {
	Title    string `json:"title" validate:"required"`
	Director string `json:"director" validate:"required"`
	Year     string `json:"year" validate:"required"`
	Color    string `json:"color" validate:"required"`
	Duration int    `json:"duration" validate:"required,min=1,max=2147483647"`
}

func (p MoviePayload) Movie(id int) Movie {
	return Movie{
		ID:       id,
		Title:    p.Title,
		Director: p.Director,
		Year:     p.Year,
		Color:    p.Color,
		Duration: p.Duration,
	}
}
