package ctdf

type Stop struct {
	ID   string `json:"id" groups:"basic"`
	Name string `json:"name" groups:"basic"`

	Latitude  float64 `json:"latitude" groups:"detailed"`
	Longitude float64 `json:"longitude" groups:"detailed"`
}

func (s *Stop) Reference() StopReference {
	return StopReference{
		ID:   s.ID,
		Name: s.Name,
	}
}

type StopReference struct {
	ID   string `json:"id" groups:"basic"`
	Name string `json:"name" groups:"basic"`
}
