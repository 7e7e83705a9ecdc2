package types

// Place is a geocoded city resolved from a search
type Place struct {
	Name        string
	Country     string
	Coordinates Coords
}

// DisplayName returns "<name>, <country>", or just the name when the country is unknown
func (p Place) DisplayName() string {
	if p.Country == "" {
		return p.Name
	}
	return p.Name + ", " + p.Country
}
