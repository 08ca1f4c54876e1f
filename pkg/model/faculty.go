package model

// Faculty is a teaching staff record. Availability is free-text slot
// preferences carried through from ingestion; the conflict search does
// not enforce it.
type Faculty struct {
	Name         string `csv:"Name"`
	Department   string `csv:"Department"`
	Availability string `csv:"Availability"`
}
