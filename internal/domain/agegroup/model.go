package agegroup

// AgeGroup partitions teams by age bracket, e.g. "U12" or "Open".
type AgeGroup struct {
	ID   int64
	Name string
}
