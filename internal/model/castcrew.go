package model

// Cast and crew live in the document store and are display-only; they never
// participate in search ranking or rating aggregation.

type CastMember struct {
	Name      string
	Character string
}

type CrewMember struct {
	Name       string
	Job        string
	Department string
}
