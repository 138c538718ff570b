package domain

// MetadataFilter contains filtering/pagination parameters for metadata queries.
type MetadataFilter struct {
	Status    *ReviewStatus
	Search    *string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}
