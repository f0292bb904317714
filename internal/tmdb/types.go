package tmdb

// SearchResult represents a single TMDB movie search match.
type SearchResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	Popularity  float64 `json:"popularity"`
}

// SearchResponse models the TMDB paginated search response.
type SearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre is a TMDB genre reference.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProductionCountry carries the ISO 3166-1 code TMDB uses as the stable
// country identifier.
type ProductionCountry struct {
	ISOCode string `json:"iso_3166_1"`
	Name    string `json:"name"`
}

// ProductionCompany is a TMDB production company reference.
type ProductionCompany struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CastMember is one entry in a movie's billed cast. Order is a pointer so a
// missing billing position can be distinguished from position zero.
type CastMember struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

// CrewMember is one entry in a movie's crew listing.
type CrewMember struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits bundles the cast and crew listings embedded in a detail response.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the full movie record returned by /movie/{id} with
// credits appended. VoteAverage and Popularity are pointers because zero is
// a legitimate value for both and must be distinguishable from absence.
type MovieDetails struct {
	ID                  int64               `json:"id"`
	Title               string              `json:"title"`
	OriginalTitle       string              `json:"original_title"`
	OriginalLanguage    string              `json:"original_language"`
	ReleaseDate         string              `json:"release_date"`
	Tagline             string              `json:"tagline"`
	Overview            string              `json:"overview"`
	Status              string              `json:"status"`
	Homepage            string              `json:"homepage"`
	IMDbID              string              `json:"imdb_id"`
	Runtime             int64               `json:"runtime"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	VoteCount           int64               `json:"vote_count"`
	VoteAverage         *float64            `json:"vote_average"`
	Popularity          *float64            `json:"popularity"`
	Genres              []Genre             `json:"genres"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	Credits             Credits             `json:"credits"`
}
