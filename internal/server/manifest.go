package server

// typeRef names an entity type in manifest and candidate payloads.
type typeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var movieType = typeRef{ID: "movie", Name: "Movie"}

type manifestView struct {
	URL string `json:"url"`
}

type suggestEndpoint struct {
	ServiceURL  string `json:"service_url"`
	ServicePath string `json:"service_path"`
}

type manifestSuggest struct {
	Property suggestEndpoint `json:"property"`
}

type manifestExtend struct {
	ProposeProperties suggestEndpoint `json:"propose_properties"`
	PropertySettings  []any           `json:"property_settings"`
}

type propertyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// manifest is the service descriptor returned by the registration
// handshake. identifierSpace and schemaSpace are required by OpenRefine
// 3.1+; without them the client silently drops extension support.
type manifest struct {
	Name            string          `json:"name"`
	DefaultTypes    []typeRef       `json:"defaultTypes"`
	IdentifierSpace string          `json:"identifierSpace"`
	SchemaSpace     string          `json:"schemaSpace"`
	View            manifestView    `json:"view"`
	Suggest         manifestSuggest `json:"suggest"`
	Properties      []propertyRef   `json:"properties"`
	Extend          manifestExtend  `json:"extend"`
}

// reconcileInputProperties are the hints the reconcile endpoint accepts to
// refine matching. These are distinct from the extension registry.
var reconcileInputProperties = []propertyRef{
	{ID: "year", Name: "Year"},
	{ID: "director", Name: "Director"},
	{ID: "country", Name: "Country"},
}

func buildManifest(baseURL string) manifest {
	return manifest{
		Name:            "TMDB Movie Reconciliation",
		DefaultTypes:    []typeRef{movieType},
		IdentifierSpace: "https://www.themoviedb.org/movie/",
		SchemaSpace:     "https://www.themoviedb.org/documentation/api",
		View:            manifestView{URL: "https://www.themoviedb.org/movie/{{id}}"},
		Suggest: manifestSuggest{
			Property: suggestEndpoint{
				ServiceURL:  baseURL,
				ServicePath: "/suggest/properties",
			},
		},
		Properties: reconcileInputProperties,
		Extend: manifestExtend{
			ProposeProperties: suggestEndpoint{
				ServiceURL:  baseURL,
				ServicePath: "/propose_properties",
			},
			PropertySettings: []any{},
		},
	}
}
