package config

const (
	defaultServiceBind    = "127.0.0.1:8310"
	defaultServiceBaseURL = "http://127.0.0.1:8310"
	defaultTMDBBaseURL    = "https://api.themoviedb.org/3"
	defaultTMDBLanguage   = "en-US"
	defaultTMDBTimeout    = 10
	defaultMaxCandidates  = 10
	defaultFetchWorkers   = 4
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Service: Service{
			Bind:    defaultServiceBind,
			BaseURL: defaultServiceBaseURL,
		},
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			Language:       defaultTMDBLanguage,
			RequestTimeout: defaultTMDBTimeout,
		},
		Reconcile: Reconcile{
			MaxCandidates: defaultMaxCandidates,
			FetchWorkers:  defaultFetchWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
