package dhskernel

const (
	BackendBacktrack = "backtrack"
	BackendSAT       = "sat"

	WBoundSquare = "square"
	WBoundDegree = "degree"
)

type Config struct {
	LogLevel        string `json:"logLevel,omitempty"`
	VerifyCrown     bool   `json:"verifyCrown,omitempty"`
	CheckInvariants bool   `json:"checkInvariants,omitempty"`
	Backend         string `json:"backend,omitempty"`
	WBound          string `json:"wBound,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Backend:  BackendBacktrack,
		WBound:   WBoundSquare,
	}
}
