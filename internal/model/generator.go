package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Uppercase        *bool `json:"uppercase"`
	Lowercase        *bool `json:"lowercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`
}

// CommandRequest carries a text generation command such as
// "/pass 20 --symbols --no-ambiguous".
type CommandRequest struct {
	Command string `json:"command"`
}

// GenerateResponse represents a password generation response. Everything
// besides the password itself is metadata safe to log.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	PoolSize    int     `json:"pool_size"`
	EntropyBits float64 `json:"entropy_bits"`
	Strength    string  `json:"strength"`
}

// PolicyResponse describes the generation constraints the server enforces.
type PolicyResponse struct {
	DefaultLength      int `json:"default_length"`
	MinLength          int `json:"min_length"`
	MaxLength          int `json:"max_length"`
	RateLimitPerMinute int `json:"rate_limit_per_minute"`
}
