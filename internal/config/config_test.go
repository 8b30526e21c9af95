package config

import "testing"

func TestInterviewLink(t *testing.T) {
	cases := []struct {
		base string
		id   string
		want string
	}{
		{"http://localhost:3000", "abc", "http://localhost:3000/interview/abc"},
		{"https://hire.example.com/", "abc", "https://hire.example.com/interview/abc"},
	}
	for _, tc := range cases {
		c := &Config{BaseURL: tc.base}
		if got := c.InterviewLink(tc.id); got != tc.want {
			t.Errorf("InterviewLink(%q, %q) = %q, want %q", tc.base, tc.id, got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:     "development",
			Port:    8080,
			BaseURL: "http://localhost:3000",
			DB:      DBConfig{DSN: "postgres://localhost/nexthire", MaxOpenConns: 20},
			CORS:    CORSConfig{TrustedOrigins: []string{"http://localhost:3000"}},
			JWT:     JWTConfig{Secret: "0123456789abcdef0123456789abcdef"},
			Groq:    GroqConfig{APIKey: "key", Timeout: 1},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	broken := []func(*Config){
		func(c *Config) { c.Env = "prod" },
		func(c *Config) { c.Port = 0 },
		func(c *Config) { c.BaseURL = "localhost:3000" },
		func(c *Config) { c.JWT.Secret = "short" },
		func(c *Config) { c.Groq.Timeout = 0 },
		func(c *Config) { c.CORS.TrustedOrigins = nil },
	}
	for i, mutate := range broken {
		c := valid()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
