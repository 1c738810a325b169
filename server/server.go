package server

import (
	"os"
)

type Server struct {
	DefaultPort string
}

// Run starts the given runner on the PORT env var, the configured default
// port, or 8080, in that order.
func (s *Server) Run(runner interface{ Run(addr ...string) error }) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = s.DefaultPort
	}
	if port == "" {
		port = "8080"
	}
	return runner.Run(":" + port)
}
