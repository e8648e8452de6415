package config

import (
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
)

const (
	// DefaultProgramID is the deployed address of the transfer program
	DefaultProgramID = "2no9gvgnqGsxb9Vdajk93HPRxgux7uy8FxwqpXoj5kUd"
	defaultGRPCAddr  = ":8080"
	defaultAPIToken  = "dev-token"
)

// Config holds process settings for the server binary
type Config struct {
	GRPCAddr  string
	APIToken  string
	ProgramID solana.PublicKey
	LogLevel  string
	Env       string
}

// Load reads an optional .env file and then the environment.
// A missing .env file is not an error.
func Load(files ...string) (*Config, error) {
	// godotenv never overrides variables that are already set
	_ = godotenv.Load(files...)

	programID, err := solana.PublicKeyFromBase58(getEnv("PROGRAM_ID", DefaultProgramID))
	if err != nil {
		return nil, fmt.Errorf("invalid PROGRAM_ID: %w", err)
	}

	return &Config{
		GRPCAddr:  getEnv("GRPC_ADDR", defaultGRPCAddr),
		APIToken:  getEnv("API_TOKEN", defaultAPIToken),
		ProgramID: programID,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Env:       getEnv("ENV", "development"),
	}, nil
}

// IsProduction reports whether the process runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Helper to get env with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
