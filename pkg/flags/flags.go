package flags

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config holds all command-line configuration
type Config struct {
	Port    string
	Storage string
	DataDir string
	Help    bool
}

// DefaultConfig returns default configuration values
func DefaultConfig() Config {
	return Config{
		Port:    "8080",
		Storage: "file",
		DataDir: "data",
		Help:    false,
	}
}

// Parse parses command-line flags and returns configuration
func Parse() Config {
	config := DefaultConfig()

	var (
		port    = flag.String("port", config.Port, "Port number")
		store   = flag.String("storage", config.Storage, "Storage driver: file, postgres or redis")
		dataDir = flag.String("data-dir", config.DataDir, "Data directory for the file storage driver")
		help    = flag.Bool("help", false, "Show this screen")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Chai Bisket Ordering Service\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  chaibisket [--port <N>] [--storage <driver>] [--data-dir <path>]\n")
		fmt.Fprintf(os.Stderr, "  chaibisket --help\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  --help            Show this screen.\n")
		fmt.Fprintf(os.Stderr, "  --port N          Port number (1-65535).\n")
		fmt.Fprintf(os.Stderr, "  --storage DRIVER  Storage driver: file (default), postgres, redis.\n")
		fmt.Fprintf(os.Stderr, "  --data-dir PATH   Data directory for the file driver (default: data).\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if err := validatePort(*port); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := validateStorage(*store); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return Config{
		Port:    *port,
		Storage: *store,
		DataDir: *dataDir,
		Help:    *help,
	}
}

// validatePort validates the port number
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number '%s': must be a number", port)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("port number %d is out of range: must be between 1 and 65535", portNum)
	}

	if portNum < 1024 {
		fmt.Fprintf(os.Stderr, "Warning: Port %d is a privileged port (1-1023). You may need administrator privileges.\n", portNum)
	}

	return nil
}

// validateStorage validates the storage driver name
func validateStorage(driver string) error {
	switch driver {
	case "file", "postgres", "redis":
		return nil
	default:
		return fmt.Errorf("unknown storage driver '%s': must be file, postgres or redis", driver)
	}
}

// Validate validates the parsed configuration
func (c Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return err
	}

	if err := validateStorage(c.Storage); err != nil {
		return err
	}

	if c.Storage == "file" && c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty with the file storage driver")
	}

	return nil
}
