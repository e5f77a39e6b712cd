package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Replacement is a single literal substitution applied by the replace command.
type Replacement struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

type Config struct {
	Project struct {
		Root    string `yaml:"root"`     // tree to scan
		DataDir string `yaml:"data_dir"` // directory whose *.json stems form the collection vocabulary
		Output  string `yaml:"output"`   // generated listing path, relative to root
	} `yaml:"project"`
	Scan struct {
		SkipDirs        []string `yaml:"skip_dirs"`        // extra directory names to skip
		SkipNames       []string `yaml:"skip_names"`       // extra exact file names to skip
		SkipExtensions  []string `yaml:"skip_extensions"`  // extra extensions to skip, dot included
		ExcludePatterns []string `yaml:"exclude_patterns"` // extra path patterns to skip
	} `yaml:"scan"`
	Listing struct {
		Programmer  string `yaml:"programmer"`
		DateCreated string `yaml:"date_created"`
	} `yaml:"listing"`
	Replace struct {
		Allow        []string      `yaml:"allow"`
		Deny         []string      `yaml:"deny"`
		Extensions   []string      `yaml:"extensions"`
		Replacements []Replacement `yaml:"replacements"`
	} `yaml:"replace"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	var cfg Config
	cfg.Project.Root = "."
	cfg.Project.DataDir = "backend/data"
	cfg.Project.Output = "docs/PROGRAM_LISTING.md"
	cfg.Listing.Programmer = "Unassigned"
	cfg.Listing.DateCreated = "TBD"
	cfg.Replace.Allow = []string{"frontend/src/**", "frontend/public/**", "backend/routes/**", "backend/test/**"}
	cfg.Replace.Deny = []string{"frontend/build/**", "node_modules/**", ".git/**", "backend/uploads/**"}
	cfg.Replace.Extensions = []string{".js", ".jsx", ".ts", ".tsx", ".json", ".md", ".ps1", ".yml", ".yaml", ".txt", ".html", ".css"}
	return &cfg
}

// LoadConfig reads the YAML config at path, falling back to defaults when the
// file does not exist. Environment variables (optionally via .env) override
// the file values.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyDefaults(cfg)

	// 3. Override with Environment Variables if present
	if root := os.Getenv("PROGLIST_ROOT"); root != "" {
		cfg.Project.Root = root
	}
	if dataDir := os.Getenv("PROGLIST_DATA_DIR"); dataDir != "" {
		cfg.Project.DataDir = dataDir
	}
	if output := os.Getenv("PROGLIST_OUTPUT"); output != "" {
		cfg.Project.Output = output
	}
	if programmer := os.Getenv("PROGLIST_PROGRAMMER"); programmer != "" {
		cfg.Listing.Programmer = programmer
	}

	return cfg, nil
}

// applyDefaults fills any field the YAML file left empty.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Project.Root == "" {
		cfg.Project.Root = def.Project.Root
	}
	if cfg.Project.DataDir == "" {
		cfg.Project.DataDir = def.Project.DataDir
	}
	if cfg.Project.Output == "" {
		cfg.Project.Output = def.Project.Output
	}
	if cfg.Listing.Programmer == "" {
		cfg.Listing.Programmer = def.Listing.Programmer
	}
	if cfg.Listing.DateCreated == "" {
		cfg.Listing.DateCreated = def.Listing.DateCreated
	}
	if cfg.Replace.Allow == nil {
		cfg.Replace.Allow = def.Replace.Allow
	}
	if cfg.Replace.Deny == nil {
		cfg.Replace.Deny = def.Replace.Deny
	}
	if cfg.Replace.Extensions == nil {
		cfg.Replace.Extensions = def.Replace.Extensions
	}
}
