package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"proglist/internal/config"
	"proglist/internal/corpus"
	"proglist/internal/replace"
	"proglist/internal/report"
	"proglist/internal/selector"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "proglist",
		Short: "Static program-listing catalog generator",
	}
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "proglist.yaml", "Path to the YAML configuration file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(replaceCmd)
}

// resolveRoot picks the scan root: positional arg beats config.
func resolveRoot(cfg *config.Config, args []string) (string, error) {
	root := cfg.Project.Root
	if len(args) > 0 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: not a directory", abs)
	}
	return abs, nil
}

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Scan the tree and write the program listing document",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		root, err := resolveRoot(cfg, args)
		if err != nil {
			log.Fatalf("Bad scan root: %v", err)
		}

		fmt.Printf("📂 Scanning directory: %s\n", root)
		start := time.Now()

		rules := selector.DefaultRules().Extend(
			cfg.Scan.SkipDirs,
			cfg.Scan.SkipNames,
			cfg.Scan.SkipExtensions,
			cfg.Scan.ExcludePatterns,
		)
		paths, err := selector.Select(root, rules)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}

		vocab := corpus.Vocabulary(filepath.Join(root, filepath.FromSlash(cfg.Project.DataDir)))
		c := corpus.Load(root, paths)
		fmt.Printf("✅ Loaded %d program files (%d collections) in %v.\n", len(c.Files), len(vocab), time.Since(start))

		doc := report.Build(c, vocab, report.Meta{
			Programmer:  cfg.Listing.Programmer,
			DateCreated: cfg.Listing.DateCreated,
		}, time.Now())

		outPath := filepath.Join(root, filepath.FromSlash(cfg.Project.Output))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
		if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
			log.Fatalf("Failed to write listing: %v", err)
		}

		fmt.Printf("🎉 Wrote formatted program listing to %s\n", outPath)
	},
}

var replaceCmd = &cobra.Command{
	Use:   "replace [path]",
	Short: "Apply the configured bulk find/replace rules",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		root, err := resolveRoot(cfg, args)
		if err != nil {
			log.Fatalf("Bad root: %v", err)
		}

		rules := make([]replace.Rule, 0, len(cfg.Replace.Replacements))
		for _, r := range cfg.Replace.Replacements {
			rules = append(rules, replace.Rule{Old: r.Old, New: r.New})
		}

		modified, err := replace.Run(root, replace.Config{
			Allow:      cfg.Replace.Allow,
			Deny:       cfg.Replace.Deny,
			Extensions: cfg.Replace.Extensions,
			Rules:      rules,
		})
		if err != nil {
			log.Fatalf("Replace failed: %v", err)
		}

		fmt.Println("Modified files:")
		for _, rel := range modified {
			fmt.Println(rel)
		}
		fmt.Printf("Total: %d files updated\n", len(modified))
	},
}
