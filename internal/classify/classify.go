// Package classify maps a file's relative path to a human-readable
// description and a coarse module label. Classification looks only at the
// path, never the content, and is total: any path that survived selection
// classifies without error.
package classify

import (
	"fmt"
	"path"
	"strings"
)

// pathInfo carries the pre-computed pieces of a path the rules test against.
type pathInfo struct {
	lower string // lowercased relative slash path
	stem  string // base name without extension
}

// rule is one (predicate, result) pair. Rules are evaluated in order and the
// first match wins.
type rule struct {
	match  func(p pathInfo) bool
	result func(p pathInfo) string
}

func prefix(pre string, result func(p pathInfo) string) rule {
	return rule{
		match:  func(p pathInfo) bool { return strings.HasPrefix(p.lower, pre) },
		result: result,
	}
}

func exact(rel string, text string) rule {
	return rule{
		match:  func(p pathInfo) bool { return p.lower == rel },
		result: func(pathInfo) string { return text },
	}
}

func suffix(text string, exts ...string) rule {
	return rule{
		match: func(p pathInfo) bool {
			for _, ext := range exts {
				if strings.HasSuffix(p.lower, ext) {
					return true
				}
			}
			return false
		},
		result: func(pathInfo) string { return text },
	}
}

func fixed(text string) func(pathInfo) string {
	return func(pathInfo) string { return text }
}

var describeRules = []rule{
	prefix("backend/routes/", func(p pathInfo) string {
		base := strings.ReplaceAll(p.stem, "_", " ")
		return fmt.Sprintf("API route handler for %s resources.", base)
	}),
	prefix("backend/middleware/", fixed("Express middleware for request handling and access control.")),
	prefix("backend/utils/", fixed("Backend utility module used across services.")),
	prefix("backend/adapters/", fixed("Database adapter layer for storage operations.")),
	prefix("backend/scripts/", fixed("Backend maintenance or data migration script.")),
	prefix("backend/test/", fixed("Backend automated test case.")),
	prefix("backend/data/", fixed("Seed or offline data store for the backend.")),
	exact("backend/app.js", "Express application configuration and middleware setup."),
	exact("backend/server.js", "Backend server entry point and HTTP listener."),
	prefix("frontend/src/pages/", fixed("Frontend page view for routing and page-level UI.")),
	prefix("frontend/src/components/", fixed("Reusable frontend UI component.")),
	prefix("frontend/src/contexts/", fixed("React context provider for shared state.")),
	prefix("frontend/src/utils/", fixed("Frontend utility helper for shared logic.")),
	prefix("frontend/src/theme/", fixed("Frontend theming and UI configuration.")),
	prefix("frontend/src/data/", fixed("Frontend static data configuration.")),
	exact("frontend/src/index.js", "Frontend application bootstrap and render entry."),
	exact("frontend/src/app.js", "Frontend application root component."),
	prefix("frontend/public/", fixed("Frontend public static asset or HTML entry.")),
	prefix("frontend/build/", fixed("Compiled frontend build artifact.")),
	suffix("Project documentation file.", ".md"),
	suffix("Project configuration or data file.", ".json"),
	suffix("Deployment or configuration file.", ".yml", ".yaml"),
	suffix("Automation or startup script.", ".bat", ".ps1"),
}

var moduleRules = []rule{
	prefix("backend/adapters/", fixed("Backend - Adapters")),
	prefix("backend/middleware/", fixed("Backend - Middleware")),
	prefix("backend/routes/", fixed("Backend - Routes")),
	prefix("backend/utils/", fixed("Backend - Utils")),
	prefix("backend/scripts/", fixed("Backend - Scripts")),
	prefix("backend/", fixed("Backend - Core")),
	prefix("frontend/src/pages/", fixed("Frontend - Pages")),
	prefix("frontend/src/components/", fixed("Frontend - Components")),
	prefix("frontend/src/contexts/", fixed("Frontend - Contexts")),
	prefix("frontend/src/utils/", fixed("Frontend - Utils")),
	prefix("frontend/src/theme/", fixed("Frontend - Theme")),
	prefix("frontend/src/data/", fixed("Frontend - Data")),
	prefix("frontend/src/", fixed("Frontend - Core")),
	prefix("frontend/", fixed("Frontend - Other")),
}

func info(rel string) pathInfo {
	base := path.Base(rel)
	return pathInfo{
		lower: strings.ToLower(rel),
		stem:  strings.TrimSuffix(base, path.Ext(base)),
	}
}

// Describe returns the description for a relative path. Unmatched paths get
// a generic description naming the path.
func Describe(rel string) string {
	p := info(rel)
	for _, r := range describeRules {
		if r.match(p) {
			return r.result(p)
		}
	}
	return fmt.Sprintf("Source file located at %s.", rel)
}

// Module returns the module label for a relative path, falling back to
// "Other".
func Module(rel string) string {
	p := info(rel)
	for _, r := range moduleRules {
		if r.match(p) {
			return r.result(p)
		}
	}
	return "Other"
}
