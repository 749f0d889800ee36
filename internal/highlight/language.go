package highlight

import (
	"path/filepath"
	"strings"
)

// languageMap maps file extensions to Chroma language identifiers.
var languageMap = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".mjs":  "javascript",
	".jsx":  "jsx",
	".ts":   "typescript",
	".tsx":  "tsx",
	".java": "java",
	".c":    "c",
	".h":    "c",
	".cpp":  "cpp",
	".cc":   "cpp",
	".hpp":  "cpp",
	".rs":   "rust",
	".rb":   "ruby",
	".php":  "php",
	".sh":   "bash",
	".bash": "bash",
	".lua":  "lua",
	".sql":  "sql",
	".html": "html",
	".css":  "css",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
	".toml": "toml",
	".md":   "markdown",
}

// DetectLanguage returns the Chroma language identifier for a file path,
// falling back to plain text.
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageMap[ext]; ok {
		return lang
	}

	switch strings.ToLower(filepath.Base(path)) {
	case "dockerfile":
		return "docker"
	case "makefile":
		return "make"
	}

	return PlainLanguage
}
