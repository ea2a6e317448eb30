package author

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

var gitConfigLoadOptions = ini.LoadOptions{
	Insensitive:             true,
	AllowBooleanKeys:        true,
	AllowShadows:            true,
	SkipUnrecognizableLines: true,
}

// gitConfigFiles lists git config files in precedence order. GIT_CONFIG_GLOBAL
// replaces the global files the same way git itself treats it.
func (r *Resolver) gitConfigFiles() []string {
	paths := make([]string, 0, len(r.GitConfigPaths)+2)
	for _, p := range r.GitConfigPaths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, expandHome(p, r.HomeDir))
		}
	}

	getenv := r.Getenv
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	if global := strings.TrimSpace(getenv("GIT_CONFIG_GLOBAL")); global != "" {
		return append(paths, expandHome(global, r.HomeDir))
	}

	home := ""
	if r.HomeDir != nil {
		if dir, err := r.HomeDir(); err == nil {
			home = dir
		}
	}

	if home != "" {
		paths = append(paths, filepath.Join(home, ".gitconfig"))
	}
	if xdg := strings.TrimSpace(getenv("XDG_CONFIG_HOME")); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "git", "config"))
	} else if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "git", "config"))
	}
	return paths
}

func expandHome(path string, homeDir func() (string, error)) string {
	if homeDir == nil || (path != "~" && !strings.HasPrefix(path, "~/")) {
		return path
	}
	home, err := homeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ReadGitUserName returns the last user.name entry of a git config file, or an
// empty string when the file sets none.
func ReadGitUserName(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read git config %s: %w", path, err)
	}

	cfg, err := ini.LoadSources(gitConfigLoadOptions, data)
	if err != nil {
		return "", fmt.Errorf("parse git config %s: %w", path, err)
	}

	section, err := cfg.GetSection("user")
	if err != nil {
		return "", nil
	}
	key, err := section.GetKey("name")
	if err != nil {
		return "", nil
	}

	values := key.ValueWithShadows()
	for i := len(values) - 1; i >= 0; i-- {
		if name := strings.TrimSpace(values[i]); name != "" {
			return name, nil
		}
	}
	return "", nil
}
