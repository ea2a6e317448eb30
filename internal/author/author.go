// Package author resolves the copyright holder name written into licenses.
package author

import (
	"os"
	"os/user"
	"strings"

	"github.com/rs/zerolog"

	"github.com/licensit/licensit/internal/logging"
)

const (
	// EnvVar overrides discovered author names.
	EnvVar = "LICENSE_AUTHOR"
	// Fallback is used when no other source yields a name.
	Fallback = "user"
)

// Source identifies where a resolved author name came from.
type Source string

const (
	SourceFlag     Source = "flag"
	SourceEnv      Source = "env"
	SourceGit      Source = "git"
	SourceOS       Source = "os"
	SourceFallback Source = "fallback"
)

// Resolution is a resolved author name and its origin.
type Resolution struct {
	Name   string `json:"name"`
	Source Source `json:"source"`
	// Path is the git config file the name was read from, if any.
	Path string `json:"path,omitempty"`
}

// Resolver walks the author precedence chain:
// explicit flag, LICENSE_AUTHOR, git config user.name, OS user name, "user".
type Resolver struct {
	// GitConfigPaths are consulted before the standard git config locations.
	GitConfigPaths []string

	Getenv      func(string) string
	HomeDir     func() (string, error)
	CurrentUser func() (string, error)

	logger zerolog.Logger
}

// NewResolver returns a resolver backed by the process environment.
func NewResolver(gitConfigPaths []string) *Resolver {
	return &Resolver{
		GitConfigPaths: gitConfigPaths,
		Getenv:         os.Getenv,
		HomeDir:        os.UserHomeDir,
		CurrentUser:    currentUserName,
		logger:         logging.Component("author"),
	}
}

func currentUserName() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// Resolve returns the first non-blank name in precedence order. flag is the
// value passed on the command line, empty when absent. Flag and environment
// values are returned untrimmed.
func (r *Resolver) Resolve(flag string) Resolution {
	res := r.resolve(flag)
	r.logger.Debug().
		Str("author", res.Name).
		Str("source", string(res.Source)).
		Str("path", res.Path).
		Msg("author resolved")
	return res
}

func (r *Resolver) resolve(flag string) Resolution {
	// Explicit values are used verbatim; only blank ones fall through.
	if strings.TrimSpace(flag) != "" {
		return Resolution{Name: flag, Source: SourceFlag}
	}

	if r.Getenv != nil {
		if name := r.Getenv(EnvVar); strings.TrimSpace(name) != "" {
			return Resolution{Name: name, Source: SourceEnv}
		}
	}

	for _, path := range r.gitConfigFiles() {
		name, err := ReadGitUserName(path)
		if err != nil {
			r.logger.Debug().Err(err).Str("path", path).Msg("skipping git config")
			continue
		}
		if name != "" {
			return Resolution{Name: name, Source: SourceGit, Path: path}
		}
	}

	if r.CurrentUser != nil {
		name, err := r.CurrentUser()
		if err != nil {
			r.logger.Debug().Err(err).Msg("current user lookup failed")
		} else if name = strings.TrimSpace(name); name != "" {
			return Resolution{Name: name, Source: SourceOS}
		}
	}

	return Resolution{Name: Fallback, Source: SourceFallback}
}
