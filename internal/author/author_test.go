package author

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEnv map[string]string

func (e fakeEnv) Getenv(key string) string {
	return e[key]
}

func newTestResolver(t *testing.T, env fakeEnv, home string, osUser string) *Resolver {
	t.Helper()
	r := NewResolver(nil)
	r.Getenv = env.Getenv
	r.HomeDir = func() (string, error) {
		if home == "" {
			return "", errors.New("no home")
		}
		return home, nil
	}
	r.CurrentUser = func() (string, error) {
		if osUser == "" {
			return "", errors.New("unknown user")
		}
		return osUser, nil
	}
	return r
}

func writeGitConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolvePrecedence(t *testing.T) {
	home := t.TempDir()
	writeGitConfig(t, filepath.Join(home, ".gitconfig"), "[user]\n\tname = Git Name\n\temail = git@example.com\n")

	tests := []struct {
		name     string
		flag     string
		env      fakeEnv
		home     string
		osUser   string
		expected Resolution
	}{
		{
			name:     "flag wins over everything",
			flag:     "Flag Name",
			env:      fakeEnv{EnvVar: "Env Name"},
			home:     home,
			osUser:   "osuser",
			expected: Resolution{Name: "Flag Name", Source: SourceFlag},
		},
		{
			name:     "env wins over git",
			env:      fakeEnv{EnvVar: "Env Name"},
			home:     home,
			osUser:   "osuser",
			expected: Resolution{Name: "Env Name", Source: SourceEnv},
		},
		{
			name:     "git wins over os user",
			env:      fakeEnv{},
			home:     home,
			osUser:   "osuser",
			expected: Resolution{Name: "Git Name", Source: SourceGit, Path: filepath.Join(home, ".gitconfig")},
		},
		{
			name:     "os user when no git config",
			env:      fakeEnv{},
			home:     t.TempDir(),
			osUser:   "osuser",
			expected: Resolution{Name: "osuser", Source: SourceOS},
		},
		{
			name:     "fallback when nothing resolves",
			env:      fakeEnv{},
			expected: Resolution{Name: Fallback, Source: SourceFallback},
		},
		{
			name:     "flag kept verbatim",
			flag:     "  Jane Doe ",
			env:      fakeEnv{EnvVar: "Env Name"},
			expected: Resolution{Name: "  Jane Doe ", Source: SourceFlag},
		},
		{
			name:     "env kept verbatim",
			env:      fakeEnv{EnvVar: " Env Name\t"},
			expected: Resolution{Name: " Env Name\t", Source: SourceEnv},
		},
		{
			name:     "blank flag and env fall through",
			flag:     "   ",
			env:      fakeEnv{EnvVar: " \t"},
			osUser:   "osuser",
			expected: Resolution{Name: "osuser", Source: SourceOS},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestResolver(t, tt.env, tt.home, tt.osUser)
			require.Equal(t, tt.expected, r.Resolve(tt.flag))
		})
	}
}

func TestResolveGitConfigGlobalOverride(t *testing.T) {
	home := t.TempDir()
	writeGitConfig(t, filepath.Join(home, ".gitconfig"), "[user]\n\tname = Home Name\n")

	global := filepath.Join(t.TempDir(), "global.gitconfig")
	writeGitConfig(t, global, "[user]\n\tname = Global Name\n")

	r := newTestResolver(t, fakeEnv{"GIT_CONFIG_GLOBAL": global}, home, "osuser")
	res := r.Resolve("")
	require.Equal(t, "Global Name", res.Name)
	require.Equal(t, global, res.Path)
}

func TestResolveXDGGitConfig(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()
	writeGitConfig(t, filepath.Join(xdg, "git", "config"), "[user]\n\tname = XDG Name\n")

	r := newTestResolver(t, fakeEnv{"XDG_CONFIG_HOME": xdg}, home, "osuser")
	require.Equal(t, "XDG Name", r.Resolve("").Name)

	// ~/.gitconfig takes precedence over the XDG file.
	writeGitConfig(t, filepath.Join(home, ".gitconfig"), "[user]\n\tname = Home Name\n")
	require.Equal(t, "Home Name", r.Resolve("").Name)
}

func TestResolveExtraGitConfigPaths(t *testing.T) {
	home := t.TempDir()
	writeGitConfig(t, filepath.Join(home, ".gitconfig"), "[user]\n\tname = Home Name\n")
	writeGitConfig(t, filepath.Join(home, "work.gitconfig"), "[user]\n\tname = Work Name\n")

	r := newTestResolver(t, fakeEnv{}, home, "osuser")
	r.GitConfigPaths = []string{"~/work.gitconfig"}

	res := r.Resolve("")
	require.Equal(t, "Work Name", res.Name)
	require.Equal(t, filepath.Join(home, "work.gitconfig"), res.Path)
}

func TestResolveSkipsGitConfigWithoutName(t *testing.T) {
	home := t.TempDir()
	writeGitConfig(t, filepath.Join(home, ".gitconfig"), "[core]\n\teditor = vim\n[user]\n\temail = x@example.com\n")

	r := newTestResolver(t, fakeEnv{}, home, "osuser")
	require.Equal(t, Resolution{Name: "osuser", Source: SourceOS}, r.Resolve(""))
}

func TestReadGitUserName(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"simple", "[user]\n\tname = Jane Doe\n", "Jane Doe"},
		{"quoted", "[user]\n\tname = \"Jane Doe\"\n", "Jane Doe"},
		{"mixed case section", "[User]\n\tName = Jane Doe\n", "Jane Doe"},
		{"last entry wins", "[user]\n\tname = First\n[user]\n\tname = Second\n", "Second"},
		{"boolean keys and subsections", "[core]\n\tbare\n[remote \"origin\"]\n\turl = git@example.com:x/y.git\n[user]\n\tname = Jane Doe\n", "Jane Doe"},
		{"comments", "# global\n[user]\n\t; who\n\tname = Jane Doe\n", "Jane Doe"},
		{"no user section", "[core]\n\teditor = vim\n", ""},
		{"empty file", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "gitconfig")
			writeGitConfig(t, path, tt.content)

			name, err := ReadGitUserName(path)
			require.NoError(t, err)
			require.Equal(t, tt.expected, name)
		})
	}
}

func TestReadGitUserNameMissingFile(t *testing.T) {
	_, err := ReadGitUserName(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
