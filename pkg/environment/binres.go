package environment

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vincent-herlemont/cli-integration-test/pkg/errors"
)

// binCache memoizes build artifacts process-wide: each cmd/<name> of the
// module under test is compiled at most once per test run, shared by all
// environments.
var binCache = struct {
	mu    sync.Mutex
	dir   string
	paths map[string]string
}{paths: make(map[string]string)}

// resolveBinary builds cmd/<name> of the enclosing module and returns
// the resulting executable path. The module root is located with the go
// tool from the test process working directory, so the artifact always
// belongs to the build being tested rather than to an arbitrary PATH
// lookup.
func resolveBinary(name string) (string, error) {
	binCache.mu.Lock()
	defer binCache.mu.Unlock()

	if path, ok := binCache.paths[name]; ok {
		return path, nil
	}

	if binCache.dir == "" {
		dir, err := os.MkdirTemp("", "cli-integration-test-bin-")
		if err != nil {
			return "", errors.Wrap(err, errors.ErrBinaryResolve, "fail to create build directory")
		}
		binCache.dir = dir
	}

	root, err := moduleRoot()
	if err != nil {
		return "", err
	}

	out := filepath.Join(binCache.dir, name)
	build := exec.Command("go", "build", "-o", out, "./cmd/"+name)
	build.Dir = root
	if buildOut, err := build.CombinedOutput(); err != nil {
		return "", errors.Wrapf(err, errors.ErrBinaryResolve,
			"fail to build %q: %s", name, strings.TrimSpace(string(buildOut)))
	}

	binCache.paths[name] = out
	return out, nil
}

// moduleRoot locates the directory of the module enclosing the test
// process working directory.
func moduleRoot() (string, error) {
	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}").Output()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrBinaryResolve, "fail to locate module root")
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", errors.New(errors.ErrBinaryResolve, "module root not found")
	}
	return root, nil
}
