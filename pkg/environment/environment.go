package environment

import (
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vincent-herlemont/cli-integration-test/pkg/errors"
	"github.com/vincent-herlemont/cli-integration-test/pkg/filesystem"
	"github.com/vincent-herlemont/cli-integration-test/pkg/logging"
)

// entryKind discriminates the two specification entry variants
type entryKind int

const (
	entryFile entryKind = iota
	entryDir
)

// entry is one specification record: a relative path materializes either
// to a regular file with the given content or to a directory.
type entry struct {
	kind    entryKind
	content string
}

// Environment owns an isolated temporary workspace and the in-memory
// specification of the fixture tree to materialize inside it.
//
// Lifecycle is strictly linear: construct, mutate the specification,
// Setup, then inspect and launch as often as needed. The workspace is
// removed when the test completes, including on failure or panic.
type Environment struct {
	tb      testing.TB
	label   string
	id      string
	root    string
	fs      filesystem.FS
	entries map[string]entry

	// cfgCommand is run on every invocation produced by Command. It must
	// only configure; it must not execute, block, or mutate the
	// Environment. Not enforced structurally, contractual.
	cfgCommand CommandConfigurator

	logger zerolog.Logger
}

// New allocates a fresh Environment labeled for diagnostics. The
// workspace directory is created immediately under the platform temp
// area, named after the label plus a uniqueness token so that many
// concurrent environments with the same label never collide. Allocation
// failure aborts the test.
//
// Cleanup is registered with tb so the workspace subtree is removed on
// every exit path, passing tests, failing tests, and panics alike.
func New(tb testing.TB, label string) *Environment {
	tb.Helper()

	id := strings.SplitN(uuid.NewString(), "-", 2)[0]
	root, err := os.MkdirTemp("", label+"-"+id+"-")
	if err != nil {
		tb.Fatalf("%v", errors.Wrapf(err, errors.ErrWorkspaceCreate,
			"fail to create workspace for %q", label))
	}

	env := &Environment{
		tb:         tb,
		label:      label,
		id:         id,
		root:       root,
		fs:         filesystem.NewOS(),
		entries:    make(map[string]entry),
		cfgCommand: func(_ string, inv *Invocation) *Invocation { return inv },
		logger: logging.GetLogger("environment").With().
			Str("label", label).
			Str("id", id).
			Logger(),
	}

	tb.Cleanup(env.remove)

	env.logger.Debug().Str("workspace", root).Msg("Workspace allocated")
	return env
}

// AddFile records that path, relative to the workspace root, must exist
// as a regular file containing exactly content. A prior entry for the
// same path is overwritten, including a directory marker. No filesystem
// access occurs.
func (e *Environment) AddFile(path, content string) {
	e.entries[path] = entry{kind: entryFile, content: content}
}

// AddDir records that path must exist as a directory. A prior file entry
// for the same path is overwritten.
func (e *Environment) AddDir(path string) {
	e.entries[path] = entry{kind: entryDir}
}

// SetCommandCallback stores the hook run on every invocation produced by
// Command. The default hook is the identity.
func (e *Environment) SetCommandCallback(fn CommandConfigurator) {
	e.cfgCommand = fn
}

// Path returns the workspace root.
func (e *Environment) Path() string {
	return e.root
}

// remove tears the workspace down. Registered via tb.Cleanup; removal
// failure is logged, never panicked, since it runs after the test body.
func (e *Environment) remove() {
	if err := os.RemoveAll(e.root); err != nil {
		e.logger.Warn().Err(err).Str("workspace", e.root).Msg("Failed to remove workspace")
		return
	}
	e.logger.Debug().Str("workspace", e.root).Msg("Workspace removed")
}
