// Package environment provides a declarative fixture builder and execution
// harness for black-box integration testing of command-line executables.
//
// A test declares the filesystem layout it needs (AddFile, AddDir) without
// touching the disk, materializes it into an isolated temporary workspace
// (Setup), then launches an executable from the same build with the
// workspace as its working directory (Command). After execution the test
// inspects the resulting tree (Tree, String) and reads files back
// (ReadFile) to assert on side effects.
//
// Key components:
//   - Environment: per-test workspace with guaranteed cleanup
//   - Invocation/Result: configured process invocation and its captured output
//   - CommandConfigurator: per-environment hook run on every invocation
//
// Usage guidelines:
//   - One Environment per test case; the type is not synchronized
//   - Setup failures abort the test, a broken fixture makes it meaningless
//   - Assertions are delegated to testify, the harness only exposes state
package environment
