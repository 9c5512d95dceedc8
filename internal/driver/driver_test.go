package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// run is a small helper around Run that captures stdout/stderr into buffers
// for assertion, mirroring how the teacher's fixture tests capture an
// interpreter's output rather than spawning a subprocess.
func run(t *testing.T, source string, opts Options) (stdout, stderr string, exitCode int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	opts.Stdout = &outBuf
	opts.Stderr = &errBuf
	result := Run("<test>", source, opts)
	return outBuf.String(), errBuf.String(), result.ExitCode
}

func TestArithmeticAndPrint(t *testing.T) {
	stdout, stderr, code := run(t, `let a = 1; let b = 2; print(a + b);`, Options{})
	require.Equal(t, "3\n", stdout)
	require.Empty(t, stderr)
	require.Equal(t, 0, code)
}

func TestStringConcatCoercesNumber(t *testing.T) {
	stdout, _, code := run(t, `let s = "hi"; print(s + " " + 42);`, Options{})
	require.Equal(t, "hi 42\n", stdout)
	require.Equal(t, 0, code)
}

func TestArrayPushAndMap(t *testing.T) {
	stdout, _, code := run(t, `
let a = [];
a.push(1);
a.push(2);
a.push(3);
print(a.map(fn(x) => x * x));
`, Options{})
	require.Equal(t, "[1, 4, 9]\n", stdout)
	require.Equal(t, 0, code)
}

func TestArrayReduce(t *testing.T) {
	stdout, _, code := run(t, `print([1, 2, 3, 4].reduce(fn(acc, x) => acc + x, 0));`, Options{})
	require.Equal(t, "10\n", stdout)
	require.Equal(t, 0, code)
}

func TestConstReassignmentIsFatal(t *testing.T) {
	_, stderr, code := run(t, `const k = 1; k = 2;`, Options{})
	require.Contains(t, stderr, "Cannot assign to const variable 'k'")
	require.Equal(t, 1, code)
}

func TestArrayIndexOutOfBounds(t *testing.T) {
	_, stderr, code := run(t, `let a = [1, 2]; print(a[5]);`, Options{})
	require.Contains(t, stderr, "Array index 5 out of bounds (length 2)")
	require.Equal(t, 1, code)
}

func TestReduceEmptyWithoutInitialIsFatal(t *testing.T) {
	_, stderr, code := run(t, `print([].reduce(fn(acc, x) => acc + x));`, Options{})
	require.Contains(t, stderr, "reduce() of empty array with no initial value")
	require.Equal(t, 1, code)
}

func TestRecursiveFactorial(t *testing.T) {
	stdout, _, code := run(t, `
fn factorial(n) {
  if (n <= 1) { return 1; }
  return n * factorial(n - 1);
}
print(factorial(10));
`, Options{})
	require.Equal(t, "3628800\n", stdout)
	require.Equal(t, 0, code)
}

func TestNoInferSkipsTypeRegistry(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	result := Run("<test>", `let a = 1; print(a);`, Options{Stdout: &outBuf, Stderr: &errBuf, NoInfer: true})
	require.Equal(t, 0, result.ExitCode)
	require.Nil(t, result.TypeRegistry)
}

func TestInferPopulatesTypeRegistry(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	result := Run("<test>", `fn id(x) { return x; } let a = 1;`, Options{Stdout: &outBuf, Stderr: &errBuf})
	require.Equal(t, 0, result.ExitCode)
	require.NotNil(t, result.TypeRegistry)
}

func TestTraceEmitsCallLinesToStderr(t *testing.T) {
	stdout, stderr, code := run(t, `
fn double(x) { return x * 2; }
print(double(21));
`, Options{Trace: true})
	require.Equal(t, "42\n", stdout)
	require.Contains(t, stderr, "trace: call double [")
	require.Equal(t, 0, code)
}

func TestDumpASTPrintsProgramTree(t *testing.T) {
	stdout, _, code := run(t, `let a = 1;`, Options{DumpAST: true})
	require.True(t, strings.HasPrefix(stdout, "AST:"))
	require.Equal(t, 0, code)
	snaps.MatchSnapshot(t, "dump_ast_let_statement", stdout)
}

func TestParseErrorReportsPerLine(t *testing.T) {
	_, stderr, code := run(t, `let a = ;`, Options{})
	require.Contains(t, stderr, "Parse error in <test>")
	require.Equal(t, 1, code)
}

func TestResolveErrorReportsRedeclaration(t *testing.T) {
	_, stderr, code := run(t, `let a = 1; let a = 2;`, Options{})
	require.Contains(t, stderr, "Resolve error")
	require.Contains(t, stderr, "already defined")
	require.Equal(t, 1, code)
}
