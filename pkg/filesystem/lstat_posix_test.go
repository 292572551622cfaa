//go:build !windows
// +build !windows

package filesystem

import (
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/mutagen-io/unixmode/pkg/mode"
)

// lstatMode returns the raw mode of the specified path, failing the test if it
// can't be queried.
func lstatMode(t *testing.T, path string) uint32 {
	// Mark ourselves as a helper function.
	t.Helper()

	// Query metadata.
	metadata, err := Lstat(path)
	if err != nil {
		t.Fatal("unable to query metadata:", err)
	}
	t.Logf("mode of %s is %07o", path, metadata.Mode)
	return metadata.Mode
}

// TestLstatExistingEntries tests classification of entries likely to exist on
// every POSIX system.
func TestLstatExistingEntries(t *testing.T) {
	if root := lstatMode(t, "/"); !mode.IsDir(root) {
		t.Error("root not classified as directory")
	} else if mode.IsFile(root) {
		t.Error("root classified as file")
	}
	if !mode.IsFile(lstatMode(t, "/etc/passwd")) {
		t.Error("/etc/passwd not classified as file")
	}
	if !mode.IsCharDevice(lstatMode(t, "/dev/null")) {
		t.Error("/dev/null not classified as character device")
	}
	if !mode.IsSticky(lstatMode(t, "/tmp/")) {
		t.Error("/tmp not sticky")
	}
}

// TestLstatExistingPermissions tests permission decoding against entries likely
// to exist on every POSIX system.
func TestLstatExistingPermissions(t *testing.T) {
	root := lstatMode(t, "/")
	devNull := lstatMode(t, "/dev/null")
	for _, by := range mode.Accessors {
		if !mode.IsAllowed(by, mode.AccessRead, root) {
			t.Error(by, "unable to read root")
		}
		if !mode.IsAllowed(by, mode.AccessExecute, root) {
			t.Error(by, "unable to search root")
		}
		if !mode.IsAllowed(by, mode.AccessWrite, devNull) {
			t.Error(by, "unable to write /dev/null")
		}
	}
	if mode.IsAllowed(mode.AccessorOther, mode.AccessWrite, lstatMode(t, "/dev/")) {
		t.Error("others able to write /dev")
	}
	if mode.IsAllowed(mode.AccessorOther, mode.AccessExecute, devNull) {
		t.Error("others able to execute /dev/null")
	}
}

// TestLstatRawModeMatchesOS tests that the decoded type bits agree with the
// system definitions.
func TestLstatRawModeMatchesOS(t *testing.T) {
	if mode.TypeMask != unix.S_IFMT {
		t.Error("type mask does not match S_IFMT")
	}
	if root := lstatMode(t, "/"); root&unix.S_IFMT != unix.S_IFDIR {
		t.Error("root type bits do not match S_IFDIR")
	}
}

// TestLstatCreatedSymlink tests classification of a newly created symbolic
// link.
func TestLstatCreatedSymlink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sym")
	if err := os.Symlink(".", path); err != nil {
		t.Fatal("unable to create symbolic link:", err)
	}
	if !mode.IsSymlink(lstatMode(t, path)) {
		t.Error("symbolic link not classified as symbolic link")
	}
}

// TestLstatCreatedFifo tests classification of a newly created named pipe.
func TestLstatCreatedFifo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fifo")
	if err := unix.Mkfifo(path, 0700); err != nil {
		t.Fatal("unable to create fifo:", err)
	}
	if !mode.IsFifo(lstatMode(t, path)) {
		t.Error("fifo not classified as fifo")
	}
}

// TestLstatCreatedSocket tests classification of a newly created Unix domain
// socket.
func TestLstatCreatedSocket(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sock")
	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal("unable to create socket:", err)
	}
	defer listener.Close()
	if !mode.IsSocket(lstatMode(t, path)) {
		t.Error("socket not classified as socket")
	}
}

// TestLstatNonExistent tests that querying a non-existent path yields an error
// recognized by os.IsNotExist.
func TestLstatNonExistent(t *testing.T) {
	if _, err := Lstat(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("metadata query succeeded for non-existent path")
	} else if !os.IsNotExist(err) {
		t.Error("unexpected error for non-existent path:", err)
	}
}

// chmodTestCase represents a test case verifying rendering against chmod.
type chmodTestCase struct {
	// specification is the chmod specification applied to a file that starts
	// with no permissions.
	specification string
	// expected is the expected rendering.
	expected string
}

// run executes the test in the provided test context.
func (c *chmodTestCase) run(t *testing.T) {
	// Mark ourselves as a helper function.
	t.Helper()

	// Create a private directory, since we'll be setting special bits.
	directory := t.TempDir()
	if err := SetPermissionsByPath(directory, 0700); err != nil {
		t.Fatal("unable to restrict directory permissions:", err)
	}

	// Create a file with no permissions.
	path := filepath.Join(directory, "f")
	if err := os.WriteFile(path, []byte{0}, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	} else if err = SetPermissionsByPath(path, 0); err != nil {
		t.Fatal("unable to clear file permissions:", err)
	}

	// Apply the specification.
	if output, err := exec.Command("chmod", c.specification, path).CombinedOutput(); err != nil {
		t.Fatalf("unable to run chmod %s: %v: %s", c.specification, err, output)
	}

	// Verify our rendering.
	if result := mode.String(lstatMode(t, path)); result != c.expected {
		t.Errorf("rendering after chmod %s does not match expected: %s != %s", c.specification, result, c.expected)
	}

	// For good measure, compare against ls.
	if output, err := exec.Command("ls", "-l", path).Output(); err != nil {
		t.Fatal("unable to run ls:", err)
	} else if len(output) < mode.RenderedLength {
		t.Fatal("ls output too short:", string(output))
	} else if listed := string(output[:mode.RenderedLength]); listed != c.expected {
		t.Errorf("ls rendering after chmod %s does not match expected: %s != %s", c.specification, listed, c.expected)
	}
}

// TestRenderMatchesChmod tests rendering of files modified by chmod against
// both the expected value and the output of ls.
func TestRenderMatchesChmod(t *testing.T) {
	// Skip if the required tools aren't available.
	for _, tool := range []string{"chmod", "ls"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skip(tool, "not available")
		}
	}

	// Define test cases.
	testCases := []*chmodTestCase{
		{"a+r", "-r--r--r--"},
		{"a+w", "--w--w--w-"},
		{"a+x", "---x--x--x"},
		{"+t", "---------T"},
		{"a+x,+t", "---x--x--t"},
		{"+s", "---S--S---"},
		{"a+x,+s", "---s--s--x"},
		{"u+wx,g+r", "--wxr-----"},
	}

	// Process test cases.
	for _, testCase := range testCases {
		testCase.run(t)
	}
}

// TestSetPermissionsByPath tests that permissions set by path are reflected in
// the raw mode and that type bits in the specification are ignored.
func TestSetPermissionsByPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal("unable to create file:", err)
	}
	if err := SetPermissionsByPath(path, 0040640); err != nil {
		t.Fatal("unable to set permissions:", err)
	}
	if result := mode.String(lstatMode(t, path)); result != "-rw-r-----" {
		t.Error("rendering mismatch:", result, "!=", "-rw-r-----")
	}
}
