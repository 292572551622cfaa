package mode

import (
	"strings"
	"testing"
)

// renderTestCase represents a test case for String.
type renderTestCase struct {
	// mode is the mode value to render.
	mode uint32
	// expected is the expected rendering.
	expected string
}

// run executes the test in the provided test context.
func (c *renderTestCase) run(t *testing.T) {
	// Mark ourselves as a helper function.
	t.Helper()

	// Perform rendering and verify the result.
	if result := String(c.mode); result != c.expected {
		t.Errorf("rendering of %07o does not match expected: %s != %s", c.mode, result, c.expected)
	}
}

// TestRender tests rendering of common modes.
func TestRender(t *testing.T) {
	// Define test cases.
	testCases := []*renderTestCase{
		{0040755, "drwxr-xr-x"},
		{0100640, "-rw-r-----"},
		{0041777, "drwxrwxrwt"},
		{0020600, "crw-------"},
		{0060600, "brw-------"},
		{0120777, "lrwxrwxrwx"},
		{0010644, "prw-r--r--"},
		{0140755, "srwxr-xr-x"},
		{0160000, "w---------"},
		{0000644, "?rw-r--r--"},
		{0170777, "?rwxrwxrwx"},
	}

	// Process test cases.
	for _, testCase := range testCases {
		testCase.run(t)
	}
}

// TestRenderChmod tests rendering of the modes that chmod produces on an
// otherwise permissionless regular file.
func TestRenderChmod(t *testing.T) {
	// Define test cases. The comments indicate the chmod specification.
	testCases := []*renderTestCase{
		{0100444, "-r--r--r--"}, // a+r
		{0100222, "--w--w--w-"}, // a+w
		{0100111, "---x--x--x"}, // a+x
		{0101000, "---------T"}, // +t
		{0101111, "---x--x--t"}, // +xt
		{0106000, "---S--S---"}, // +s
		{0106111, "---s--s--x"}, // +xs
		{0100340, "--wxr-----"}, // u+wx,g+r
	}

	// Process test cases.
	for _, testCase := range testCases {
		testCase.run(t)
	}
}

// TestRenderAgreesWithPredicates tests that every rendering has the expected
// length and that each permission position agrees with IsAllowed. Denied
// permissions render as '-', or as 'S' or 'T' in execute positions with a
// special bit set.
func TestRenderAgreesWithPredicates(t *testing.T) {
	for _, base := range []uint32{0, 0040000, 0100000, 0170000, 0xfffe0000} {
		for bits := uint32(0); bits <= 07777; bits++ {
			value := base | bits
			rendered := String(value)
			if len(rendered) != RenderedLength {
				t.Fatalf("rendering of %o has incorrect length: %q", value, rendered)
			}
			i := 1
			for _, by := range Accessors {
				for _, access := range Accesses {
					allowed := strings.IndexByte("rwxst", rendered[i]) != -1
					if !allowed && strings.IndexByte("-ST", rendered[i]) == -1 {
						t.Fatalf("position %d of %q has unexpected character", i, rendered)
					} else if allowed != IsAllowed(by, access, value) {
						t.Fatalf("position %d of %q disagrees with %s %s permission", i, rendered, by, access)
					}
					i++
				}
			}
		}
	}
}

// TestRenderSetuidIndependence tests that toggling the setuid bit only changes
// the owner execute character.
func TestRenderSetuidIndependence(t *testing.T) {
	for bits := uint32(0); bits <= 03777; bits++ {
		without := String(0100000 | bits)
		with := String(0100000 | ModeSetuid | bits)
		for i := 0; i < RenderedLength; i++ {
			if i == 3 {
				continue
			}
			if without[i] != with[i] {
				t.Fatalf("setuid changed position %d: %s -> %s", i, without, with)
			}
		}
		if with[3] != 's' && with[3] != 'S' {
			t.Fatalf("setuid not reflected in owner execute position: %s", with)
		}
	}
}
