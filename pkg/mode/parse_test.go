package mode

import (
	"testing"
)

// parseTestCase represents a test case for Parse.
type parseTestCase struct {
	// value is the value to parse.
	value string
	// expectFailure indicates whether or not parsing failure is expected.
	expectFailure bool
	// expected indicates the expected result in the absence of failure.
	expected uint32
}

// run executes the test in the provided test context.
func (c *parseTestCase) run(t *testing.T) {
	// Mark ourselves as a helper function.
	t.Helper()

	// Perform parsing and verify that the expected behavior is observed.
	if result, err := Parse(c.value); err == nil && c.expectFailure {
		t.Errorf("parsing of %q succeeded when failure was expected", c.value)
	} else if err != nil && !c.expectFailure {
		t.Errorf("parsing of %q failed unexpectedly: %v", c.value, err)
	} else if result != c.expected {
		t.Errorf("parsing result for %q does not match expected: %o != %o", c.value, result, c.expected)
	}
}

// TestParse tests parsing of octal and symbolic specifications.
func TestParse(t *testing.T) {
	// Define test cases.
	testCases := []*parseTestCase{
		{value: "", expectFailure: true},
		{value: "0o", expectFailure: true},
		{value: "laksjfd", expectFailure: true},
		{value: "0888", expectFailure: true},
		{value: "45201371000", expectFailure: true},
		{value: "755", expected: 0755},
		{value: "0040755", expected: 0040755},
		{value: "00644", expected: 0644},
		{value: "0o100640", expected: 0100640},
		{value: "37777777777", expected: 0xffffffff},
		{value: "0000001777", expected: 01777},
		{value: "drwxr-xr-x", expected: 0040755},
		{value: "-rw-r-----", expected: 0100640},
		{value: "drwxrwxrwt", expected: 0041777},
		{value: "---S--S---", expected: 0106000},
		{value: "---s--s--x", expected: 0106111},
		{value: "---------T", expected: 0101000},
		{value: "?rw-r--r--", expected: 0644},
		{value: "xrwxrwxrwx", expectFailure: true},
		{value: "drwxrwxrws", expectFailure: true},
		{value: "dxwxrwxrwx", expectFailure: true},
		{value: "drrxrwxrwx", expectFailure: true},
		{value: "drwtrwxrwx", expectFailure: true},
		{value: "drwxrwxrw", expectFailure: true},
	}

	// Process test cases.
	for _, testCase := range testCases {
		testCase.run(t)
	}
}

// TestParseSymbolicRoundTrip tests that every rendering of a mode with a
// recognized (or zero) type code parses back to the original value.
func TestParseSymbolicRoundTrip(t *testing.T) {
	for _, ty := range []Type{
		TypeUnknown, TypeFile, TypeDir, TypeSymlink, TypeSocket,
		TypeFifo, TypeBlockDevice, TypeCharDevice, TypeWhiteout,
	} {
		for bits := uint32(0); bits <= 07777; bits++ {
			value := ty.code() | bits
			rendered := String(value)
			if result, err := ParseSymbolic(rendered); err != nil {
				t.Fatalf("unable to parse rendering %q: %v", rendered, err)
			} else if result != value {
				t.Fatalf("round trip of %07o via %q produced %07o", value, rendered, result)
			}
		}
	}
}
