package mspec

import (
	"testing"
)

// RunTests runs all suites found in dir as subtests of t. Suites that do not apply to the
// language version are skipped.
func RunTests(t *testing.T, dir string) {
	t.Helper()
	suites, err := LoadSuites(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range suites {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			ok, err := s.Applies()
			if err != nil {
				t.Fatal(err)
			}
			if !ok {
				t.Skipf(`language %s not supported`, s.Language)
			}
			for _, c := range s.Cases {
				c := c
				t.Run(c.Name, func(t *testing.T) {
					if err := c.Run(nil); err != nil {
						t.Errorf("%s\n%s", c.Source, err)
					}
				})
			}
		})
	}
}
