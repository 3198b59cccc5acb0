// Package mspec runs suites of language examples described in YAML files. Each case holds a
// source and the outcome expected from parsing and evaluating it.
package mspec

import (
	"context"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/lyraproj/monkey-evaluator/monkey"
	"github.com/lyraproj/monkey-evaluator/yaml"
	"golang.org/x/sync/errgroup"
	ym "gopkg.in/yaml.v2"
)

type (
	Suite struct {
		Name string `yaml:"name"`

		// Language is a semantic version range. The suite is skipped when the range does not
		// include monkey.LanguageVersion.
		Language string  `yaml:"language"`
		Cases    []*Case `yaml:"cases"`

		path string
	}

	// Case is one example. All expectations that are given must hold. A case without error
	// or parse_errors expectations must run without failure.
	Case struct {
		Name   string `yaml:"name"`
		Source string `yaml:"source"`

		// Result is the YAML text of the expected value
		Result string `yaml:"result"`

		// Rendered is the expected canonical rendering of the parsed program
		Rendered string `yaml:"rendered"`

		// Error is the expected issue code and Message a part of the expected message
		Error   string `yaml:"error"`
		Message string `yaml:"message"`

		ParseErrors []string `yaml:"parse_errors"`
	}

	Outcome struct {
		Suite *Suite
		Case  *Case
		Err   error
	}
)

// LoadSuite reads the suite in the YAML file at path
func LoadSuite(path string) (*Suite, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := &Suite{path: path}
	if err = ym.UnmarshalStrict(data, s); err != nil {
		return nil, issue.NewReported(SuiteParseError, issue.SEVERITY_ERROR, issue.H{`path`: path, `detail`: err.Error()}, nil)
	}
	if s.Name == `` {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	for i, c := range s.Cases {
		if c.Name == `` {
			c.Name = fmt.Sprintf(`case %d`, i+1)
		}
	}
	return s, nil
}

// LoadSuites reads all files with extension .yaml in dir in lexical order
func LoadSuites(dir string) ([]*Suite, error) {
	paths, err := filepath.Glob(filepath.Join(dir, `*.yaml`))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	suites := make([]*Suite, 0, len(paths))
	for _, path := range paths {
		s, err := LoadSuite(path)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

func (s *Suite) Path() string {
	return s.path
}

// Applies returns true when the suite's language range includes the language version
func (s *Suite) Applies() (bool, error) {
	if s.Language == `` {
		return true, nil
	}
	ok, err := monkey.Supports(s.Language)
	if err != nil {
		return false, issue.NewReported(BadLanguageRange, issue.SEVERITY_ERROR, issue.H{`suite`: s.Name, `range`: s.Language, `detail`: err.Error()}, nil)
	}
	return ok, nil
}

// Run runs all cases of the suite with at most parallelism cases running at the same time.
// Outcomes are returned in case order. Cases that had not started when ctx was cancelled
// get the context error as their outcome.
func (s *Suite) Run(ctx context.Context, parallelism int) []*Outcome {
	if parallelism < 1 {
		parallelism = 1
	}
	outcomes := make([]*Outcome, len(s.Cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, c := range s.Cases {
		i, c := i, c
		g.Go(func() error {
			o := &Outcome{Suite: s, Case: c}
			if err := ctx.Err(); err != nil {
				o.Err = err
			} else {
				o.Err = c.Run(nil)
			}
			outcomes[i] = o
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// Run runs the case and returns an error that describes every unmet expectation
func (c *Case) Run(logger eval.Logger) error {
	r := monkey.Run(c.Name, c.Source, logger)
	var result *multierror.Error
	mismatch := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}

	expectFailure := c.Error != `` || len(c.ParseErrors) > 0
	if !expectFailure && r.Failed() {
		if r.Err != nil {
			mismatch(`unexpected failure: %s`, r.Err)
		}
		for _, pe := range r.ParseErrors {
			mismatch(`unexpected parse error: %s`, pe)
		}
		return result.ErrorOrNil()
	}

	if len(c.ParseErrors) > 0 {
		if diff := cmp.Diff(c.ParseErrors, r.ParseErrors); diff != `` {
			mismatch("parse errors mismatch (-want +got):\n%s", diff)
		}
	}

	if c.Rendered != `` && r.Program != nil {
		if got := r.Program.String(); got != c.Rendered {
			mismatch(`expected rendering '%s', got '%s'`, c.Rendered, got)
		}
	}

	if c.Error != `` {
		switch err := r.Err.(type) {
		case nil:
			mismatch(`expected error %s, got value %v`, c.Error, r.Value)
		case issue.Reported:
			if string(err.Code()) != c.Error {
				mismatch(`expected error %s, got %s: %s`, c.Error, err.Code(), err.Error())
			} else if c.Message != `` && !strings.Contains(err.Error(), c.Message) {
				mismatch(`expected error message to contain '%s', got '%s'`, c.Message, err.Error())
			}
		default:
			mismatch(`expected error %s, got %s`, c.Error, err)
		}
	}

	if c.Result != `` {
		expected, err := yaml.Unmarshal([]byte(c.Result))
		switch {
		case err != nil:
			mismatch(`bad result expectation: %s`, err)
		case r.Value == nil:
			mismatch(`expected %s, got no value`, expected)
		case !expected.Equals(r.Value):
			mismatch(`expected %s %s, got %s %s`, expected.Type(), expected, r.Value.Type(), r.Value)
		}
	}
	return result.ErrorOrNil()
}
