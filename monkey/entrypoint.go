package monkey

import (
	"github.com/lyraproj/monkey-evaluator/ast"
	"github.com/lyraproj/monkey-evaluator/eval"
	"github.com/lyraproj/monkey-evaluator/evaluator"
	"github.com/lyraproj/monkey-evaluator/lexer"
	"github.com/lyraproj/monkey-evaluator/parser"
	"github.com/lyraproj/monkey-evaluator/token"
	"github.com/lyraproj/semver/semver"
)

// LanguageVersion is the version of the language implemented by this module
var LanguageVersion = semver.MustParseVersion(`1.0.0`)

// Result is the outcome of running one source through the lexer, the parser, and the
// evaluator. Value is nil unless all three succeeded.
type Result struct {
	Name        string
	Program     *ast.Program
	ParseErrors []string
	Value       eval.Value
	Err         error
}

// Failed returns true when the source could not be lexed, parsed, or evaluated
func (r *Result) Failed() bool {
	return r.Err != nil || len(r.ParseErrors) > 0
}

// Tokens returns the tokens of src up to and including the EOF token. Lexing stops at the
// first illegal character, in which case the illegal token is the last one returned and
// the error describes it.
func Tokens(src string) ([]token.Token, error) {
	ts, err := lexer.Tokens(src)
	if err != nil {
		return ts, err
	}
	return ts, nil
}

// Parse parses src and returns the program together with its parse errors
func Parse(src string) (*ast.Program, []string, error) {
	return parser.Parse(src)
}

// Eval parses and evaluates src. Parse errors are returned as one combined error and
// prevent evaluation.
func Eval(src string) (eval.Value, error) {
	r := Run(``, src, nil)
	return r.Value, r.Err
}

// Run parses and evaluates src and logs through logger. A nil logger discards all output.
func Run(name, src string, logger eval.Logger) *Result {
	if logger == nil {
		logger = eval.NewNoopLogger()
	}
	r := &Result{Name: name}
	p := parser.New(lexer.New(src))
	r.Program, r.Err = p.ParseProgram()
	r.ParseErrors = p.Errors()
	if r.Err != nil {
		return r
	}
	if len(r.ParseErrors) > 0 {
		for _, i := range p.Issues() {
			logger.LogIssue(i)
		}
		r.Err = p.Err()
		return r
	}
	r.Value, r.Err = evaluator.New(logger).Evaluate(r.Program)
	return r
}

// Supports returns true when the language version is included in the given version range
func Supports(versionRange string) (bool, error) {
	vr, err := semver.ParseVersionRange(versionRange)
	if err != nil {
		return false, err
	}
	return vr.Includes(LanguageVersion), nil
}
