package lexer

import "github.com/lyraproj/issue/issue"

const (
	IllegalCharacter = `LEX_ILLEGAL_CHARACTER`
)

func init() {
	issue.Hard(IllegalCharacter, `illegal character '%{char}'`)
}
