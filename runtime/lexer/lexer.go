package lexer

import (
	"log/slog"
	"os"
	"unicode"
)

// Analyzer drives an ordered ruleset over a State, one token per call. It is
// single-pass and restartable from any state; the rules themselves carry no
// state between calls.
type Analyzer struct {
	rules  []Rule
	logger *slog.Logger
}

// NewAnalyzer builds an analyzer over the default ruleset.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWith(DefaultRules())
}

// NewAnalyzerWith builds an analyzer over a custom ruleset, probed in slice
// order.
func NewAnalyzerWith(rules []Rule) *Analyzer {
	return &Analyzer{
		rules:  rules,
		logger: newDebugLogger("CHERRY_DEBUG_LEXER"),
	}
}

// Tokenize skips whitespace and dispatches the remaining source to the first
// rule whose litmus accepts it. At the end of the source it produces an EOS
// token; when every rule declines it reports NotMyToken.
func (a *Analyzer) Tokenize(st *State) (Token, Errc) {
	skipWhitespace(st)
	if st.EndOfSource() {
		st.StartToken()
		return st.ExtractToken(EOS), Success
	}
	remaining := st.RemainingSource()
	for _, rule := range a.rules {
		if !rule.Litmus(remaining) {
			continue
		}
		a.logger.Debug("rule accepted",
			"rule", ruleName(rule),
			"line", st.Line,
			"column", st.Column)
		return rule.Tokenize(st)
	}
	return Token{}, NotMyToken
}

// TokenizeAll drains the state into a slice ending with the EOS token. On a
// rule failure it returns the tokens produced so far along with the error.
func (a *Analyzer) TokenizeAll(st *State) ([]Token, Errc) {
	var tokens []Token
	for {
		tkn, err := a.Tokenize(st)
		if err != Success {
			return tokens, err
		}
		tokens = append(tokens, tkn)
		if tkn.Type == EOS {
			return tokens, Success
		}
	}
}

func skipWhitespace(st *State) {
	for !st.EndOfSource() && unicode.IsSpace(st.CurrChar()) {
		st.ReadChar()
	}
}

func ruleName(rule Rule) string {
	switch rule.(type) {
	case CommentRule:
		return "comment"
	case KeywordRule:
		return "keyword"
	case BinaryRule:
		return "binary"
	case OctalRule:
		return "octal"
	case DecimalRule:
		return "decimal"
	case HexadecimalRule:
		return "hexadecimal"
	case CharacterRule:
		return "character"
	case StringRule:
		return "string"
	case OperatorRule:
		return "operator"
	default:
		return "custom"
	}
}

// newDebugLogger builds a stderr text logger whose level is debug when the
// named environment variable is set. Timestamp and level attributes are
// stripped to keep trace output readable next to source snippets.
func newDebugLogger(envVar string) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv(envVar) != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
