package bundlecodec

import "fmt"

type symbol int

const (
	symColon symbol = iota
	symPipe
	symUnderscore
	symEqual
	symString
)

type token struct {
	sym   symbol
	value string
	pos   int
}

// tokenize ports ks001.py's _symbol_generator: it walks the input
// character by character, accumulating runs of ordinary characters into
// STRING tokens and recognizing a separator rune as a delimiter token
// unless it is immediately doubled, in which case the doubled pair is an
// escaped literal occurrence folded into the current STRING.
func tokenize(input string, sep Separators) []token {
	runes := []rune(input)
	specialOf := func(r rune) (symbol, bool) {
		switch r {
		case sep.Colon:
			return symColon, true
		case sep.Pipe:
			return symPipe, true
		case sep.Underscore:
			return symUnderscore, true
		case sep.Equal:
			return symEqual, true
		}
		return 0, false
	}

	var tokens []token
	i := 0
	building := false
	var value []rune

	for i < len(runes) {
		isLast := i == len(runes)-1
		if building {
			if sym, isSpecial := specialOf(runes[i]); isSpecial {
				if isLast {
					tokens = append(tokens, token{symString, string(value), i})
					building = false
					value = nil
					continue
				}
				if runes[i] == runes[i+1] {
					value = append(value, runes[i])
					i += 2
					continue
				}
				tokens = append(tokens, token{symString, string(value), i})
				building = false
				value = nil
				_ = sym
				continue
			}
			value = append(value, runes[i])
			if isLast {
				tokens = append(tokens, token{symString, string(value), i})
				building = false
				value = nil
			}
			i++
			continue
		}

		if sym, isSpecial := specialOf(runes[i]); isSpecial {
			if isLast {
				tokens = append(tokens, token{sym, string(runes[i]), i})
				i++
				continue
			}
			if runes[i] == runes[i+1] {
				building = true
				value = append(value, runes[i])
				i += 2
				continue
			}
			tokens = append(tokens, token{sym, string(runes[i]), i})
			i++
			continue
		}

		building = true
		value = append(value, runes[i])
		i++
	}

	return tokens
}

type parseState int

const (
	stateInit parseState = iota
	stateNewDict
	stateNewPair
	stateEndPair
)

// ParseOptions configures Parse's aliasing inputs. Parsing resolves any
// alias it encounters back to its official name before storing the
// key/value pair.
type ParseOptions struct {
	Separators   Separators
	KeyAliases   map[string]string // official name -> alias (resolved alias->name during parse)
	ValueAliases map[string]string
}

// DefaultParseOptions mirrors Dump's defaults: default separators, no
// alias tables.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Separators: DefaultSeparators()}
}

func resolveAlias(aliases map[string]string, s string) string {
	if _, ok := aliases[s]; ok {
		return s
	}
	for name, alias := range aliases {
		if alias == s {
			return name
		}
	}
	return s
}

// Parse parses s into a Document, per the grammar in doc.go. Lexical or
// structural violations return ErrLexical, except a pipe directly after '='
// in an unnamed dictionary, which returns ErrEmptyUnnamedDict; a key alias
// in opts that collides with another returns ErrDuplicateAlias.
func Parse(s string, opts ParseOptions) (*Document, error) {
	result := New()
	for name, alias := range opts.KeyAliases {
		if err := result.SetKeyAlias(name, alias); err != nil {
			return nil, err
		}
	}
	for key, alias := range opts.ValueAliases {
		result.ValueAliases[key] = alias
	}

	tokens := tokenize(s, opts.Separators)

	state := stateInit
	var dictLabel string
	hasDictLabel := false
	dictIndex := 0
	var firstString string
	var keyStr string
	nextIsKey := false
	nextIsValue := false

	for _, tk := range tokens {
		switch state {
		case stateInit:
			switch tk.sym {
			case symString:
				result.Identifier = tk.value
				result.HasIdentifier = true
			case symPipe:
				state = stateNewDict
			default:
				return nil, fmt.Errorf("%w: expected identifier or '|' at %d", ErrLexical, tk.pos)
			}

		case stateNewDict:
			switch tk.sym {
			case symString:
				firstString = tk.value
			case symEqual:
				keyStr = firstString
				nextIsKey, nextIsValue = false, true
				state = stateNewPair
			case symColon:
				dictLabel, hasDictLabel = firstString, true
				nextIsKey, nextIsValue = true, false
				state = stateNewPair
			default:
				return nil, fmt.Errorf("%w: unexpected token at %d while starting a dictionary", ErrLexical, tk.pos)
			}

		case stateNewPair:
			switch tk.sym {
			case symString:
				if nextIsKey {
					keyStr = tk.value
				} else if nextIsValue {
					valueStr := tk.value
					resolvedKey := resolveAlias(result.KeyAliases, keyStr)
					resolvedValue := valueStr
					prefix := resolvedKey + "="
					for key, alias := range result.ValueAliases {
						if alias == valueStr && len(key) > len(prefix) && key[:len(prefix)] == prefix {
							resolvedValue = key[len(prefix):]
							break
						}
					}
					if hasDictLabel {
						result.AddKeyValue(dictLabel, resolvedKey, resolvedValue)
					} else {
						result.AddKeyValueAt(dictIndex, resolvedKey, resolvedValue)
					}
					state = stateEndPair
				} else {
					return nil, fmt.Errorf("%w: ambiguous string at %d", ErrLexical, tk.pos)
				}
			case symEqual:
				if keyStr == "" {
					return nil, fmt.Errorf("%w: '=' without a preceding key at %d", ErrLexical, tk.pos)
				}
				nextIsKey, nextIsValue = false, true
			case symPipe:
				if !hasDictLabel {
					return nil, fmt.Errorf("%w: empty unnamed dictionary at %d", ErrEmptyUnnamedDict, tk.pos)
				}
				keyStr = ""
				nextIsKey, nextIsValue = true, false
				result.AddEmptyNamedDict(dictLabel)
				state = stateNewDict
			default:
				return nil, fmt.Errorf("%w: unexpected token at %d while building a pair", ErrLexical, tk.pos)
			}

		case stateEndPair:
			switch tk.sym {
			case symUnderscore:
				keyStr = ""
				nextIsKey, nextIsValue = true, false
				state = stateNewPair
			case symPipe:
				keyStr = ""
				nextIsKey, nextIsValue = false, false
				dictIndex++
				dictLabel, hasDictLabel = "", false
				firstString = ""
				state = stateNewDict
			default:
				return nil, fmt.Errorf("%w: expected '_' or '|' at %d", ErrLexical, tk.pos)
			}
		}
	}

	return result, nil
}
