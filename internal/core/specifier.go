package core

import (
	"portcullis/internal/types"
)

// parseListUntilEOF wraps an item parser into a comma-separated list
// grammar. Whitespace around separators is tolerated, empty input is an
// empty list, and the cursor must reach end of input directly after the
// last item.
func parseListUntilEOF[T any](pluralItemName string, p *textParser, item func(*textParser) (T, bool)) ([]T, bool) {
	var ret []T
	p.skipWhitespace()
	if p.atEOF() {
		return []T{}, true
	}
	for {
		parsed, ok := item(p)
		if !ok {
			return nil, false
		}
		ret = append(ret, parsed)
		p.skipWhitespace()
		if p.atEOF() {
			return ret, true
		}
		if p.cur() != ',' {
			p.addError("expected ',' or end of text in " + pluralItemName + " list")
			return nil, false
		}
		p.next()
		p.skipWhitespace()
	}
}

func parseFeatureName(p *textParser) (string, bool) {
	name := p.matchWhile(isFeatureNameChar)
	if name == "" {
		p.addError("expected feature name (must be lowercase, digits, '-', or '*')")
		return "", false
	}
	return name, true
}

func parsePackageName(p *textParser) (string, bool) {
	name := p.matchWhile(isPackageNameChar)
	if name == "" {
		p.addError("expected package name (must be lowercase, digits, '-')")
		return "", false
	}
	return name, true
}

// parseQualifiedSpecifier reads NAME ['[' feature,... ']'] [':' triplet]
// ['(' platform ')'] left to right with no backtracking.
func parseQualifiedSpecifier(p *textParser) (types.ParsedQualifiedSpecifier, bool) {
	var ret types.ParsedQualifiedSpecifier
	name, ok := parsePackageName(p)
	if !ok {
		return ret, false
	}
	ret.Name = name

	if p.cur() == '[' {
		p.next()
		for {
			p.skipWhitespace()
			feature, ok := parseFeatureName(p)
			if !ok {
				return ret, false
			}
			ret.Features = append(ret.Features, feature)
			p.skipWhitespace()
			if p.cur() == ']' {
				p.next()
				break
			}
			if p.cur() != ',' {
				p.addError("expected ',' or ']' in feature list")
				return ret, false
			}
			p.next()
		}
	}

	if p.cur() == ':' {
		p.next()
		triplet := p.matchWhile(isPackageNameChar)
		if triplet == "" {
			p.addError("expected triplet name (must be lowercase, digits, '-')")
			return ret, false
		}
		ret.Triplet = triplet
	}

	p.skipTabsSpaces()
	if p.cur() == '(' {
		loc := p.loc()
		p.next()
		depth := 1
		start := p.offset
		for depth > 0 {
			if p.atEOF() {
				p.addErrorAt("unmatched '(' in platform expression", loc)
				return ret, false
			}
			switch p.cur() {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth > 0 {
				p.next()
			}
		}
		ret.Platform = p.text[start:p.offset]
		p.next()
	}

	// The cursor stops here; list grammars and callers decide whether
	// what follows is legal.
	return ret, true
}

// ParseFeatureNameList parses a comma-separated list of plain feature
// names, as used by default-features fields.
func ParseFeatureNameList(text string, origin string, start types.TextRowCol) ([]string, error) {
	p := newTextParser(text, origin, start)
	list, ok := parseListUntilEOF("default features", p, parseFeatureName)
	if !ok {
		return nil, p.error()
	}
	return list, nil
}

// ParseQualifiedSpecifierList parses a list of full qualified
// specifiers; triplet qualifiers are legal here.
func ParseQualifiedSpecifierList(text string, origin string, start types.TextRowCol) ([]types.ParsedQualifiedSpecifier, error) {
	p := newTextParser(text, origin, start)
	list, ok := parseListUntilEOF("dependencies", p, parseQualifiedSpecifier)
	if !ok {
		return nil, p.error()
	}
	return list, nil
}

// ParseDependencyList parses a dependency list. The grammar is the
// qualified-specifier list grammar plus a semantic restriction: a
// triplet qualifier is rejected at the item's start position.
func ParseDependencyList(text string, origin string, start types.TextRowCol) ([]types.Dependency, error) {
	p := newTextParser(text, origin, start)
	list, ok := parseListUntilEOF("dependencies", p, func(p *textParser) (types.Dependency, bool) {
		loc := p.loc()
		pqs, ok := parseQualifiedSpecifier(p)
		if !ok {
			return types.Dependency{}, false
		}
		if pqs.Triplet != "" {
			p.addErrorAt("triplet specifier not allowed in this context", loc)
			return types.Dependency{}, false
		}
		return types.Dependency{Name: pqs.Name, Features: pqs.Features, Platform: pqs.Platform}, true
	})
	if !ok {
		return nil, p.error()
	}
	return list, nil
}

// ParseQualifiedSpecifier parses exactly one qualified specifier with no
// trailing text.
func ParseQualifiedSpecifier(text string, origin string) (types.ParsedQualifiedSpecifier, error) {
	p := newTextParser(text, origin, types.TextRowCol{})
	p.skipWhitespace()
	pqs, ok := parseQualifiedSpecifier(p)
	if ok {
		p.skipWhitespace()
		if !p.atEOF() {
			p.addError("expected end of text in qualified specifier")
			ok = false
		}
	}
	if !ok {
		return types.ParsedQualifiedSpecifier{}, p.error()
	}
	return pqs, nil
}
