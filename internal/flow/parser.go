package flow

import (
	"regexp"
	"sort"
	"strings"
)

// Step is a single parsed tool invocation in a flow script.
type Step struct {
	Tag      string
	Argument string
	Body     string
	StartPos int
	EndPos   int
	Original string
}

// Parser extracts tool invocations from a flow script. Scripts are tag
// sequences like <read notes.txt> or <write out.txt>content</write>; the
// parser recognizes the tags and nothing else, so a script can never
// reach beyond the tool table it is dispatched against.
type Parser struct {
	simplePattern *regexp.Regexp
	blockPattern  *regexp.Regexp
}

// NewParser creates a flow script parser.
func NewParser() *Parser {
	return &Parser{
		simplePattern: regexp.MustCompile(`<(read|delete|ingest|search)(?:\s+([^>]*))?>`),
		blockPattern:  regexp.MustCompile(`(?s)<(write|append)\s+([^>]+)>\s*(.*?)</(?:write|append)>`),
	}
}

// Parse returns every step in the script in document order.
func (p *Parser) Parse(script string) []Step {
	var steps []Step

	for _, match := range p.blockPattern.FindAllStringSubmatchIndex(script, -1) {
		if len(match) < 8 {
			continue
		}
		steps = append(steps, Step{
			Tag:      script[match[2]:match[3]],
			Argument: strings.TrimSpace(script[match[4]:match[5]]),
			Body:     strings.TrimSpace(script[match[6]:match[7]]),
			StartPos: match[0],
			EndPos:   match[1],
			Original: script[match[0]:match[1]],
		})
	}

	for _, match := range p.simplePattern.FindAllStringSubmatchIndex(script, -1) {
		if len(match) < 6 {
			continue
		}
		if p.insideBlock(steps, match[0]) {
			continue
		}
		argument := ""
		if match[4] >= 0 {
			argument = strings.TrimSpace(script[match[4]:match[5]])
		}
		steps = append(steps, Step{
			Tag:      script[match[2]:match[3]],
			Argument: argument,
			StartPos: match[0],
			EndPos:   match[1],
			Original: script[match[0]:match[1]],
		})
	}

	sort.Slice(steps, func(i, j int) bool {
		return steps[i].StartPos < steps[j].StartPos
	})
	return steps
}

// insideBlock reports whether a simple-tag match starts inside an already
// parsed write/append block, e.g. a literal <read x> in written content.
func (p *Parser) insideBlock(blocks []Step, pos int) bool {
	for _, b := range blocks {
		if pos > b.StartPos && pos < b.EndPos {
			return true
		}
	}
	return false
}
