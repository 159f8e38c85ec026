package dekoda

import (
	"fmt"
	"strings"
)

// LineKind discriminates the render instructions produced by RawLines.
type LineKind int

const (
	// LineText is a literal line, emitted as-is.
	LineText LineKind = iota
	// LineFormat is a format string plus arguments, interpolated at render
	// time so a caller can substitute its own formatter first.
	LineFormat
	// LineNested references a nested error whose own rendering is indented
	// by one tab.
	LineNested
	// LineBlock is a raw list of pre-rendered lines, emitted verbatim.
	LineBlock
)

// Line is one render instruction. RawLines keeps structure and presentation
// apart: nothing is interpolated or indented until RenderLines runs.
type Line struct {
	Kind   LineKind
	Text   string // LineText literal, or LineFormat format string
	Args   []any  // LineFormat arguments
	Nested *Error // LineNested target
	Block  []string
}

func text(s string) Line                 { return Line{Kind: LineText, Text: s} }
func formatf(f string, args ...any) Line { return Line{Kind: LineFormat, Text: f, Args: args} }
func nested(e *Error) Line               { return Line{Kind: LineNested, Nested: e} }
func block(lines []string) Line          { return Line{Kind: LineBlock, Block: lines} }

// RawLines flattens the node into render instructions without interpolating
// parameters. NoneOfEither emits every alternative, each behind an ordinal
// marker, because breadth of diagnosis beats brevity there.
func (e *Error) RawLines() []Line {
	switch e.kind {
	case KindWrongType:
		return []Line{formatf("expected %s", e.expected)}
	case KindArrayItem:
		return []Line{formatf("error at item n°%d:", e.index+1), nested(e.inner)}
	case KindListItem:
		return []Line{formatf("error at list item n°%d:", e.index+1), nested(e.inner)}
	case KindCollectionItem:
		return []Line{formatf("error at field %q:", e.field), nested(e.inner)}
	case KindDictionaryKey:
		return []Line{formatf("error at dictionary key %q:", e.field), nested(e.inner)}
	case KindDictionaryValue:
		return []Line{formatf("error at dictionary value %q:", e.field), nested(e.inner)}
	case KindMissingTupleEntry:
		return []Line{formatf("expected at least %d items in the tuple", e.required)}
	case KindMissingCollectionField:
		return []Line{formatf("missing field %q", e.field)}
	case KindFailedCombining:
		return []Line{formatf("failed with decoder n°%d:", e.index+1), nested(e.inner)}
	case KindNoneOfEither:
		out := make([]Line, 0, 1+2*len(e.alts))
		out = append(out, text("none of the decoders matched:"))
		for i, alt := range e.alts {
			if i == 0 {
				out = append(out, formatf("with decoder n°%d:", i+1))
			} else {
				out = append(out, formatf("as well as with decoder n°%d:", i+1))
			}
			out = append(out, nested(alt))
		}
		return out
	case KindNoneOfCases:
		return []Line{formatf("expected one of: %s", strings.Join(e.labels, ", "))}
	case KindNoneOfEnumStates:
		return []Line{formatf("expected a state of %s, one of: %s", e.enum, strings.Join(e.labels, ", "))}
	case KindCustom:
		return []Line{block(e.lines)}
	default:
		return []Line{text("unknown decoding error")}
	}
}

// RenderLines resolves the instructions of RawLines into text lines. Every
// line of a nested error is indented by exactly one tab relative to its
// parent.
func (e *Error) RenderLines() []string {
	raw := e.RawLines()
	out := make([]string, 0, len(raw))
	for _, ln := range raw {
		switch ln.Kind {
		case LineText:
			out = append(out, ln.Text)
		case LineFormat:
			out = append(out, fmt.Sprintf(ln.Text, ln.Args...))
		case LineNested:
			for _, sub := range ln.Nested.RenderLines() {
				out = append(out, "\t"+sub)
			}
		case LineBlock:
			out = append(out, ln.Block...)
		}
	}
	return out
}

// Render joins RenderLines with newlines. The output is meant for humans,
// not for machine consumption.
func (e *Error) Render() string { return strings.Join(e.RenderLines(), "\n") }
