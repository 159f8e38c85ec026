package dekoda

// ErrorKind discriminates the failure variants of *Error. The kind is fixed
// at construction; an Error is an immutable tree whose depth mirrors the
// nesting depth of the failure.
type ErrorKind int

const (
	KindWrongType ErrorKind = iota
	KindArrayItem
	KindListItem
	KindCollectionItem
	KindDictionaryKey
	KindDictionaryValue
	KindMissingTupleEntry
	KindMissingCollectionField
	KindFailedCombining
	KindNoneOfEither
	KindNoneOfCases
	KindNoneOfEnumStates
	KindCustom
)

// Error describes why a decode failed, with a path back to the point of
// failure. It is created exactly at the failing node, bottom-up, and never
// mutated afterwards. Inner references are always *Error, never raw strings,
// except for the lines of a Custom leaf.
//
// Item and decoder ordinals (ArrayItem, ListItem, FailedCombining) are stored
// 0-based; the renderer prints them 1-based as "n°{i+1}". Both sides of that
// split are part of the contract.
type Error struct {
	kind     ErrorKind
	expected string   // WrongType
	index    int      // ArrayItem, ListItem, FailedCombining
	field    string   // CollectionItem, DictionaryKey, DictionaryValue, MissingCollectionField
	required int      // MissingTupleEntry
	enum     string   // NoneOfEnumStates
	labels   []string // NoneOfCases, NoneOfEnumStates
	lines    []string // Custom
	inner    *Error
	alts     []*Error // NoneOfEither
}

// WrongType reports a value that is not of the expected shape.
func WrongType(expected string) *Error {
	return &Error{kind: KindWrongType, expected: expected}
}

// ArrayItem wraps a failure at the given 0-based array position.
func ArrayItem(index int, inner *Error) *Error {
	return &Error{kind: KindArrayItem, index: index, inner: inner}
}

// ListItem wraps a failure at the given 0-based list position.
func ListItem(index int, inner *Error) *Error {
	return &Error{kind: KindListItem, index: index, inner: inner}
}

// CollectionItem wraps a failure under the named collection field.
func CollectionItem(field string, inner *Error) *Error {
	return &Error{kind: KindCollectionItem, field: field, inner: inner}
}

// DictionaryKey wraps a failure of a dictionary key itself.
func DictionaryKey(key string, inner *Error) *Error {
	return &Error{kind: KindDictionaryKey, field: key, inner: inner}
}

// DictionaryValue wraps a failure of the value stored under the given key.
func DictionaryValue(key string, inner *Error) *Error {
	return &Error{kind: KindDictionaryValue, field: key, inner: inner}
}

// MissingTupleEntry reports a sequence shorter than the tuple requires.
func MissingTupleEntry(required int) *Error {
	return &Error{kind: KindMissingTupleEntry, required: required}
}

// MissingCollectionField reports a declared field absent from the input.
func MissingCollectionField(field string) *Error {
	return &Error{kind: KindMissingCollectionField, field: field}
}

// FailedCombining wraps the failure of the 0-based i-th combined decoder.
func FailedCombining(index int, inner *Error) *Error {
	return &Error{kind: KindFailedCombining, index: index, inner: inner}
}

// NoneOfEither aggregates the failures of every alternative, in declaration
// order.
func NoneOfEither(alternatives []*Error) *Error {
	alts := make([]*Error, len(alternatives))
	copy(alts, alternatives)
	return &Error{kind: KindNoneOfEither, alts: alts}
}

// NoneOfCases reports that a value matched none of the candidate labels.
func NoneOfCases(labels []string) *Error {
	ls := make([]string, len(labels))
	copy(ls, labels)
	return &Error{kind: KindNoneOfCases, labels: ls}
}

// NoneOfEnumStates reports that a string is not a state of the named enum.
func NoneOfEnumStates(enum string, labels []string) *Error {
	ls := make([]string, len(labels))
	copy(ls, labels)
	return &Error{kind: KindNoneOfEnumStates, enum: enum, labels: ls}
}

// Custom builds a leaf error from caller-supplied lines.
func Custom(lines ...string) *Error {
	ls := make([]string, len(lines))
	copy(ls, lines)
	return &Error{kind: KindCustom, lines: ls}
}

// Kind returns the variant of the error node.
func (e *Error) Kind() ErrorKind { return e.kind }

// Expected returns the expected-shape label of a WrongType node.
func (e *Error) Expected() string { return e.expected }

// Index returns the 0-based ordinal of ArrayItem, ListItem and
// FailedCombining nodes.
func (e *Error) Index() int { return e.index }

// Field returns the field or key of field-tagged nodes.
func (e *Error) Field() string { return e.field }

// Required returns the entry count demanded by a MissingTupleEntry node.
func (e *Error) Required() int { return e.required }

// Enum returns the enum name of a NoneOfEnumStates node.
func (e *Error) Enum() string { return e.enum }

// Labels returns the candidate labels of NoneOfCases and NoneOfEnumStates
// nodes.
func (e *Error) Labels() []string {
	ls := make([]string, len(e.labels))
	copy(ls, e.labels)
	return ls
}

// Inner returns the nested error of wrapping nodes, nil for leaves.
func (e *Error) Inner() *Error { return e.inner }

// Alternatives returns the child errors of a NoneOfEither node, in the order
// the decoders were declared.
func (e *Error) Alternatives() []*Error {
	alts := make([]*Error, len(e.alts))
	copy(alts, e.alts)
	return alts
}

// Error renders the tree so *Error satisfies the error interface.
func (e *Error) Error() string { return e.Render() }
