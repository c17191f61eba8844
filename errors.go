package unmunch

import "errors"

// Sentinel errors returned by the engine and the file readers. Callers
// match them with errors.Is; detail is carried by wrapping.
var (
	// ErrMalformedCondition reports an unparseable affix condition,
	// typically an unclosed bracket class.
	ErrMalformedCondition = errors.New("malformed affix condition")

	// ErrInvalidRuleRecord reports a structurally inconsistent affix
	// rule record or block header.
	ErrInvalidRuleRecord = errors.New("invalid affix rule record")

	// ErrInvalidDictionary reports a dictionary file that cannot be
	// parsed, e.g. a missing word-count header.
	ErrInvalidDictionary = errors.New("invalid dictionary format")

	// ErrNoRuleTable is returned when the expander is invoked before a
	// rule table has been attached.
	ErrNoRuleTable = errors.New("no rule table attached")

	// ErrNoDictionary is returned by operations that need a loaded
	// dictionary when none is present.
	ErrNoDictionary = errors.New("no dictionary loaded")
)
