package ocpiformat

// Rule names double as translation and struct-tag identifiers.
const (
	NameCiString  = "ocpi_cistring"
	NameDateTime  = "ocpi_datetime"
	NameTimeOfDay = "ocpi_time"
)

// Outcome is the result of a single rule evaluation.
// Message is set only when Valid is false.
type Outcome struct {
	Valid   bool
	Message string
}

// FormatRule is a stateless predicate over one OCPI textual format.
type FormatRule interface {
	// Name identifies the rule for message lookup.
	Name() string
	// Check tests an already typed string.
	Check(s string) bool
	// Message renders the rule's violation message for the given field.
	Message(field string) string
	// Validate type-checks value and then applies Check.
	Validate(field string, value any) Outcome
}

// Shared rule values. Rules hold no state, so these may be used concurrently.
var (
	CiString  FormatRule = CiStringRule{}
	DateTime  FormatRule = DateTimeRule{}
	TimeOfDay FormatRule = TimeOfDayRule{}
)

// Rules returns every format rule in a fixed order.
func Rules() []FormatRule {
	return []FormatRule{CiStringRule{}, DateTimeRule{}, TimeOfDayRule{}}
}

// Lookup returns the rule registered under name.
func Lookup(name string) (FormatRule, bool) {
	switch name {
	case NameCiString:
		return CiStringRule{}, true
	case NameDateTime:
		return DateTimeRule{}, true
	case NameTimeOfDay:
		return TimeOfDayRule{}, true
	default:
		return nil, false
	}
}

// StringValue is the type gate shared by all rules.
func StringValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v != nil {
			return *v, true
		}
	}
	return "", false
}

func evaluate(r FormatRule, field string, value any) Outcome {
	s, ok := StringValue(value)
	if ok && r.Check(s) {
		return Outcome{Valid: true}
	}
	return Outcome{Message: r.Message(field)}
}
