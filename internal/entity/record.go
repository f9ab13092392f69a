package entity

// Sentinel values used when a field could not be determined.
const (
	UnknownName = "Unknown"
	NotFound    = "Not found"
)

// ExperienceEntry is one company/role/date-range triple.
type ExperienceEntry struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	Years   string `json:"years"`
}

// CandidateRecord is one of the two independently produced partial results
// (model-based or rule-based) before merging. Contact fields are pointers so
// that "key absent" and "key present but empty" stay distinguishable; the
// merge policy depends on that distinction.
type CandidateRecord struct {
	Name       *string           `json:"name,omitempty"`
	Email      *string           `json:"email,omitempty"`
	Phone      *string           `json:"phone,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []string          `json:"education,omitempty"`
}

// Empty reports whether no field carries a value.
func (c CandidateRecord) Empty() bool {
	return c.Name == nil && c.Email == nil && c.Phone == nil &&
		len(c.Skills) == 0 && len(c.Experience) == 0 && len(c.Education) == 0
}

// FinalRecord is the reconciled result returned to the caller. Every field is
// always present: sentinel defaults stand in for anything not found, and the
// slices are non-nil so they serialize as [] rather than null.
type FinalRecord struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []string          `json:"education"`
}

func Str(s string) *string { return &s }
