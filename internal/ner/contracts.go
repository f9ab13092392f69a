package ner

// Entity is one labeled span found by the recognizer, in document order.
type Entity struct {
	Label string
	Text  string
}

// PersonLabel is the entity label assigned to people.
const PersonLabel = "PERSON"

// Recognizer finds named entities in free text. Implementations must be safe
// for concurrent use; the pipeline shares one instance across requests.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)
}

// FirstPerson returns the text span of the first entity labeled as a person,
// or "" if none.
func FirstPerson(entities []Entity) string {
	for _, e := range entities {
		if e.Label == PersonLabel {
			return e.Text
		}
	}
	return ""
}
