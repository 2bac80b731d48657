package models

// Pin is a candidate local-access PIN as typed by the user. It is never
// stored; only its salted hash is.
type Pin string

// String masks the PIN so it cannot leak through logs or fmt verbs.
func (p Pin) String() string {
	return "****"
}

// GoString masks the PIN for the %#v verb.
func (p Pin) GoString() string {
	return `models.Pin("****")`
}
