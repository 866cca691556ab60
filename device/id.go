package device

// Id identifies a single device within a simulation. Ids are plain values:
// two Ids compare equal iff their underlying strings are equal, and an Id is
// usable directly as a map key.
type Id string

func (id Id) String() string {
	return string(id)
}
