package extension

import "encoding/json"

// Cell is one value emitted for an extension property. The concrete types
// marshal to the data-extension wire shapes: {"str": …}, {"int": …},
// {"float": …}, and {"id": …, "name": …}.
type Cell interface {
	json.Marshaler
	cell()
}

// TextCell carries a plain string value.
type TextCell string

func (TextCell) cell() {}

func (c TextCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Str string `json:"str"`
	}{string(c)})
}

// IntCell carries an integer value. The extraction rules never construct
// one from the catalog's zero sentinel.
type IntCell int64

func (IntCell) cell() {}

func (c IntCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Int int64 `json:"int"`
	}{int64(c)})
}

// DecimalCell carries a floating-point value. Zero is legitimate.
type DecimalCell float64

func (DecimalCell) cell() {}

func (c DecimalCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Float float64 `json:"float"`
	}{float64(c)})
}

// EntityCell carries a named thing the client can render as a linkable,
// reconcilable reference. ID must be stable across calls for the same
// underlying entity (a numeric TMDB id, or an ISO code for countries).
type EntityCell struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (EntityCell) cell() {}

func (c EntityCell) MarshalJSON() ([]byte, error) {
	type plain EntityCell
	return json.Marshal(plain(c))
}
