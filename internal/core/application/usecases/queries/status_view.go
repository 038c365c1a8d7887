package queries

import (
	"freshcart/internal/core/domain/model/order"
)

// StatusView is how a stored status string is presented to readers.
type StatusView struct {
	Code   string
	Label  string
	Bucket order.Bucket
}

// describeStatus presents a stored status. Known spellings are reported in
// their canonical form; anything else keeps its raw text and is bucketed by
// the lenient classifier so that a bad row never breaks a listing.
func describeStatus(raw string) StatusView {
	s, err := order.ParseStatus(raw)
	if err != nil {
		return StatusView{
			Code:   raw,
			Label:  raw,
			Bucket: order.Classify(raw),
		}
	}
	return StatusView{
		Code:   s.String(),
		Label:  s.Label(),
		Bucket: s.Bucket(),
	}
}
