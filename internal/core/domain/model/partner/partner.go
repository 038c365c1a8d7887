package partner

import (
	"errors"
	"strings"
	"unicode"

	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/pkg/errs"
	"freshcart/internal/pkg/guard"
)

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	ErrPhoneIsInvalid  = errs.NewValueIsInvalidError("phone")
	// ErrPartnerIsInactive is returned when an inactive partner is asked to deliver.
	ErrPartnerIsInactive = errs.NewInvalidStateError("delivery partner is inactive")

	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
)

// Partner is a delivery partner. New partners start active.
//
// Example:
//
//	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi Kumar", "+91 98450 12345")
//	if err != nil {
//	    return err
//	}
type Partner struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool
	guard  guard.ConstructorGuard
}

// NewPartner registers an active partner.
func NewPartner(id kernel.UUID, name, phone string) (*Partner, error) {
	return RestorePartner(id, name, phone, true)
}

// RestorePartner rebuilds a partner from storage.
func RestorePartner(id kernel.UUID, name, phone string, active bool) (*Partner, error) {
	p := &Partner{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// IsEqual compares partners by identity.
func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) ID() kernel.UUID {
	return p.id
}

func (p *Partner) Name() string {
	return p.name
}

func (p *Partner) Phone() string {
	return p.phone
}

func (p *Partner) IsActive() bool {
	return p.active
}

func (p *Partner) Activate() {
	p.active = true
}

// Deactivate takes the partner off the dispatch roster. Orders already handed
// over stay with them.
func (p *Partner) Deactivate() {
	p.active = false
}

// ValidateCanDeliver checks that the partner may be assigned a new order.
func (p *Partner) ValidateCanDeliver() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.active {
		return ErrPartnerIsInactive
	}
	return nil
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

// setPhone accepts digits with an optional leading "+" and common separators.
func (p *Partner) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}

	digits := 0
	for i, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return ErrPhoneIsInvalid
		}
	}
	if digits < 7 || digits > 15 {
		return ErrPhoneIsInvalid
	}

	p.phone = phone
	return nil
}
