package model

import "time"

// CasualUser rides on day passes without a membership.
type CasualUser struct {
	UserID       string `validate:"required"`
	Name         string `validate:"required"`
	Email        string `validate:"required,email"`
	DayPassCount int    `validate:"gte=0"`
}

// NewCasualUser returns a validated casual user.
func NewCasualUser(userID, name, email string, dayPassCount int) (*CasualUser, error) {
	u := &CasualUser{UserID: userID, Name: name, Email: email, DayPassCount: dayPassCount}
	if err := validate.Struct(u); err != nil {
		return nil, NewValidationError("user", userID, err)
	}
	return u, nil
}

// ID returns the user id.
func (u *CasualUser) ID() string { return u.UserID }

// Type returns UserTypeCasual.
func (u *CasualUser) Type() string { return UserTypeCasual }

// MemberUser holds an active membership.
type MemberUser struct {
	UserID          string    `validate:"required"`
	Name            string    `validate:"required"`
	Email           string    `validate:"required,email"`
	MembershipStart time.Time `validate:"required"`
	MembershipEnd   time.Time `validate:"required,gtfield=MembershipStart"`
	Tier            string    `validate:"oneof=basic premium"`
}

// NewMemberUser returns a validated member. The membership end must be
// strictly after its start.
func NewMemberUser(userID, name, email string, start, end time.Time, tier string) (*MemberUser, error) {
	u := &MemberUser{
		UserID:          userID,
		Name:            name,
		Email:           email,
		MembershipStart: start,
		MembershipEnd:   end,
		Tier:            tier,
	}
	if err := validate.Struct(u); err != nil {
		return nil, NewValidationError("user", userID, err)
	}
	return u, nil
}

// ID returns the user id.
func (u *MemberUser) ID() string { return u.UserID }

// Type returns UserTypeMember.
func (u *MemberUser) Type() string { return UserTypeMember }
