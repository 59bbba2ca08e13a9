package entity

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func (u User) Clone() User {
	u.Email = cloneString(u.Email)
	return u
}

func (t Tour) Clone() Tour {
	if t.IsActive != nil {
		v := *t.IsActive
		t.IsActive = &v
	}
	if t.Images != nil {
		t.Images = append(StringList{}, t.Images...)
	}
	return t
}

func (c Customer) Clone() Customer {
	c.Phone = cloneString(c.Phone)
	c.Nationality = cloneString(c.Nationality)
	c.Notes = cloneString(c.Notes)
	if c.PassportDetails != nil {
		p := *c.PassportDetails
		c.PassportDetails = &p
	}
	return c
}

func (b Booking) Clone() Booking {
	b.Notes = cloneString(b.Notes)
	return b
}

func (p Payment) Clone() Payment {
	p.TransactionRef = cloneString(p.TransactionRef)
	return p
}
