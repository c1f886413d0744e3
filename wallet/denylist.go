package wallet

// DenyList is a set of address strings a deployment refuses to deal
// with, for example wallets known to belong to an exit scam. It is
// policy, not codec logic: callers consult it after an address has
// already decoded and validated.
type DenyList struct {
	blocked map[string]struct{}
}

func NewDenyList(addrs ...string) *DenyList {
	d := &DenyList{blocked: make(map[string]struct{}, len(addrs))}
	for _, a := range addrs {
		d.blocked[a] = struct{}{}
	}
	return d
}

func (d *DenyList) Blocked(addr string) bool {
	if d == nil {
		return false
	}
	_, ok := d.blocked[addr]
	return ok
}
