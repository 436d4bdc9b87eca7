package ledger

// Registry is the read-only chart of accounts index. Lookup misses
// resolve to the CategoryNone sentinel rather than an error so that one
// corrupt reference cannot abort a statement computation; callers
// surface the degraded state as a diagnostic count.
type Registry struct {
	accounts []Account
	byID     map[string]int
	roles    map[AccountRole]string
}

// NewRegistry indexes the given accounts. Input order is preserved and
// becomes the stable presentation order for every derived statement.
// Later duplicates of an account ID are ignored.
func NewRegistry(accounts []Account, roles map[AccountRole]string) *Registry {
	r := &Registry{
		byID:  make(map[string]int, len(accounts)),
		roles: make(map[AccountRole]string, len(roles)),
	}
	for _, acc := range accounts {
		if acc.ID == "" {
			continue
		}
		if _, ok := r.byID[acc.ID]; ok {
			continue
		}
		r.byID[acc.ID] = len(r.accounts)
		r.accounts = append(r.accounts, acc)
	}
	for role, id := range roles {
		if _, ok := r.byID[id]; ok {
			r.roles[role] = id
		}
	}
	return r
}

// Lookup returns the account for the ID.
func (r *Registry) Lookup(id string) (Account, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Account{}, false
	}
	return r.accounts[idx], true
}

// CategoryOf resolves the account's category, CategoryNone on a miss.
func (r *Registry) CategoryOf(id string) Category {
	acc, ok := r.Lookup(id)
	if !ok {
		return CategoryNone
	}
	return acc.Category
}

// NameOf resolves the display name, falling back to the raw ID for
// unknown references so ledger particulars always render something.
func (r *Registry) NameOf(id string) string {
	acc, ok := r.Lookup(id)
	if !ok {
		return id
	}
	return acc.Name
}

// Accounts returns all accounts in registration order.
func (r *Registry) Accounts() []Account {
	return r.accounts
}

// ByRole resolves a well-known account role to its account.
func (r *Registry) ByRole(role AccountRole) (Account, bool) {
	id, ok := r.roles[role]
	if !ok {
		return Account{}, false
	}
	return r.Lookup(id)
}

// HasRole reports whether the account carries the given role.
func (r *Registry) HasRole(id string, role AccountRole) bool {
	return r.roles[role] == id
}
