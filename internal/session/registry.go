package session

import (
	"fmt"

	"github.com/tellerbook/teller/internal/accounts"
)

var _ accounts.Resolver = (*registry)(nil)

// registry indexes every open account by number, in opening order.
type registry struct {
	byNumber map[string]accounts.Account
	order    []string
}

func newRegistry() registry {
	return registry{byNumber: make(map[string]accounts.Account)}
}

// Lookup returns the account with the given number.
func (r *registry) Lookup(number string) (accounts.Account, bool) {
	a, ok := r.byNumber[number]
	return a, ok
}

// taken reports an error if number is already in use.
func (r *registry) taken(number string) error {
	if a, ok := r.byNumber[number]; ok {
		return fmt.Errorf("%w: number %s is used by the %s account", ErrAlreadyExists, number, a.Kind())
	}
	return nil
}

func (r *registry) add(a accounts.Account) error {
	if err := r.taken(a.Number()); err != nil {
		return err
	}
	r.byNumber[a.Number()] = a
	r.order = append(r.order, a.Number())
	return nil
}

func (r *registry) all() []accounts.Details {
	out := make([]accounts.Details, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.byNumber[n].Describe())
	}
	return out
}
