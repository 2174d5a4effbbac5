package userdir

import (
	"sort"
	"sync"
	"time"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

// Directory resolves user ids to display data and tracks members awaiting
// approval after onboarding. It is display-only: nothing in the core
// consults it for authorization.
type Directory struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{users: make(map[string]domain.User)}
}

// Add registers or replaces a member.
func (d *Directory) Add(u domain.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	d.users[u.ID] = u
}

// DisplayName returns the member's name, falling back to the raw id for
// unknown users so callers always have something to render.
func (d *Directory) DisplayName(userID string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if u, ok := d.users[userID]; ok && u.Name != "" {
		return u.Name
	}
	return userID
}

// Pending returns members awaiting leader approval, oldest first.
func (d *Directory) Pending() []domain.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var res []domain.User
	for _, u := range d.users {
		if u.Pending {
			res = append(res, u)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res
}

// Approve clears a member's pending flag. It reports whether the user was
// known.
func (d *Directory) Approve(userID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[userID]
	if !ok {
		return false
	}
	u.Pending = false
	d.users[userID] = u
	return true
}
