package lookup

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/client"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
)

// FormState describes what the lookup form is currently showing
type FormState int

const (
	// StateEmpty means no account is loaded and no message is shown
	StateEmpty FormState = iota
	// StatePopulated means an account view is loaded and no message is shown
	StatePopulated
	// StateWarned means an explanatory message is shown
	StateWarned
)

func (s FormState) String() string {
	switch s {
	case StatePopulated:
		return "populated"
	case StateWarned:
		return "warned"
	default:
		return "empty"
	}
}

// AccountFetcher is the lookup dependency of the form
type AccountFetcher interface {
	GetAccountByAccountNumber(ctx context.Context, accountNumber string) (*client.LookupOutcome, error)
}

// Snapshot is a consistent view of the form at one point in time
type Snapshot struct {
	Account dto.AccountDetail
	Message string
	State   FormState
}

// Form holds the account lookup screen state. Leaving the account number
// field triggers one lookup; entering it again only dismisses the message.
//
// The three outcomes update the form differently:
//   - a hit replaces the whole account view but leaves any message alone
//   - a no-content answer resets the view and shows the server's explanation
//   - a failed call shows the error and leaves the view untouched
type Form struct {
	mu      sync.Mutex
	account dto.AccountDetail
	message string

	fetcher AccountFetcher
	logger  *slog.Logger
}

// NewForm creates a form showing the empty placeholder view
func NewForm(fetcher AccountFetcher, logger *slog.Logger) *Form {
	return &Form{
		account: dto.NewEmptyAccountDetail(),
		fetcher: fetcher,
		logger:  logger,
	}
}

// FocusOut runs the lookup for the entered account number and applies the
// outcome. Overlapping lookups apply in arrival order, so the last response
// wins. A blank entry is a no-op.
func (f *Form) FocusOut(ctx context.Context, accountNumber string) Snapshot {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return f.Snapshot()
	}

	outcome, err := f.fetcher.GetAccountByAccountNumber(ctx, accountNumber)

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case err != nil:
		f.logger.Warn("account lookup failed", "account_number", accountNumber, "error", err)
		f.message = err.Error()
	case outcome.NoContent:
		f.account = dto.NewEmptyAccountDetail()
		f.message = outcome.NoContentText
	default:
		// the message is deliberately left alone here; only focusing the
		// field again dismisses it
		f.account = *outcome.Account
	}

	return f.snapshotLocked()
}

// FocusIn dismisses the message and nothing else
func (f *Form) FocusIn() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.message = ""
	return f.snapshotLocked()
}

// Snapshot returns the current form state
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Form) snapshotLocked() Snapshot {
	return Snapshot{
		Account: f.account,
		Message: f.message,
		State:   f.stateLocked(),
	}
}

func (f *Form) stateLocked() FormState {
	if f.message != "" {
		return StateWarned
	}
	if f.account.IsEmpty() {
		return StateEmpty
	}
	return StatePopulated
}
