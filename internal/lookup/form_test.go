package lookup

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/client"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// stubFetcher returns canned outcomes keyed by account number
type stubFetcher struct {
	outcomes map[string]*client.LookupOutcome
	errs     map[string]error
	calls    []string
}

func (s *stubFetcher) GetAccountByAccountNumber(_ context.Context, accountNumber string) (*client.LookupOutcome, error) {
	s.calls = append(s.calls, accountNumber)
	if err, ok := s.errs[accountNumber]; ok {
		return nil, err
	}
	return s.outcomes[accountNumber], nil
}

// FormSuite defines the test suite for the lookup form
type FormSuite struct {
	suite.Suite
	fetcher *stubFetcher
	form    *Form
}

// SetupTest runs before each test in the suite
func (s *FormSuite) SetupTest() {
	s.fetcher = &stubFetcher{
		outcomes: map[string]*client.LookupOutcome{
			"12345": {
				Account: &dto.AccountDetail{
					AccountID:      "3a7e8b9e-5b5e-4c8c-9a46-1f7a2d3a4b5c",
					AccountNumber:  "12345",
					AccountTitle:   "John Doe",
					CurrentBalance: decimal.NewFromFloat(1000.50),
					AccountStatus:  models.AccountStatusActive,
					UserImageURL:   "assets/images/john-doe.png",
				},
			},
			"99999": {
				NoContent:     true,
				NoContentText: "no Account exists with accountnumber 99999",
			},
		},
		errs: map[string]error{
			"55555": errors.New("account lookup failed: connection refused"),
		},
	}
	s.form = NewForm(s.fetcher, slog.Default())
}

// TestFormSuite runs the test suite
func TestFormSuite(t *testing.T) {
	suite.Run(t, new(FormSuite))
}

func (s *FormSuite) TestInitialState() {
	snap := s.form.Snapshot()

	s.Equal(StateEmpty, snap.State)
	s.Empty(snap.Message)
	s.True(snap.Account.IsEmpty())
	s.True(snap.Account.CurrentBalance.IsZero())
	s.Equal(dto.DefaultAvatarPath, snap.Account.UserImageURL)
}

func (s *FormSuite) TestFocusOut_AccountFound() {
	snap := s.form.FocusOut(context.Background(), "12345")

	s.Equal(StatePopulated, snap.State)
	s.Empty(snap.Message)
	s.Equal("John Doe", snap.Account.AccountTitle)
	s.True(snap.Account.CurrentBalance.Equal(decimal.NewFromFloat(1000.50)))
	s.Equal(models.AccountStatusActive, snap.Account.AccountStatus)
}

func (s *FormSuite) TestFocusOut_NoContent() {
	snap := s.form.FocusOut(context.Background(), "99999")

	s.Equal(StateWarned, snap.State)
	s.Equal("no Account exists with accountnumber 99999", snap.Message)
	s.True(snap.Account.IsEmpty())
	s.Equal(dto.DefaultAvatarPath, snap.Account.UserImageURL)
}

func (s *FormSuite) TestFocusOut_NoContentResetsLoadedAccount() {
	s.form.FocusOut(context.Background(), "12345")
	snap := s.form.FocusOut(context.Background(), "99999")

	s.Equal(StateWarned, snap.State)
	s.True(snap.Account.IsEmpty())
}

func (s *FormSuite) TestFocusOut_TransportFailureLeavesAccountUntouched() {
	s.form.FocusOut(context.Background(), "12345")
	snap := s.form.FocusOut(context.Background(), "55555")

	s.Equal(StateWarned, snap.State)
	s.Equal("account lookup failed: connection refused", snap.Message)
	// the loaded view survives a failed call
	s.Equal("John Doe", snap.Account.AccountTitle)
}

func (s *FormSuite) TestFocusOut_SuccessDoesNotClearMessage() {
	s.form.FocusOut(context.Background(), "99999")
	snap := s.form.FocusOut(context.Background(), "12345")

	// the view is replaced but the message stays until the next focus-in
	s.Equal("no Account exists with accountnumber 99999", snap.Message)
	s.Equal("John Doe", snap.Account.AccountTitle)
	s.Equal(StateWarned, snap.State)
}

func (s *FormSuite) TestFocusOut_BlankEntryIsNoOp() {
	snap := s.form.FocusOut(context.Background(), "   ")

	s.Equal(StateEmpty, snap.State)
	s.Empty(s.fetcher.calls)
}

func (s *FormSuite) TestFocusIn_ClearsMessageOnly() {
	s.form.FocusOut(context.Background(), "12345")
	s.form.FocusOut(context.Background(), "55555")

	snap := s.form.FocusIn()

	s.Empty(snap.Message)
	s.Equal(StatePopulated, snap.State)
	s.Equal("John Doe", snap.Account.AccountTitle)
}

func (s *FormSuite) TestFocusIn_OnEmptyForm() {
	snap := s.form.FocusIn()

	s.Equal(StateEmpty, snap.State)
	s.Empty(snap.Message)
}
