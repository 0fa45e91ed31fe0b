package store

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AccountStoreTestSuite struct {
	suite.Suite
	store *AccountStore
}

func (s *AccountStoreTestSuite) SetupTest() {
	s.store = NewAccountStore(bcrypt.MinCost)
}

func TestAccountStoreTestSuite(t *testing.T) {
	suite.Run(t, new(AccountStoreTestSuite))
}

func (s *AccountStoreTestSuite) TestRegister_Success() {
	account, err := s.store.Register("Jane Doe", "jane@example.com", "secret1")

	s.Require().NoError(err)
	s.Equal(1, account.ID)
	s.Equal("Jane Doe", account.Name)
	s.Equal("jane@example.com", account.Email)
	s.NotEqual("secret1", account.PasswordHash)
	s.False(account.CreatedAt.IsZero())

	found, ok := s.store.FindByEmail("jane@example.com")
	s.Require().True(ok)
	s.Equal(account, found)
}

func (s *AccountStoreTestSuite) TestRegister_SequentialIDs() {
	for i := 1; i <= 3; i++ {
		account, err := s.store.Register("User", fmt.Sprintf("user%d@example.com", i), "secret1")
		s.Require().NoError(err)
		s.Equal(i, account.ID)
	}
	s.Equal(3, s.store.Count())
}

func (s *AccountStoreTestSuite) TestRegister_DuplicateEmailAnyCase() {
	_, err := s.store.Register("Jane", "jane@example.com", "secret1")
	s.Require().NoError(err)

	for _, email := range []string{"jane@example.com", "JANE@example.com", "Jane@Example.Com"} {
		_, err := s.store.Register("Someone Else", email, "different")
		s.ErrorIs(err, ErrDuplicateEmail, email)
	}
	s.Equal(1, s.store.Count())
}

func (s *AccountStoreTestSuite) TestRegister_PasswordTooLong() {
	_, err := s.store.Register("Jane", "jane@example.com", strings.Repeat("x", MaxPasswordBytes+1))
	s.ErrorIs(err, ErrPasswordTooLong)
	s.Zero(s.store.Count())
}

func (s *AccountStoreTestSuite) TestFindByEmail_CaseInsensitive() {
	registered, err := s.store.Register("Jane", "Jane@Example.com", "secret1")
	s.Require().NoError(err)

	found, ok := s.store.FindByEmail("jane@example.COM")
	s.True(ok)
	s.Equal(registered, found)

	_, ok = s.store.FindByEmail("nobody@example.com")
	s.False(ok)
}

func (s *AccountStoreTestSuite) TestLogin() {
	registered, err := s.store.Register("Jane", "jane@example.com", "secret1")
	s.Require().NoError(err)

	account, err := s.store.Login("JANE@example.com", "secret1")
	s.Require().NoError(err)
	s.Equal(registered, account)

	_, err = s.store.Login("jane@example.com", "Secret1")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.store.Login("jane@example.com", "secret1 ")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.store.Login("nobody@example.com", "secret1")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AccountStoreTestSuite) TestAll_PreservesOrder() {
	for _, email := range []string{"c@example.com", "a@example.com", "b@example.com"} {
		_, err := s.store.Register("User", email, "secret1")
		s.Require().NoError(err)
	}

	all := s.store.All()
	s.Require().Len(all, 3)
	s.Equal("c@example.com", all[0].Email)
	s.Equal("a@example.com", all[1].Email)
	s.Equal("b@example.com", all[2].Email)
}

func (s *AccountStoreTestSuite) TestRegister_ConcurrentSameEmail() {
	const attempts = 8

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.store.Register(fmt.Sprintf("User %d", i), "race@example.com", "secret1")
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, ErrDuplicateEmail)
	}
	s.Equal(1, succeeded)
	s.Equal(1, s.store.Count())
}

func (s *AccountStoreTestSuite) TestNewAccountStore_InvalidCostFallsBack() {
	st := NewAccountStore(0)
	s.Equal(bcrypt.DefaultCost, st.cost)

	st = NewAccountStore(bcrypt.MaxCost + 1)
	s.Equal(bcrypt.DefaultCost, st.cost)
}

func (s *AccountStoreTestSuite) TestRegister_DuplicateEmailBeforePasswordLength() {
	_, err := s.store.Register("Ann", "a@b.co", "secret1")
	s.Require().NoError(err)

	_, err = s.store.Register("Bob", "A@B.CO", strings.Repeat("x", 80))
	s.ErrorIs(err, ErrDuplicateEmail)
	s.Equal(1, s.store.Count())
}

func (s *AccountStoreTestSuite) TestLogin_RejectsSuffixBeyondBcryptLimit() {
	password := strings.Repeat("a", MaxPasswordBytes)
	_, err := s.store.Register("Ann", "a@b.co", password)
	s.Require().NoError(err)

	_, err = s.store.Login("a@b.co", password+"DIFFERENT")
	s.ErrorIs(err, ErrInvalidCredentials)

	account, err := s.store.Login("a@b.co", password)
	s.Require().NoError(err)
	s.Equal("Ann", account.Name)
}
