package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	appErr "github.com/raimonvibe/email-authentication-tutorial/internal/pkg/errors"
	"github.com/raimonvibe/email-authentication-tutorial/internal/store"
)

func TestCreateAndGet(t *testing.T) {
	s := store.NewAccountStore()
	created, err := s.Create("id-1", "a@x.com", "hash", "12345")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", created.Email)
	require.False(t, created.IsVerified)

	got, ok := s.Get("a@x.com")
	require.True(t, ok)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "12345", got.PendingCode)

	code, ok := s.PendingCode("a@x.com")
	require.True(t, ok)
	require.Equal(t, "12345", code)

	_, ok = s.Get("b@x.com")
	require.False(t, ok)
}

func TestCreateRejectsVerifiedDuplicate(t *testing.T) {
	s := store.NewAccountStore()
	_, err := s.Create("id-1", "a@x.com", "hash", "12345")
	require.NoError(t, err)
	require.NoError(t, s.SetVerified("a@x.com"))

	_, err = s.Create("id-2", "a@x.com", "hash2", "54321")
	require.ErrorIs(t, err, appErr.ErrDuplicateAccount)
}

func TestSetPendingCodeRotates(t *testing.T) {
	s := store.NewAccountStore()
	_, err := s.Create("id-1", "a@x.com", "hash", "11111")
	require.NoError(t, err)
	require.NoError(t, s.SetPendingCode("a@x.com", "22222"))

	got, ok := s.Get("a@x.com")
	require.True(t, ok)
	require.Equal(t, "22222", got.PendingCode)
	code, _ := s.PendingCode("a@x.com")
	require.Equal(t, "22222", code)

	require.ErrorIs(t, s.SetPendingCode("nobody@x.com", "33333"), appErr.ErrNotFound)
}

func TestSetVerifiedClearsCodeEverywhere(t *testing.T) {
	s := store.NewAccountStore()
	_, err := s.Create("id-1", "a@x.com", "hash", "12345")
	require.NoError(t, err)
	require.NoError(t, s.SetVerified("a@x.com"))

	got, ok := s.Get("a@x.com")
	require.True(t, ok)
	require.True(t, got.IsVerified)
	require.Empty(t, got.PendingCode)

	_, ok = s.PendingCode("a@x.com")
	require.False(t, ok)

	require.ErrorIs(t, s.SetVerified("nobody@x.com"), appErr.ErrNotFound)
}

func TestListInsertionOrder(t *testing.T) {
	s := store.NewAccountStore()
	for i := 0; i < 5; i++ {
		_, err := s.Create(fmt.Sprintf("id-%d", i), fmt.Sprintf("u%d@x.com", i), "hash", "12345")
		require.NoError(t, err)
	}
	accounts := s.List()
	require.Len(t, accounts, 5)
	for i, account := range accounts {
		require.Equal(t, fmt.Sprintf("u%d@x.com", i), account.Email)
	}
	require.Equal(t, 5, s.Len())
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := store.NewAccountStore()
	_, err := s.Create("id-1", "a@x.com", "hash", "12345")
	require.NoError(t, err)

	got, _ := s.Get("a@x.com")
	got.IsVerified = true
	got.PendingCode = "mutated"

	fresh, _ := s.Get("a@x.com")
	require.False(t, fresh.IsVerified)
	require.Equal(t, "12345", fresh.PendingCode)
}

func TestConcurrentAccess(t *testing.T) {
	s := store.NewAccountStore()
	var wg sync.WaitGroup
	errs := make([]error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("u%d@x.com", i)
			_, errs[i] = s.Create(fmt.Sprintf("id-%d", i), email, "hash", "12345")
			_ = s.SetPendingCode(email, "54321")
			_, _ = s.Get(email)
			_ = s.List()
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, 50, s.Len())
}
