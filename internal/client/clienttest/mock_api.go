// Package clienttest provides a testify mock of client.API.
package clienttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-forms/internal/client"
)

type MockAPI struct {
	mock.Mock
}

// NewMockAPI returns a MockAPI whose expectations are asserted when t finishes.
func NewMockAPI(t *testing.T) *MockAPI {
	t.Helper()
	m := &MockAPI{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAPI) ListContacts(ctx context.Context) ([]client.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]client.Contact)
	return contacts, args.Error(1)
}

func (m *MockAPI) CreateCategory(ctx context.Context, create client.CategoryCreate) (*client.Category, error) {
	args := m.Called(ctx, create)
	category, _ := args.Get(0).(*client.Category)
	return category, args.Error(1)
}

func (m *MockAPI) CreateExpense(ctx context.Context, create client.ExpenseCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockAPI) UpdateExpense(ctx context.Context, id string, update client.ExpenseUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockAPI) CreateBorrowLend(ctx context.Context, create client.BorrowLendCreate) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockAPI) UpdateBorrowLend(ctx context.Context, id string, update client.BorrowLendUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

var _ client.API = (*MockAPI)(nil)
