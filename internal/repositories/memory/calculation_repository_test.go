package memory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/cashier_app/internal/apperrors"
	"github.com/SscSPs/cashier_app/internal/core/domain"
	"github.com/SscSPs/cashier_app/internal/repositories/memory"
	"github.com/SscSPs/cashier_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CalculationRepositoryTestSuite struct {
	suite.Suite
	repo *memory.CalculationRepository
	ctx  context.Context
}

func (suite *CalculationRepositoryTestSuite) SetupTest() {
	repo, err := memory.NewCalculationRepository(3)
	suite.Require().NoError(err)
	suite.repo = repo
	suite.ctx = context.Background()
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// calc builds a calculation created n seconds after baseTime.
func calc(id string, n int) domain.ChangeCalculation {
	return domain.ChangeCalculation{
		CalculationID: id,
		Result:        domain.ChangeResult{Outcome: domain.ExactPayment, Breakdown: domain.Breakdown{}},
		CreatedAt:     baseTime.Add(time.Duration(n) * time.Second),
	}
}

func ids(calcs []domain.ChangeCalculation) []string {
	out := make([]string, len(calcs))
	for i, c := range calcs {
		out[i] = c.CalculationID
	}
	return out
}

func (suite *CalculationRepositoryTestSuite) TestSaveAndFind() {
	suite.Require().NoError(suite.repo.SaveCalculation(suite.ctx, calc("a", 0)))

	got, err := suite.repo.FindCalculationByID(suite.ctx, "a")
	suite.Require().NoError(err)
	suite.Equal("a", got.CalculationID)
}

func (suite *CalculationRepositoryTestSuite) TestFind_NotFound() {
	got, err := suite.repo.FindCalculationByID(suite.ctx, "missing")
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CalculationRepositoryTestSuite) TestSave_Duplicate() {
	suite.Require().NoError(suite.repo.SaveCalculation(suite.ctx, calc("a", 0)))
	suite.ErrorIs(suite.repo.SaveCalculation(suite.ctx, calc("a", 0)), apperrors.ErrDuplicate)
}

func (suite *CalculationRepositoryTestSuite) TestListRecent_NewestFirstAndBounded() {
	for i := 1; i <= 4; i++ {
		suite.Require().NoError(suite.repo.SaveCalculation(suite.ctx, calc(fmt.Sprintf("c%d", i), i)))
	}
	// Looking one up must not keep it from being evicted later.
	_, err := suite.repo.FindCalculationByID(suite.ctx, "c2")
	suite.Require().NoError(err)

	all, err := suite.repo.ListRecentCalculations(suite.ctx, 10, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"c4", "c3", "c2"}, ids(all))

	two, err := suite.repo.ListRecentCalculations(suite.ctx, 2, nil)
	suite.Require().NoError(err)
	suite.Len(two, 2)

	none, err := suite.repo.ListRecentCalculations(suite.ctx, 0, nil)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *CalculationRepositoryTestSuite) TestListRecent_AfterCursor() {
	suite.Require().NoError(suite.repo.SaveCalculation(suite.ctx, calc("b", 1)))
	suite.Require().NoError(suite.repo.SaveCalculation(suite.ctx, calc("a", 1)))
	suite.Require().NoError(suite.repo.SaveCalculation(suite.ctx, calc("c", 2)))

	page1, err := suite.repo.ListRecentCalculations(suite.ctx, 2, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"c", "b"}, ids(page1))

	last := page1[len(page1)-1]
	page2, err := suite.repo.ListRecentCalculations(suite.ctx, 2, &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.CalculationID})
	suite.Require().NoError(err)
	suite.Equal([]string{"a"}, ids(page2))
}

func (suite *CalculationRepositoryTestSuite) TestPing() {
	suite.NoError(suite.repo.Ping(suite.ctx))
}

func TestCalculationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CalculationRepositoryTestSuite))
}

func TestNewCalculationRepository_DefaultsSize(t *testing.T) {
	repo, err := memory.NewCalculationRepository(0)
	require.NoError(t, err)
	assert.NotNil(t, repo)
}
