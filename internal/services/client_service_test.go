package services

import (
	"context"
	"testing"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  ClientService
	ctx      context.Context
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockClientRepository{}
	suite.service = NewClientService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *ClientServiceTestSuite) TearDownTest() {
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}

func clientWithPenalty(penalty float64) *models.Client {
	return &models.Client{ID: uuid.New(), DNI: 30123456, Penalty: penalty}
}

func (suite *ClientServiceTestSuite) TestList_NoTierFilterPassesThrough() {
	clients := []*models.Client{clientWithPenalty(0), clientWithPenalty(3)}

	suite.mockRepo.On("List", suite.ctx, 10, 5).Return(clients, nil)

	result, err := suite.service.List(suite.ctx, &models.ClientSearchFilter{Limit: 10, Offset: 5})

	suite.NoError(err)
	suite.Equal(clients, result)
}

func (suite *ClientServiceTestSuite) TestList_TierFilterPaginatesFilteredRows() {
	low1 := clientWithPenalty(1)
	low2 := clientWithPenalty(1.5)
	low3 := clientWithPenalty(2)
	stored := []*models.Client{
		low1,
		clientWithPenalty(7), // high
		low2,
		low3,
		clientWithPenalty(0), // none
	}

	// The tier is derived, so limit and offset must count filtered rows
	suite.mockRepo.On("List", suite.ctx, 500, 0).Return(stored, nil)

	tier := models.PenaltyLow
	result, err := suite.service.List(suite.ctx, &models.ClientSearchFilter{
		Tier:   &tier,
		Limit:  2,
		Offset: 1,
	})

	suite.NoError(err)
	suite.Len(result, 2)
	suite.Equal(low2.ID, result[0].ID)
	suite.Equal(low3.ID, result[1].ID)
}

func (suite *ClientServiceTestSuite) TestList_TierFilterStopsAtLimit() {
	stored := []*models.Client{
		clientWithPenalty(1),
		clientWithPenalty(1),
		clientWithPenalty(1),
	}

	suite.mockRepo.On("List", suite.ctx, 500, 0).Return(stored, nil)

	tier := models.PenaltyLow
	result, err := suite.service.List(suite.ctx, &models.ClientSearchFilter{Tier: &tier, Limit: 2})

	suite.NoError(err)
	suite.Len(result, 2)
}
