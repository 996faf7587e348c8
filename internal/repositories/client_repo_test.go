package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"ukitchen/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ClientRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     ClientRepository
	clientID uuid.UUID
	context  context.Context
}

func (suite *ClientRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewClientRepository(mock)
	suite.clientID = uuid.New()
	suite.context = context.Background()
}

func (suite *ClientRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestClientRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ClientRepoTestSuite))
}

func (suite *ClientRepoTestSuite) TestCreate_Success() {
	client := &models.Client{
		ID:      suite.clientID,
		DNI:     int64(30123456),
		Penalty: 0,
	}

	suite.mock.ExpectExec(`
		INSERT INTO clients \(id, dni, penalty, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, NOW\(\), NOW\(\)\)
	`).WithArgs(client.ID, client.DNI, client.Penalty).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, client)
	assert.NoError(suite.T(), err)
}

func (suite *ClientRepoTestSuite) TestCreate_DatabaseError() {
	client := &models.Client{
		ID:  suite.clientID,
		DNI: int64(30123456),
	}

	suite.mock.ExpectExec(`
		INSERT INTO clients \(id, dni, penalty, created_at, updated_at\)
		VALUES \(\$1, \$2, \$3, NOW\(\), NOW\(\)\)
	`).WithArgs(client.ID, client.DNI, client.Penalty).
		WillReturnError(errors.New("database connection failed"))

	err := suite.repo.Create(suite.context, client)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "database connection failed")
}

func (suite *ClientRepoTestSuite) TestGetByID_Success() {
	now := time.Now()

	suite.mock.ExpectQuery(`
		SELECT id, dni, penalty, created_at, updated_at
		FROM clients
		WHERE id = \$1
	`).WithArgs(suite.clientID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "dni", "penalty", "created_at", "updated_at"}).
			AddRow(suite.clientID, int64(30123456), 3.5, now, now))

	result, err := suite.repo.GetByID(suite.context, suite.clientID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.clientID, result.ID)
	assert.Equal(suite.T(), int64(30123456), result.DNI)
	assert.Equal(suite.T(), 3.5, result.Penalty)
}

func (suite *ClientRepoTestSuite) TestGetByID_NotFound() {
	suite.mock.ExpectQuery(`
		SELECT id, dni, penalty, created_at, updated_at
		FROM clients
		WHERE id = \$1
	`).WithArgs(suite.clientID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "dni", "penalty", "created_at", "updated_at"}))

	result, err := suite.repo.GetByID(suite.context, suite.clientID)
	assert.NoError(suite.T(), err) // absence is not an error
	assert.Nil(suite.T(), result)
}

func (suite *ClientRepoTestSuite) TestUpdate_Success() {
	client := &models.Client{
		ID:      suite.clientID,
		DNI:     int64(30123456),
		Penalty: 6,
	}

	suite.mock.ExpectExec(`
		UPDATE clients
		SET dni = \$1, penalty = \$2, updated_at = NOW\(\)
		WHERE id = \$3
	`).WithArgs(client.DNI, client.Penalty, client.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, client)
	assert.NoError(suite.T(), err)
}

func (suite *ClientRepoTestSuite) TestDelete_Success() {
	suite.mock.ExpectExec(`DELETE FROM clients WHERE id = \$1`).
		WithArgs(suite.clientID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := suite.repo.Delete(suite.context, suite.clientID)
	assert.NoError(suite.T(), err)
}

func (suite *ClientRepoTestSuite) TestList_Success() {
	now := time.Now()
	limit, offset := 10, 0

	rows := pgxmock.NewRows([]string{"id", "dni", "penalty", "created_at", "updated_at"}).
		AddRow(uuid.New(), int64(30123456), 0.0, now, now).
		AddRow(uuid.New(), int64(28999111), 7.25, now, now)

	suite.mock.ExpectQuery(`
		SELECT id, dni, penalty, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
		LIMIT \$1 OFFSET \$2
	`).WithArgs(limit, offset).
		WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, limit, offset)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), int64(30123456), result[0].DNI)
	assert.Equal(suite.T(), 7.25, result[1].Penalty)
}

func (suite *ClientRepoTestSuite) TestList_EmptyResult() {
	rows := pgxmock.NewRows([]string{"id", "dni", "penalty", "created_at", "updated_at"})

	suite.mock.ExpectQuery(`
		SELECT id, dni, penalty, created_at, updated_at
		FROM clients
		ORDER BY created_at DESC
		LIMIT \$1 OFFSET \$2
	`).WithArgs(5, 0).
		WillReturnRows(rows)

	result, err := suite.repo.List(suite.context, 5, 0)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
}
